package service

import (
	"errors"

	"github.com/AWLL-inc/work-management-sub003/internal/config"
	"github.com/AWLL-inc/work-management-sub003/internal/db"
	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("resource already exists")
	ErrRateLimited        = errors.New("too many login attempts")
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth      AuthService
	User      UserService
	Team      TeamService
	Catalog   CatalogService
	WorkLog   WorkLogService
	Export    ExportService
	Dashboard DashboardService
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config *config.Config
	Repos  *repository.Repositories
	Redis  *db.RedisDB // optional, enables login throttling
}

func NewServices(deps *ServiceDeps) *Services {
	// One scope/filter engine, shared by listing, export and dashboard so
	// the three paths can never disagree about visibility.
	engine := query.NewEngine(deps.Repos.TeamRepo)

	return &Services{
		Auth:      NewAuthService(deps.Config, deps.Repos.UserRepo, deps.Redis),
		User:      NewUserService(deps.Repos.UserRepo),
		Team:      NewTeamService(deps.Repos.TeamRepo, deps.Repos.UserRepo),
		Catalog:   NewCatalogService(deps.Repos.ProjectRepo, deps.Repos.CategoryRepo),
		WorkLog:   NewWorkLogService(engine, deps.Repos.WorkLogRepo, deps.Repos.ProjectRepo, deps.Repos.CategoryRepo),
		Export:    NewExportService(engine, deps.Repos.WorkLogRepo),
		Dashboard: NewDashboardService(engine, deps.Repos.WorkLogRepo),
	}
}
