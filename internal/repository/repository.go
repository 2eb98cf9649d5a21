package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// ============================================
// Repositories Container
// ============================================

// Repositories holds all repository instances
type Repositories struct {
	UserRepo     UserRepository
	TeamRepo     TeamRepository
	ProjectRepo  ProjectRepository
	CategoryRepo CategoryRepository
	WorkLogRepo  WorkLogRepository
}

// NewRepositories creates all repositories backed by the shared pgx pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepo:     NewPgUserRepository(pool),
		TeamRepo:     NewPgTeamRepository(pool),
		ProjectRepo:  NewPgProjectRepository(pool),
		CategoryRepo: NewPgCategoryRepository(pool),
		WorkLogRepo:  NewPgWorkLogRepository(pool),
	}
}
