package service

import (
	"context"

	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

// ============================================
// Catalog Service
// ============================================

// CatalogService serves the project/category reference data used by the
// work-log filter dropdowns. Listing returns active entries only.
type CatalogService interface {
	ListProjects(ctx context.Context) ([]*repository.Project, error)
	CreateProject(ctx context.Context, p query.Principal, name string) (*repository.Project, error)
	ListCategories(ctx context.Context) ([]*repository.Category, error)
	CreateCategory(ctx context.Context, p query.Principal, name string) (*repository.Category, error)
}

type catalogService struct {
	projectRepo  repository.ProjectRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(projectRepo repository.ProjectRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{projectRepo: projectRepo, categoryRepo: categoryRepo}
}

func (s *catalogService) ListProjects(ctx context.Context) ([]*repository.Project, error) {
	return s.projectRepo.ListActive(ctx)
}

func (s *catalogService) CreateProject(ctx context.Context, p query.Principal, name string) (*repository.Project, error) {
	if p.Role != types.RoleAdmin {
		return nil, ErrForbidden
	}
	project := &repository.Project{Name: name, IsActive: true}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*repository.Category, error) {
	return s.categoryRepo.ListActive(ctx)
}

func (s *catalogService) CreateCategory(ctx context.Context, p query.Principal, name string) (*repository.Category, error) {
	if p.Role != types.RoleAdmin {
		return nil, ErrForbidden
	}
	category := &repository.Category{Name: name, IsActive: true}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
