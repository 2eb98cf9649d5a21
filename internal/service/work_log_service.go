package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AWLL-inc/work-management-sub003/internal/models"
	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

const maxDetailsLength = 1000

var maxHoursPerEntry = decimal.NewFromInt(168)

// ============================================
// Work Log Service
// ============================================

// CreateWorkLogInput carries the raw fields of a create request; hours stays
// a string until validated into an exact decimal.
type CreateWorkLogInput struct {
	Date       string
	Hours      string
	ProjectID  string
	CategoryID string
	Details    *string
	UserID     string // admin only; others always write their own id
}

// UpdateWorkLogInput carries optional fields; nil means "leave unchanged".
type UpdateWorkLogInput struct {
	Date       *string
	Hours      *string
	ProjectID  *string
	CategoryID *string
	Details    *string
	UserID     *string // admin only
}

// WorkLogService defines work-log operations
type WorkLogService interface {
	List(ctx context.Context, p query.Principal, raw query.RawParams) ([]*repository.WorkLogView, *models.Pagination, error)
	Create(ctx context.Context, p query.Principal, input CreateWorkLogInput) (*repository.WorkLog, error)
	Update(ctx context.Context, p query.Principal, id string, input UpdateWorkLogInput) (*repository.WorkLog, error)
	Delete(ctx context.Context, p query.Principal, id string) error
}

type workLogService struct {
	engine       *query.Engine
	workLogRepo  repository.WorkLogRepository
	projectRepo  repository.ProjectRepository
	categoryRepo repository.CategoryRepository
}

// NewWorkLogService creates a new work log service
func NewWorkLogService(
	engine *query.Engine,
	workLogRepo repository.WorkLogRepository,
	projectRepo repository.ProjectRepository,
	categoryRepo repository.CategoryRepository,
) WorkLogService {
	return &workLogService{
		engine:       engine,
		workLogRepo:  workLogRepo,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *workLogService) List(ctx context.Context, p query.Principal, raw query.RawParams) ([]*repository.WorkLogView, *models.Pagination, error) {
	spec, err := s.engine.BuildSpec(ctx, p, raw)
	if err != nil {
		return nil, nil, err
	}
	views, total, err := s.workLogRepo.List(ctx, spec)
	if err != nil {
		return nil, nil, err
	}
	pagination := &models.Pagination{
		Page:       spec.Page,
		Limit:      spec.Limit,
		Total:      total,
		TotalPages: (total + spec.Limit - 1) / spec.Limit,
	}
	return views, pagination, nil
}

func (s *workLogService) Create(ctx context.Context, p query.Principal, input CreateWorkLogInput) (*repository.WorkLog, error) {
	entry := &repository.WorkLog{UserID: p.ID}

	// Writing someone else's log is an admin-only operation.
	if input.UserID != "" && input.UserID != p.ID {
		if p.Role != types.RoleAdmin {
			return nil, ErrForbidden
		}
		targetID := query.ParseUUID(input.UserID)
		if targetID == "" {
			return nil, query.NewValidationError("userId", "userId must be a valid UUID")
		}
		entry.UserID = targetID
	}

	logDate, ok := query.ParseDate(input.Date)
	if !ok {
		return nil, query.NewValidationError("date", "date must be a valid YYYY-MM-DD date")
	}
	entry.LogDate = logDate

	hours, err := parseHours(input.Hours)
	if err != nil {
		return nil, err
	}
	entry.Hours = hours

	entry.ProjectID = query.ParseUUID(input.ProjectID)
	if entry.ProjectID == "" {
		return nil, query.NewValidationError("projectId", "projectId must be a valid UUID")
	}
	entry.CategoryID = query.ParseUUID(input.CategoryID)
	if entry.CategoryID == "" {
		return nil, query.NewValidationError("categoryId", "categoryId must be a valid UUID")
	}

	if err := validateDetails(input.Details); err != nil {
		return nil, err
	}
	entry.Details = input.Details

	if err := s.checkReferences(ctx, entry.ProjectID, entry.CategoryID); err != nil {
		return nil, err
	}

	if err := s.workLogRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *workLogService) Update(ctx context.Context, p query.Principal, id string, input UpdateWorkLogInput) (*repository.WorkLog, error) {
	entry, err := s.workLogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	if entry.UserID != p.ID && p.Role != types.RoleAdmin {
		return nil, ErrForbidden
	}

	if input.UserID != nil && *input.UserID != entry.UserID {
		if p.Role != types.RoleAdmin {
			return nil, ErrForbidden
		}
		targetID := query.ParseUUID(*input.UserID)
		if targetID == "" {
			return nil, query.NewValidationError("userId", "userId must be a valid UUID")
		}
		entry.UserID = targetID
	}

	if input.Date != nil {
		logDate, ok := query.ParseDate(*input.Date)
		if !ok {
			return nil, query.NewValidationError("date", "date must be a valid YYYY-MM-DD date")
		}
		entry.LogDate = logDate
	}

	if input.Hours != nil {
		hours, err := parseHours(*input.Hours)
		if err != nil {
			return nil, err
		}
		entry.Hours = hours
	}

	if input.ProjectID != nil {
		projectID := query.ParseUUID(*input.ProjectID)
		if projectID == "" {
			return nil, query.NewValidationError("projectId", "projectId must be a valid UUID")
		}
		entry.ProjectID = projectID
	}

	if input.CategoryID != nil {
		categoryID := query.ParseUUID(*input.CategoryID)
		if categoryID == "" {
			return nil, query.NewValidationError("categoryId", "categoryId must be a valid UUID")
		}
		entry.CategoryID = categoryID
	}

	if input.Details != nil {
		if err := validateDetails(input.Details); err != nil {
			return nil, err
		}
		entry.Details = input.Details
	}

	if err := s.checkReferences(ctx, entry.ProjectID, entry.CategoryID); err != nil {
		return nil, err
	}

	// Per-row, last-write-wins; no cross-row invariants to protect.
	if err := s.workLogRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *workLogService) Delete(ctx context.Context, p query.Principal, id string) error {
	entry, err := s.workLogRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrNotFound
	}
	if entry.UserID != p.ID && p.Role != types.RoleAdmin {
		return ErrForbidden
	}
	return s.workLogRepo.Delete(ctx, id)
}

func (s *workLogService) checkReferences(ctx context.Context, projectID, categoryID string) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil || !project.IsActive {
		return query.NewValidationError("projectId", "project does not exist or is inactive")
	}
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil || !category.IsActive {
		return query.NewValidationError("categoryId", "category does not exist or is inactive")
	}
	return nil
}

// parseHours validates the decimal-string hours field: more than zero, at
// most 168, at most two decimal places.
func parseHours(raw string) (decimal.Decimal, error) {
	hours, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, query.NewValidationError("hours", "hours must be a decimal number")
	}
	if hours.Exponent() < -2 {
		return decimal.Decimal{}, query.NewValidationError("hours", "hours must have at most 2 decimal places")
	}
	if !hours.IsPositive() || hours.GreaterThan(maxHoursPerEntry) {
		return decimal.Decimal{}, query.NewValidationError("hours", "hours must be greater than 0 and at most 168")
	}
	return hours, nil
}

func validateDetails(details *string) error {
	if details != nil && len([]rune(*details)) > maxDetailsLength {
		return query.NewValidationError("details", "details must be at most 1000 characters")
	}
	return nil
}
