package service

import (
	"context"
	"time"

	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

// ============================================
// Dashboard Service
// ============================================

// DashboardParams carries the raw dashboard request parameters.
type DashboardParams struct {
	Period    string
	Scope     string
	UserID    string
	StartDate string
	EndDate   string
}

// DashboardService aggregates filtered work logs. It runs the identical
// scope/filter composition as the listing and export paths; dashboard
// totals never diverge from what the list view shows for the same
// parameters.
type DashboardService interface {
	Personal(ctx context.Context, p query.Principal, params DashboardParams) ([]*repository.Stat, error)
	Projects(ctx context.Context, p query.Principal, params DashboardParams) ([]*repository.Stat, error)
}

type dashboardService struct {
	engine      *query.Engine
	workLogRepo repository.WorkLogRepository
	now         func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(engine *query.Engine, workLogRepo repository.WorkLogRepository) DashboardService {
	return &dashboardService{
		engine:      engine,
		workLogRepo: workLogRepo,
		now:         time.Now,
	}
}

// Personal groups the resolved/filtered/windowed rows by day.
func (s *dashboardService) Personal(ctx context.Context, p query.Principal, params DashboardParams) ([]*repository.Stat, error) {
	return s.aggregate(ctx, p, params, types.GroupByDay)
}

// Projects groups the resolved/filtered/windowed rows by project.
func (s *dashboardService) Projects(ctx context.Context, p query.Principal, params DashboardParams) ([]*repository.Stat, error) {
	return s.aggregate(ctx, p, params, types.GroupByProject)
}

func (s *dashboardService) aggregate(ctx context.Context, p query.Principal, params DashboardParams, groupBy string) ([]*repository.Stat, error) {
	period := params.Period
	if period == "" {
		period = types.PeriodMonth
	}

	start, end, err := query.PeriodWindow(period, params.StartDate, params.EndDate, s.now())
	if err != nil {
		return nil, err
	}

	raw := query.RawParams{
		Scope:     params.Scope,
		UserID:    params.UserID,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}
	spec, err := s.engine.BuildSpec(ctx, p, raw)
	if err != nil {
		return nil, err
	}

	return s.workLogRepo.Aggregate(ctx, spec, groupBy)
}
