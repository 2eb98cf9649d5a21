package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

func newDashboardFixture(now time.Time) (*mockWorkLogRepo, DashboardService) {
	workLogs := new(mockWorkLogRepo)
	engine := query.NewEngine(new(mockMemberships))
	svc := NewDashboardService(engine, workLogs).(*dashboardService)
	svc.now = func() time.Time { return now }
	return workLogs, svc
}

func TestDashboardPersonalDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	workLogs, svc := newDashboardFixture(now)

	stats := []*repository.Stat{
		{Key: "2024-05-14", TotalHours: decimal.RequireFromString("7.5"), Count: 2},
	}
	workLogs.On("Aggregate", mock.Anything, mock.MatchedBy(func(f *query.Filter) bool {
		return f.StartDate.Format("2006-01-02") == "2024-05-01" &&
			f.EndDate.Format("2006-01-02") == "2024-05-31" &&
			len(f.UserIDs) == 1 && f.UserIDs[0] == selfID
	}), types.GroupByDay).Return(stats, nil)

	p := query.Principal{ID: selfID, Role: types.RoleUser}
	got, err := svc.Personal(context.Background(), p, DashboardParams{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "2024-05-14", got[0].Key)
	workLogs.AssertExpectations(t)
}

func TestDashboardProjectsCustomPeriod(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	workLogs, svc := newDashboardFixture(now)

	workLogs.On("Aggregate", mock.Anything, mock.MatchedBy(func(f *query.Filter) bool {
		return f.StartDate.Format("2006-01-02") == "2024-03-01" &&
			f.EndDate.Format("2006-01-02") == "2024-03-10"
	}), types.GroupByProject).Return([]*repository.Stat{}, nil)

	p := query.Principal{ID: selfID, Role: types.RoleUser}
	_, err := svc.Projects(context.Background(), p, DashboardParams{
		Period:    types.PeriodCustom,
		StartDate: "2024-03-01",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)
	workLogs.AssertExpectations(t)
}

func TestDashboardCustomPeriodRequiresDates(t *testing.T) {
	workLogs, svc := newDashboardFixture(time.Now())

	p := query.Principal{ID: selfID, Role: types.RoleUser}
	_, err := svc.Personal(context.Background(), p, DashboardParams{Period: types.PeriodCustom})
	require.Error(t, err)
	require.IsType(t, &query.ValidationError{}, err)
	workLogs.AssertNotCalled(t, "Aggregate", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardScopePolicyApplies(t *testing.T) {
	workLogs, svc := newDashboardFixture(time.Now())

	p := query.Principal{ID: selfID, Role: types.RoleUser}
	_, err := svc.Personal(context.Background(), p, DashboardParams{Scope: "all"})
	require.ErrorIs(t, err, query.ErrForbidden)
	workLogs.AssertNotCalled(t, "Aggregate", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardUnknownPeriod(t *testing.T) {
	_, svc := newDashboardFixture(time.Now())

	p := query.Principal{ID: selfID, Role: types.RoleUser}
	_, err := svc.Personal(context.Background(), p, DashboardParams{Period: "quarter"})
	require.Error(t, err)
	require.IsType(t, &query.ValidationError{}, err)
}
