package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

func newExportFixture() (*mockWorkLogRepo, ExportService) {
	workLogs := new(mockWorkLogRepo)
	engine := query.NewEngine(new(mockMemberships))
	return workLogs, NewExportService(engine, workLogs)
}

func TestExport(t *testing.T) {
	workLogs, svc := newExportFixture()

	details := "weekly report"
	rows := []*repository.WorkLogView{{
		WorkLog: repository.WorkLog{
			UserID:  selfID,
			Hours:   decimal.RequireFromString("8"),
			Details: &details,
		},
		UserName:     "Alice Morgan",
		ProjectName:  "Website",
		CategoryName: "Dev",
	}}
	workLogs.On("ListAll", mock.Anything, mock.MatchedBy(func(f *query.Filter) bool {
		return f.StartDate != nil && f.EndDate != nil
	})).Return(rows, nil)

	p := query.Principal{ID: selfID, Role: types.RoleUser}
	filename, body, err := svc.Export(context.Background(), p, query.RawParams{
		StartDate: "2024-05-01",
		EndDate:   "2024-05-31",
	})
	require.NoError(t, err)

	require.Equal(t, "work-logs-2024-05-01_2024-05-31.csv", filename)
	require.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	require.Contains(t, body, "Alice Morgan")
	require.Contains(t, body, "weekly report")
}

func TestExportWindowTooWide(t *testing.T) {
	workLogs, svc := newExportFixture()

	p := query.Principal{ID: selfID, Role: types.RoleUser}
	_, _, err := svc.Export(context.Background(), p, query.RawParams{
		StartDate: "2024-05-01",
		EndDate:   "2024-06-01", // 32 inclusive days
	})
	require.Error(t, err)
	require.IsType(t, &query.ValidationError{}, err)
	workLogs.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
}

func TestExportRequiresBothDates(t *testing.T) {
	workLogs, svc := newExportFixture()

	p := query.Principal{ID: selfID, Role: types.RoleUser}
	_, _, err := svc.Export(context.Background(), p, query.RawParams{StartDate: "2024-05-01"})
	require.Error(t, err)
	require.IsType(t, &query.ValidationError{}, err)
	workLogs.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
}

func TestExportForbiddenScope(t *testing.T) {
	workLogs, svc := newExportFixture()

	// Scope policy is identical to the listing path.
	p := query.Principal{ID: selfID, Role: types.RoleManager}
	_, _, err := svc.Export(context.Background(), p, query.RawParams{
		Scope:     "all",
		StartDate: "2024-05-01",
		EndDate:   "2024-05-31",
	})
	require.ErrorIs(t, err, query.ErrForbidden)
	workLogs.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
}
