package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

const (
	uuidA = "a1b2c3d4-e5f6-4a1b-8c2d-3e4f5a6b7c8d"
	uuidB = "b2c3d4e5-f6a1-4b2c-9d3e-4f5a6b7c8d9e"
)

func TestBuildFilterDefaults(t *testing.T) {
	f, err := BuildFilter(RawParams{})
	require.NoError(t, err)

	require.Equal(t, types.ScopeOwn, f.Scope)
	require.Equal(t, DefaultPage, f.Page)
	require.Equal(t, DefaultLimit, f.Limit)
	require.Nil(t, f.UserIDs)
	require.Nil(t, f.StartDate)
	require.Nil(t, f.EndDate)
	require.Nil(t, f.ProjectIDs)
	require.Nil(t, f.CategoryIDs)
	require.Empty(t, f.SearchText)
}

func TestBuildFilterScope(t *testing.T) {
	f, err := BuildFilter(RawParams{Scope: "team"})
	require.NoError(t, err)
	require.Equal(t, types.ScopeTeam, f.Scope)

	_, err = BuildFilter(RawParams{Scope: "everything"})
	requireValidationError(t, err, "scope")
}

func TestBuildFilterPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
		wantField string
	}{
		{name: "explicit values", page: "3", limit: "50", wantPage: 3, wantLimit: 50},
		{name: "limit above cap clamps", limit: "500", wantPage: 1, wantLimit: MaxLimit},
		{name: "limit at cap", limit: "100", wantPage: 1, wantLimit: 100},
		{name: "page zero rejected", page: "0", wantField: "page"},
		{name: "negative page rejected", page: "-2", wantField: "page"},
		{name: "non-numeric page rejected", page: "abc", wantField: "page"},
		{name: "limit zero rejected", limit: "0", wantField: "limit"},
		{name: "non-numeric limit rejected", limit: "ten", wantField: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := BuildFilter(RawParams{Page: tt.page, Limit: tt.limit})
			if tt.wantField != "" {
				requireValidationError(t, err, tt.wantField)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantPage, f.Page)
			require.Equal(t, tt.wantLimit, f.Limit)
		})
	}
}

func TestBuildFilterDates(t *testing.T) {
	f, err := BuildFilter(RawParams{StartDate: "2024-02-29", EndDate: "2024-03-01"})
	require.NoError(t, err)
	require.Equal(t, "2024-02-29", f.StartDate.Format("2006-01-02"))
	require.Equal(t, "2024-03-01", f.EndDate.Format("2006-01-02"))

	// Overflowed calendar dates must be rejected, not rolled forward.
	_, err = BuildFilter(RawParams{StartDate: "2024-02-30"})
	requireValidationError(t, err, "startDate")

	_, err = BuildFilter(RawParams{StartDate: "2023-02-29"})
	requireValidationError(t, err, "startDate")

	_, err = BuildFilter(RawParams{EndDate: "2024-13-01"})
	requireValidationError(t, err, "endDate")

	_, err = BuildFilter(RawParams{StartDate: "2024-05-10", EndDate: "2024-05-01"})
	requireValidationError(t, err, "startDate")

	// Equal bounds form a one-day window.
	f, err = BuildFilter(RawParams{StartDate: "2024-05-10", EndDate: "2024-05-10"})
	require.NoError(t, err)
	require.True(t, f.StartDate.Equal(*f.EndDate))
}

func TestBuildFilterIDLists(t *testing.T) {
	// Plural wins over singular when it yields at least one valid id.
	f, err := BuildFilter(RawParams{ProjectID: uuidA, ProjectIDs: uuidB})
	require.NoError(t, err)
	require.Equal(t, []string{uuidB}, f.ProjectIDs)

	// Invalid members are dropped silently; duplicates collapse.
	f, err = BuildFilter(RawParams{CategoryIDs: uuidA + ",not-a-uuid," + uuidA + "," + uuidB})
	require.NoError(t, err)
	require.Equal(t, []string{uuidA, uuidB}, f.CategoryIDs)

	// An all-invalid plural falls back to the singular.
	f, err = BuildFilter(RawParams{ProjectID: uuidA, ProjectIDs: "nope,also-nope"})
	require.NoError(t, err)
	require.Equal(t, []string{uuidA}, f.ProjectIDs)

	// Nothing valid anywhere means the parameter is treated as absent.
	f, err = BuildFilter(RawParams{ProjectID: "bad", ProjectIDs: "worse"})
	require.NoError(t, err)
	require.Nil(t, f.ProjectIDs)
}

func TestBuildFilterSearchTruncation(t *testing.T) {
	long := strings.Repeat("あ", MaxSearchLength+100)
	f, err := BuildFilter(RawParams{SearchText: long})
	require.NoError(t, err)
	require.Equal(t, MaxSearchLength, len([]rune(f.SearchText)))
	require.Equal(t, strings.Repeat("あ", MaxSearchLength), f.SearchText)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-00-10", false},
		{"2024-1-5", false},
		{"2024/01/05", false},
		{"", false},
		{"2024-01-05T00:00:00Z", false},
	}
	for _, tt := range tests {
		_, ok := ParseDate(tt.input)
		require.Equal(t, tt.ok, ok, "input %q", tt.input)
	}
}

func TestParseUUID(t *testing.T) {
	require.Equal(t, uuidA, ParseUUID(uuidA))
	require.Equal(t, uuidA, ParseUUID("  "+uuidA+"  "))
	require.Empty(t, ParseUUID("not-a-uuid"))
	// v1 UUIDs are rejected; only v4 ids are issued by this system.
	require.Empty(t, ParseUUID("a1b2c3d4-e5f6-11ee-8c2d-3e4f5a6b7c8d"))
	require.Empty(t, ParseUUID(""))
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	require.Contains(t, verr.Details, field)
}
