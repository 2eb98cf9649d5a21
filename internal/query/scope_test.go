package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

type mockMembershipSource struct {
	mock.Mock
}

func (m *mockMembershipSource) FindTeamIDsByUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockMembershipSource) FindMemberUserIDsByTeams(ctx context.Context, teamIDs []string) ([]string, error) {
	args := m.Called(ctx, teamIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		scope   types.Scope
		target  string
		wantErr error
	}{
		{name: "user own", role: types.RoleUser, scope: types.ScopeOwn},
		{name: "user team", role: types.RoleUser, scope: types.ScopeTeam},
		{name: "user all forbidden", role: types.RoleUser, scope: types.ScopeAll, wantErr: ErrForbidden},
		{name: "manager all forbidden", role: types.RoleManager, scope: types.ScopeAll, wantErr: ErrForbidden},
		{name: "admin all", role: types.RoleAdmin, scope: types.ScopeAll},
		{name: "admin user any target", role: types.RoleAdmin, scope: types.ScopeUser, target: uuidB},
		{name: "user user other forbidden", role: types.RoleUser, scope: types.ScopeUser, target: uuidB, wantErr: ErrForbidden},
		{name: "user user self allowed", role: types.RoleUser, scope: types.ScopeUser, target: uuidA},
		{name: "manager user self allowed", role: types.RoleManager, scope: types.ScopeUser, target: uuidA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Principal{ID: uuidA, Role: tt.role}
			err := Authorize(p, tt.scope, tt.target)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAuthorizeUnknownScope(t *testing.T) {
	err := Authorize(Principal{ID: uuidA, Role: types.RoleAdmin}, types.Scope("galaxy"), "")
	requireValidationError(t, err, "scope")
}

func TestResolveOwnScope(t *testing.T) {
	engine := NewEngine(new(mockMembershipSource))

	ids, err := engine.Resolve(context.Background(), Principal{ID: uuidA, Role: types.RoleUser}, types.ScopeOwn, "")
	require.NoError(t, err)
	require.Equal(t, []string{uuidA}, ids)
}

func TestResolveAllScope(t *testing.T) {
	engine := NewEngine(new(mockMembershipSource))

	// nil means "no user filter": every user visible.
	ids, err := engine.Resolve(context.Background(), Principal{ID: uuidA, Role: types.RoleAdmin}, types.ScopeAll, "")
	require.NoError(t, err)
	require.Nil(t, ids)
}

func TestResolveUserScope(t *testing.T) {
	engine := NewEngine(new(mockMembershipSource))
	admin := Principal{ID: uuidA, Role: types.RoleAdmin}

	ids, err := engine.Resolve(context.Background(), admin, types.ScopeUser, uuidB)
	require.NoError(t, err)
	require.Equal(t, []string{uuidB}, ids)

	// Missing target is a validation failure, not a policy one.
	_, err = engine.Resolve(context.Background(), admin, types.ScopeUser, "")
	requireValidationError(t, err, "userId")
}

func TestResolveTeamScope(t *testing.T) {
	memberA := "c3d4e5f6-a1b2-4c3d-8e4f-5a6b7c8d9e0f"
	memberB := "d4e5f6a1-b2c3-4d4e-9f5a-6b7c8d9e0f1a"

	memberships := new(mockMembershipSource)
	memberships.On("FindTeamIDsByUser", mock.Anything, uuidA).Return([]string{"team-1", "team-2"}, nil)
	memberships.On("FindMemberUserIDsByTeams", mock.Anything, []string{"team-1", "team-2"}).
		Return([]string{memberA, uuidA, memberB, memberA}, nil)

	engine := NewEngine(memberships)
	ids, err := engine.Resolve(context.Background(), Principal{ID: uuidA, Role: types.RoleUser}, types.ScopeTeam, "")
	require.NoError(t, err)

	// Deduplicated, self always first and present exactly once.
	require.Equal(t, []string{uuidA, memberA, memberB}, ids)
	memberships.AssertExpectations(t)
}

func TestResolveTeamScopeDegradesToOwn(t *testing.T) {
	memberships := new(mockMembershipSource)
	memberships.On("FindTeamIDsByUser", mock.Anything, uuidA).Return([]string{}, nil)

	engine := NewEngine(memberships)
	ids, err := engine.Resolve(context.Background(), Principal{ID: uuidA, Role: types.RoleUser}, types.ScopeTeam, "")
	require.NoError(t, err)
	require.Equal(t, []string{uuidA}, ids)

	memberships.AssertNotCalled(t, "FindMemberUserIDsByTeams", mock.Anything, mock.Anything)
}

func TestBuildSpecAuthorizationPrecedesValidation(t *testing.T) {
	engine := NewEngine(new(mockMembershipSource))

	// A forbidden scope combined with a malformed page must fail on policy,
	// never leaking validation detail to a caller who may not ask at all.
	_, err := engine.BuildSpec(context.Background(),
		Principal{ID: uuidA, Role: types.RoleUser},
		RawParams{Scope: "all", Page: "zero"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestBuildSpecSetsResolvedUserIDs(t *testing.T) {
	memberships := new(mockMembershipSource)
	engine := NewEngine(memberships)

	f, err := engine.BuildSpec(context.Background(),
		Principal{ID: uuidA, Role: types.RoleUser},
		RawParams{Scope: "own", StartDate: "2024-05-01", EndDate: "2024-05-31"})
	require.NoError(t, err)
	require.Equal(t, []string{uuidA}, f.UserIDs)
	require.Equal(t, types.ScopeOwn, f.Scope)
}

func TestBuildSpecInvalidTargetIsAbsent(t *testing.T) {
	engine := NewEngine(new(mockMembershipSource))

	// A malformed userId is treated as absent; under scope=user that makes
	// the target missing rather than forbidden.
	_, err := engine.BuildSpec(context.Background(),
		Principal{ID: uuidA, Role: types.RoleAdmin},
		RawParams{Scope: "user", UserID: "not-a-uuid"})
	requireValidationError(t, err, "userId")
}
