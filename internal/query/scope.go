package query

import (
	"context"

	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

// Principal is the authenticated caller. It is always threaded in as an
// explicit argument, never read from ambient request state.
type Principal struct {
	ID   string
	Role string
}

// MembershipSource provides the team-membership lookups the resolver needs.
// Satisfied by repository.TeamRepository.
type MembershipSource interface {
	FindTeamIDsByUser(ctx context.Context, userID string) ([]string, error)
	FindMemberUserIDsByTeams(ctx context.Context, teamIDs []string) ([]string, error)
}

// scopeRoles is the declarative permission table: which roles may request
// which scope unconditionally. The user scope additionally allows any
// caller to target themselves; that exception lives in Authorize.
var scopeRoles = map[types.Scope]map[string]bool{
	types.ScopeOwn: {
		types.RoleUser:    true,
		types.RoleManager: true,
		types.RoleAdmin:   true,
	},
	types.ScopeTeam: {
		types.RoleUser:    true,
		types.RoleManager: true,
		types.RoleAdmin:   true,
	},
	types.ScopeAll: {
		types.RoleAdmin: true,
	},
	types.ScopeUser: {
		types.RoleAdmin: true,
	},
}

// Authorize decides whether the principal may request the scope at all.
// It is a pure function over its arguments and runs before any validation
// or storage access.
func Authorize(p Principal, scope types.Scope, explicitUserID string) error {
	allowed, known := scopeRoles[scope]
	if !known {
		return NewValidationError("scope", "scope must be one of own, team, all, user")
	}
	if allowed[p.Role] {
		return nil
	}
	if scope == types.ScopeUser && explicitUserID != "" && explicitUserID == p.ID {
		return nil
	}
	return ErrForbidden
}

// Engine turns a principal plus a requested scope into an authorized set of
// target user ids and composes it with the filter builder. The listing,
// export and dashboard flows all consult this single implementation, so the
// authorization rule set cannot drift between endpoints.
type Engine struct {
	memberships MembershipSource
}

func NewEngine(memberships MembershipSource) *Engine {
	return &Engine{memberships: memberships}
}

// Resolve returns the set of user ids the principal may query under the
// requested scope. A nil slice means "no user filter" (every user visible).
// Policy violations yield ErrForbidden before any storage access.
func (e *Engine) Resolve(ctx context.Context, p Principal, scope types.Scope, explicitUserID string) ([]string, error) {
	if err := Authorize(p, scope, explicitUserID); err != nil {
		return nil, err
	}
	return e.resolveUserIDs(ctx, p, scope, explicitUserID)
}

// BuildSpec composes scope authorization, filter validation and membership
// resolution into the canonical Filter for one request, in that order: a
// request that will ultimately be rejected never reaches storage.
func (e *Engine) BuildSpec(ctx context.Context, p Principal, raw RawParams) (*Filter, error) {
	scope := types.ScopeOwn
	if raw.Scope != "" {
		if !types.IsValidScope(raw.Scope) {
			return nil, NewValidationError("scope", "scope must be one of own, team, all, user")
		}
		scope = types.Scope(raw.Scope)
	}
	target := ParseUUID(raw.UserID)

	if err := Authorize(p, scope, target); err != nil {
		return nil, err
	}

	f, err := BuildFilter(raw)
	if err != nil {
		return nil, err
	}

	userIDs, err := e.resolveUserIDs(ctx, p, scope, target)
	if err != nil {
		return nil, err
	}
	f.UserIDs = userIDs
	return f, nil
}

func (e *Engine) resolveUserIDs(ctx context.Context, p Principal, scope types.Scope, explicitUserID string) ([]string, error) {
	switch scope {
	case types.ScopeOwn:
		return []string{p.ID}, nil

	case types.ScopeUser:
		if explicitUserID == "" {
			return nil, NewValidationError("userId", "userId is required for scope=user")
		}
		return []string{explicitUserID}, nil

	case types.ScopeAll:
		return nil, nil

	case types.ScopeTeam:
		teamIDs, err := e.memberships.FindTeamIDsByUser(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		// No memberships degrades to own scope.
		if len(teamIDs) == 0 {
			return []string{p.ID}, nil
		}
		memberIDs, err := e.memberships.FindMemberUserIDsByTeams(ctx, teamIDs)
		if err != nil {
			return nil, err
		}
		return dedupeWithSelf(memberIDs, p.ID), nil

	default:
		return nil, NewValidationError("scope", "scope must be one of own, team, all, user")
	}
}

// dedupeWithSelf deduplicates member ids and guarantees the principal's own
// id is present even when membership rows omit a self reference.
func dedupeWithSelf(memberIDs []string, selfID string) []string {
	seen := map[string]bool{selfID: true}
	ids := []string{selfID}
	for _, id := range memberIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
