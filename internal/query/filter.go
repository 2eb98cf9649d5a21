package query

import (
	"strconv"
	"time"

	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

const (
	DefaultPage     = 1
	DefaultLimit    = 20
	MaxLimit        = 100
	MaxSearchLength = 500
)

// RawParams carries the raw, untrusted request parameters exactly as they
// arrive on the query string. The builder owns all parsing and validation.
type RawParams struct {
	Scope       string
	UserID      string
	Page        string
	Limit       string
	StartDate   string
	EndDate     string
	ProjectID   string
	ProjectIDs  string
	CategoryID  string
	CategoryIDs string
	SearchText  string
}

// Filter is the canonical, fully validated representation of a single
// request's query constraints. It is built fresh per request and never
// persisted. UserIDs nil means "no user filter" (all users visible).
type Filter struct {
	Scope        types.Scope
	TargetUserID string

	UserIDs     []string
	StartDate   *time.Time
	EndDate     *time.Time
	ProjectIDs  []string
	CategoryIDs []string
	SearchText  string
	Page        int
	Limit       int
}

// BuildFilter validates and normalizes raw request parameters into a
// Filter. It never touches storage and never consults ambient state.
func BuildFilter(raw RawParams) (*Filter, error) {
	f := &Filter{
		Scope: types.ScopeOwn,
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}

	if raw.Scope != "" {
		if !types.IsValidScope(raw.Scope) {
			return nil, NewValidationError("scope", "scope must be one of own, team, all, user")
		}
		f.Scope = types.Scope(raw.Scope)
	}

	// Invalid singular ids become "absent"; whether an absent target user
	// is an error depends on the scope and is decided by the resolver.
	f.TargetUserID = ParseUUID(raw.UserID)

	if raw.Page != "" {
		page, err := strconv.Atoi(raw.Page)
		if err != nil || page < 1 {
			return nil, NewValidationError("page", "page must be a positive integer")
		}
		f.Page = page
	}

	if raw.Limit != "" {
		limit, err := strconv.Atoi(raw.Limit)
		if err != nil || limit < 1 {
			return nil, NewValidationError("limit", "limit must be a positive integer")
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		f.Limit = limit
	}

	if raw.StartDate != "" {
		start, ok := ParseDate(raw.StartDate)
		if !ok {
			return nil, NewValidationError("startDate", "startDate must be a valid YYYY-MM-DD date")
		}
		f.StartDate = &start
	}

	if raw.EndDate != "" {
		end, ok := ParseDate(raw.EndDate)
		if !ok {
			return nil, NewValidationError("endDate", "endDate must be a valid YYYY-MM-DD date")
		}
		f.EndDate = &end
	}

	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return nil, NewValidationError("startDate", "startDate must not be after endDate")
	}

	f.ProjectIDs = pickIDs(raw.ProjectID, raw.ProjectIDs)
	f.CategoryIDs = pickIDs(raw.CategoryID, raw.CategoryIDs)

	f.SearchText = raw.SearchText
	if runes := []rune(f.SearchText); len(runes) > MaxSearchLength {
		f.SearchText = string(runes[:MaxSearchLength])
	}

	return f, nil
}

// pickIDs merges a singular id parameter with its comma-separated plural.
// When the plural parses to at least one valid id, the plural wins.
func pickIDs(singular, plural string) []string {
	if ids := ParseUUIDList(plural); len(ids) > 0 {
		return ids
	}
	if id := ParseUUID(singular); id != "" {
		return []string{id}
	}
	return nil
}
