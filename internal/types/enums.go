package types

// User roles
const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// Team membership roles
const (
	MemberLeader = "leader"
	MemberMember = "member"
	MemberViewer = "viewer"
)

// Scope is the requested visibility dimension for work-log queries.
type Scope string

const (
	ScopeOwn  Scope = "own"
	ScopeTeam Scope = "team"
	ScopeAll  Scope = "all"
	ScopeUser Scope = "user"
)

// Dashboard period shorthands
const (
	PeriodToday     = "today"
	PeriodWeek      = "week"
	PeriodMonth     = "month"
	PeriodLastWeek  = "lastWeek"
	PeriodLastMonth = "lastMonth"
	PeriodCustom    = "custom"
)

// Dashboard grouping dimensions
const (
	GroupByProject = "project"
	GroupByDay     = "day"
)

var ValidRoles = []string{RoleUser, RoleManager, RoleAdmin}

var ValidMembershipRoles = []string{MemberLeader, MemberMember, MemberViewer}

var ValidScopes = []Scope{ScopeOwn, ScopeTeam, ScopeAll, ScopeUser}

var ValidPeriods = []string{
	PeriodToday, PeriodWeek, PeriodMonth,
	PeriodLastWeek, PeriodLastMonth, PeriodCustom,
}

// Helper functions for validation
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidMembershipRole(role string) bool {
	for _, r := range ValidMembershipRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidScope(scope string) bool {
	for _, s := range ValidScopes {
		if string(s) == scope {
			return true
		}
	}
	return false
}

func IsValidPeriod(period string) bool {
	for _, p := range ValidPeriods {
		if p == period {
			return true
		}
	}
	return false
}
