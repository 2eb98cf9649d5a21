package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ============================================
// Team Models
// ============================================

// Team represents a team within the organization
type Team struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Members   []*TeamMembership
}

// TeamMembership maps a user into a team with a per-membership role
type TeamMembership struct {
	ID       string
	TeamID   string
	UserID   string
	Role     string
	JoinedAt time.Time
	User     *User
}

// ============================================
// Team Repository Interface
// ============================================

// TeamRepository defines team and membership data operations. The two
// id-set lookups back the team scope resolution and must stay batched:
// one query regardless of how many teams the caller belongs to.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	FindByID(ctx context.Context, id string) (*Team, error)
	List(ctx context.Context) ([]*Team, error)
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, id string) error

	// Member operations
	AddMember(ctx context.Context, member *TeamMembership) error
	FindMembers(ctx context.Context, teamID string) ([]*TeamMembership, error)
	FindMember(ctx context.Context, teamID, userID string) (*TeamMembership, error)
	UpdateMemberRole(ctx context.Context, teamID, userID, role string) error
	RemoveMember(ctx context.Context, teamID, userID string) error

	// Scope resolution lookups
	FindTeamIDsByUser(ctx context.Context, userID string) ([]string, error)
	FindMemberUserIDsByTeams(ctx context.Context, teamIDs []string) ([]string, error)
}

// ============================================
// PostgreSQL Team Repository Implementation
// ============================================

type pgTeamRepository struct {
	pool *pgxpool.Pool
}

// NewPgTeamRepository creates a new PostgreSQL team repository
func NewPgTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &pgTeamRepository{pool: pool}
}

func (r *pgTeamRepository) Create(ctx context.Context, team *Team) error {
	query := `
		INSERT INTO teams (name, is_active)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query, team.Name, team.IsActive).
		Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
}

func (r *pgTeamRepository) FindByID(ctx context.Context, id string) (*Team, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM teams WHERE id = $1
	`
	team := &Team{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.IsActive, &team.CreatedAt, &team.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (r *pgTeamRepository) List(ctx context.Context) ([]*Team, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM teams
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*Team
	for rows.Next() {
		team := &Team{}
		if err := rows.Scan(
			&team.ID, &team.Name, &team.IsActive, &team.CreatedAt, &team.UpdatedAt,
		); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (r *pgTeamRepository) Update(ctx context.Context, team *Team) error {
	query := `
		UPDATE teams SET name = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, team.ID, team.Name, team.IsActive)
	return err
}

func (r *pgTeamRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM teams WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *pgTeamRepository) AddMember(ctx context.Context, member *TeamMembership) error {
	query := `
		INSERT INTO team_memberships (team_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at
	`
	return r.pool.QueryRow(ctx, query, member.TeamID, member.UserID, member.Role).
		Scan(&member.ID, &member.JoinedAt)
}

func (r *pgTeamRepository) FindMembers(ctx context.Context, teamID string) ([]*TeamMembership, error) {
	query := `
		SELECT tm.id, tm.team_id, tm.user_id, tm.role, tm.joined_at,
		       u.id, u.name, u.email, u.role, u.is_active, u.created_at, u.updated_at
		FROM team_memberships tm
		INNER JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY u.name
	`
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*TeamMembership
	for rows.Next() {
		member := &TeamMembership{User: &User{}}
		if err := rows.Scan(
			&member.ID, &member.TeamID, &member.UserID, &member.Role, &member.JoinedAt,
			&member.User.ID, &member.User.Name, &member.User.Email, &member.User.Role,
			&member.User.IsActive, &member.User.CreatedAt, &member.User.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (r *pgTeamRepository) FindMember(ctx context.Context, teamID, userID string) (*TeamMembership, error) {
	query := `
		SELECT id, team_id, user_id, role, joined_at
		FROM team_memberships
		WHERE team_id = $1 AND user_id = $2
	`
	member := &TeamMembership{}
	err := r.pool.QueryRow(ctx, query, teamID, userID).Scan(
		&member.ID, &member.TeamID, &member.UserID, &member.Role, &member.JoinedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (r *pgTeamRepository) UpdateMemberRole(ctx context.Context, teamID, userID, role string) error {
	query := `
		UPDATE team_memberships SET role = $3
		WHERE team_id = $1 AND user_id = $2
	`
	_, err := r.pool.Exec(ctx, query, teamID, userID, role)
	return err
}

func (r *pgTeamRepository) RemoveMember(ctx context.Context, teamID, userID string) error {
	query := `DELETE FROM team_memberships WHERE team_id = $1 AND user_id = $2`
	_, err := r.pool.Exec(ctx, query, teamID, userID)
	return err
}

func (r *pgTeamRepository) FindTeamIDsByUser(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT tm.team_id
		FROM team_memberships tm
		INNER JOIN teams t ON t.id = tm.team_id
		WHERE tm.user_id = $1 AND t.is_active = TRUE
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teamIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		teamIDs = append(teamIDs, id)
	}
	return teamIDs, rows.Err()
}

// FindMemberUserIDsByTeams loads the member ids of every given team in a
// single query. DISTINCT collapses users who belong to several of them.
func (r *pgTeamRepository) FindMemberUserIDsByTeams(ctx context.Context, teamIDs []string) ([]string, error) {
	query := `
		SELECT DISTINCT user_id
		FROM team_memberships
		WHERE team_id = ANY($1::uuid[])
	`
	rows, err := r.pool.Query(ctx, query, teamIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, rows.Err()
}
