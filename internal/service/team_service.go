package service

import (
	"context"

	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

// ============================================
// Team Service
// ============================================

// TeamService defines team administration operations. Mutations are
// admin-only; listing is open to every authenticated user.
type TeamService interface {
	Create(ctx context.Context, p query.Principal, name string) (*repository.Team, error)
	GetByID(ctx context.Context, id string) (*repository.Team, error)
	List(ctx context.Context) ([]*repository.Team, error)
	Update(ctx context.Context, p query.Principal, id string, name *string, isActive *bool) (*repository.Team, error)

	AddMember(ctx context.Context, p query.Principal, teamID, userID, role string) error
	ListMembers(ctx context.Context, teamID string) ([]*repository.TeamMembership, error)
	UpdateMemberRole(ctx context.Context, p query.Principal, teamID, userID, role string) error
	RemoveMember(ctx context.Context, p query.Principal, teamID, userID string) error
}

type teamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

// NewTeamService creates a new team service
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) TeamService {
	return &teamService{teamRepo: teamRepo, userRepo: userRepo}
}

func (s *teamService) Create(ctx context.Context, p query.Principal, name string) (*repository.Team, error) {
	if p.Role != types.RoleAdmin {
		return nil, ErrForbidden
	}

	team := &repository.Team{
		Name:     name,
		IsActive: true,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) GetByID(ctx context.Context, id string) (*repository.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotFound
	}

	members, err := s.teamRepo.FindMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return team, nil
}

func (s *teamService) List(ctx context.Context) ([]*repository.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *teamService) Update(ctx context.Context, p query.Principal, id string, name *string, isActive *bool) (*repository.Team, error) {
	if p.Role != types.RoleAdmin {
		return nil, ErrForbidden
	}

	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotFound
	}

	if name != nil {
		team.Name = *name
	}
	if isActive != nil {
		team.IsActive = *isActive
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) AddMember(ctx context.Context, p query.Principal, teamID, userID, role string) error {
	if p.Role != types.RoleAdmin {
		return ErrForbidden
	}
	if !types.IsValidMembershipRole(role) {
		return query.NewValidationError("role", "role must be one of leader, member, viewer")
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	existing, err := s.teamRepo.FindMember(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrConflict
	}

	member := &repository.TeamMembership{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	}
	return s.teamRepo.AddMember(ctx, member)
}

func (s *teamService) ListMembers(ctx context.Context, teamID string) ([]*repository.TeamMembership, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotFound
	}
	return s.teamRepo.FindMembers(ctx, teamID)
}

func (s *teamService) UpdateMemberRole(ctx context.Context, p query.Principal, teamID, userID, role string) error {
	if p.Role != types.RoleAdmin {
		return ErrForbidden
	}
	if !types.IsValidMembershipRole(role) {
		return query.NewValidationError("role", "role must be one of leader, member, viewer")
	}
	return s.teamRepo.UpdateMemberRole(ctx, teamID, userID, role)
}

func (s *teamService) RemoveMember(ctx context.Context, p query.Principal, teamID, userID string) error {
	if p.Role != types.RoleAdmin {
		return ErrForbidden
	}
	return s.teamRepo.RemoveMember(ctx, teamID, userID)
}
