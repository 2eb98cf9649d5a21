package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
)

// ============================================
// Repository mocks shared by the service tests
// ============================================

type mockWorkLogRepo struct {
	mock.Mock
}

func (m *mockWorkLogRepo) List(ctx context.Context, f *query.Filter) ([]*repository.WorkLogView, int, error) {
	args := m.Called(ctx, f)
	views, _ := args.Get(0).([]*repository.WorkLogView)
	return views, args.Int(1), args.Error(2)
}

func (m *mockWorkLogRepo) ListAll(ctx context.Context, f *query.Filter) ([]*repository.WorkLogView, error) {
	args := m.Called(ctx, f)
	views, _ := args.Get(0).([]*repository.WorkLogView)
	return views, args.Error(1)
}

func (m *mockWorkLogRepo) Aggregate(ctx context.Context, f *query.Filter, groupBy string) ([]*repository.Stat, error) {
	args := m.Called(ctx, f, groupBy)
	stats, _ := args.Get(0).([]*repository.Stat)
	return stats, args.Error(1)
}

func (m *mockWorkLogRepo) Create(ctx context.Context, entry *repository.WorkLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockWorkLogRepo) FindByID(ctx context.Context, id string) (*repository.WorkLog, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*repository.WorkLog)
	return entry, args.Error(1)
}

func (m *mockWorkLogRepo) Update(ctx context.Context, entry *repository.WorkLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockWorkLogRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockProjectRepo struct {
	mock.Mock
}

func (m *mockProjectRepo) Create(ctx context.Context, project *repository.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *mockProjectRepo) FindByID(ctx context.Context, id string) (*repository.Project, error) {
	args := m.Called(ctx, id)
	project, _ := args.Get(0).(*repository.Project)
	return project, args.Error(1)
}

func (m *mockProjectRepo) ListActive(ctx context.Context) ([]*repository.Project, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]*repository.Project)
	return projects, args.Error(1)
}

func (m *mockProjectRepo) Update(ctx context.Context, project *repository.Project) error {
	return m.Called(ctx, project).Error(0)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *repository.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id string) (*repository.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*repository.Category)
	return category, args.Error(1)
}

func (m *mockCategoryRepo) ListActive(ctx context.Context) ([]*repository.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*repository.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *repository.Category) error {
	return m.Called(ctx, category).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *repository.User) error {
	args := m.Called(ctx, user)
	if user.ID == "" {
		user.ID = "f6a1b2c3-d4e5-4f6a-8b7c-8d9e0f1a2b3c"
	}
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*repository.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*repository.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*repository.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*repository.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*repository.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *repository.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) SaveRefreshToken(ctx context.Context, rt *repository.RefreshToken) error {
	return m.Called(ctx, rt).Error(0)
}

func (m *mockUserRepo) FindRefreshToken(ctx context.Context, token string) (*repository.RefreshToken, error) {
	args := m.Called(ctx, token)
	rt, _ := args.Get(0).(*repository.RefreshToken)
	return rt, args.Error(1)
}

func (m *mockUserRepo) DeleteRefreshToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockUserRepo) DeleteExpiredRefreshTokens(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// mockMemberships satisfies query.MembershipSource for engine construction.
type mockMemberships struct {
	mock.Mock
}

func (m *mockMemberships) FindTeamIDsByUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *mockMemberships) FindMemberUserIDsByTeams(ctx context.Context, teamIDs []string) ([]string, error) {
	args := m.Called(ctx, teamIDs)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
