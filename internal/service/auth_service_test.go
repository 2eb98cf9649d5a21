package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AWLL-inc/work-management-sub003/internal/config"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     1,
		RefreshExpiry: 7,
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestRegister(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *repository.User) bool {
		return u.Role == types.RoleUser && u.IsActive && u.Password != "secret-password"
	})).Return(nil)
	users.On("SaveRefreshToken", mock.Anything, mock.Anything).Return(nil)

	svc := NewAuthService(testConfig(), users, nil)
	user, accessToken, refreshToken, err := svc.Register(context.Background(), "New User", "new@example.com", "secret-password")
	require.NoError(t, err)

	require.Equal(t, types.RoleUser, user.Role)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	users.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(&repository.User{ID: selfID, Email: "taken@example.com"}, nil)

	svc := NewAuthService(testConfig(), users, nil)
	_, _, _, err := svc.Register(context.Background(), "Someone", "taken@example.com", "password123")
	require.ErrorIs(t, err, ErrUserExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(&repository.User{
		ID:       selfID,
		Email:    "alice@example.com",
		Password: hashPassword(t, "correct-horse"),
		Role:     types.RoleUser,
		IsActive: true,
	}, nil)
	users.On("SaveRefreshToken", mock.Anything, mock.Anything).Return(nil)

	svc := NewAuthService(testConfig(), users, nil)
	user, accessToken, _, err := svc.Login(context.Background(), "alice@example.com", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, selfID, user.ID)

	// The issued token must round-trip through validation into a principal.
	token, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	principal, err := svc.PrincipalFromToken(token)
	require.NoError(t, err)
	require.Equal(t, selfID, principal.ID)
	require.Equal(t, types.RoleUser, principal.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(&repository.User{
		ID:       selfID,
		Password: hashPassword(t, "correct-horse"),
		IsActive: true,
	}, nil)

	svc := NewAuthService(testConfig(), users, nil)
	_, _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "gone@example.com").Return(&repository.User{
		ID:       selfID,
		Password: hashPassword(t, "correct-horse"),
		IsActive: false,
	}, nil)

	svc := NewAuthService(testConfig(), users, nil)
	_, _, _, err := svc.Login(context.Background(), "gone@example.com", "correct-horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindRefreshToken", mock.Anything, "old-token").Return(&repository.RefreshToken{
		Token:     "old-token",
		UserID:    selfID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	users.On("FindByID", mock.Anything, selfID).Return(&repository.User{
		ID: selfID, Role: types.RoleUser, IsActive: true,
	}, nil)
	users.On("DeleteRefreshToken", mock.Anything, "old-token").Return(nil)
	users.On("SaveRefreshToken", mock.Anything, mock.Anything).Return(nil)

	svc := NewAuthService(testConfig(), users, nil)
	accessToken, newRefreshToken, err := svc.RefreshToken(context.Background(), "old-token")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEqual(t, "old-token", newRefreshToken)

	// The old token is consumed on rotation.
	users.AssertCalled(t, "DeleteRefreshToken", mock.Anything, "old-token")
}

func TestRefreshTokenExpired(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindRefreshToken", mock.Anything, "stale").Return(&repository.RefreshToken{
		Token:     "stale",
		UserID:    selfID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)
	users.On("DeleteRefreshToken", mock.Anything, "stale").Return(nil)

	svc := NewAuthService(testConfig(), users, nil)
	_, _, err := svc.RefreshToken(context.Background(), "stale")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, mock.Anything).Return(&repository.User{
		ID:       selfID,
		Password: hashPassword(t, "pw"),
		Role:     types.RoleUser,
		IsActive: true,
	}, nil)
	users.On("SaveRefreshToken", mock.Anything, mock.Anything).Return(nil)

	issuer := NewAuthService(testConfig(), users, nil)
	_, accessToken, _, err := issuer.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWTSecret = "different-secret"
	verifier := NewAuthService(otherCfg, users, nil)
	_, err = verifier.ValidateToken(accessToken)
	require.Error(t, err)
}
