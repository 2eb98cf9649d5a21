package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AWLL-inc/work-management-sub003/internal/config"
	"github.com/AWLL-inc/work-management-sub003/internal/db"
	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

// ============================================
// Auth Service
// ============================================

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*repository.User, string, string, error)
	Login(ctx context.Context, email, password string) (*repository.User, string, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	ValidateToken(token string) (*jwt.Token, error)
	PrincipalFromToken(token *jwt.Token) (query.Principal, error)
}

type authService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	redis    *db.RedisDB
}

func NewAuthService(cfg *config.Config, userRepo repository.UserRepository, redis *db.RedisDB) AuthService {
	return &authService{cfg: cfg, userRepo: userRepo, redis: redis}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*repository.User, string, string, error) {
	existingUser, _ := s.userRepo.FindByEmail(ctx, email)
	if existingUser != nil {
		return nil, "", "", ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &repository.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     types.RoleUser,
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", fmt.Errorf("failed to create user: %w", err)
	}

	accessToken, refreshToken, err := s.generateTokens(ctx, user)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate tokens: %w", err)
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*repository.User, string, string, error) {
	if err := s.throttle(ctx, email); err != nil {
		return nil, "", "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil || !user.IsActive {
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if s.redis != nil {
		s.redis.ResetLoginAttempts(ctx, email)
	}

	accessToken, refreshToken, err := s.generateTokens(ctx, user)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate tokens: %w", err)
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	rt, err := s.userRepo.FindRefreshToken(ctx, refreshToken)
	if err != nil || rt == nil {
		return "", "", ErrInvalidToken
	}

	if time.Now().After(rt.ExpiresAt) {
		s.userRepo.DeleteRefreshToken(ctx, refreshToken)
		return "", "", ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, rt.UserID)
	if err != nil || user == nil || !user.IsActive {
		return "", "", ErrInvalidToken
	}

	s.userRepo.DeleteRefreshToken(ctx, refreshToken)

	accessToken, newRefreshToken, err := s.generateTokens(ctx, user)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate tokens: %w", err)
	}

	return accessToken, newRefreshToken, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.userRepo.DeleteRefreshToken(ctx, refreshToken)
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

// PrincipalFromToken extracts the authenticated principal from validated
// token claims. The role travels inside the token so that authorization
// never needs a user lookup.
func (s *authService) PrincipalFromToken(token *jwt.Token) (query.Principal, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return query.Principal{}, ErrInvalidToken
	}
	userID, ok := claims["sub"].(string)
	if !ok {
		return query.Principal{}, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || !types.IsValidRole(role) {
		return query.Principal{}, ErrInvalidToken
	}
	return query.Principal{ID: userID, Role: role}, nil
}

// throttle counts failed-or-not login attempts per email inside a fixed
// window. Without Redis configured the check is a no-op.
func (s *authService) throttle(ctx context.Context, email string) error {
	if s.redis == nil {
		return nil
	}
	window := time.Duration(s.cfg.LoginWindowMinutes) * time.Minute
	count, err := s.redis.RegisterLoginAttempt(ctx, email, window)
	if err != nil {
		// Redis being down must not lock everyone out.
		return nil
	}
	if count > int64(s.cfg.LoginMaxAttempts) {
		return ErrRateLimited
	}
	return nil
}

func (s *authService) generateTokens(ctx context.Context, user *repository.User) (string, string, error) {
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(time.Hour * time.Duration(s.cfg.JWTExpiry)).Unix(),
		"iat":  time.Now().Unix(),
	})

	accessTokenString, err := accessToken.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", err
	}

	refreshTokenString := uuid.New().String()
	refreshTokenExpiry := time.Now().Add(time.Hour * 24 * time.Duration(s.cfg.RefreshExpiry))

	rt := &repository.RefreshToken{
		Token:     refreshTokenString,
		UserID:    user.ID,
		ExpiresAt: refreshTokenExpiry,
	}

	if err := s.userRepo.SaveRefreshToken(ctx, rt); err != nil {
		return "", "", err
	}

	return accessTokenString, refreshTokenString, nil
}
