package models

import "time"

// ============================================
// Auth DTOs
// ============================================

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// ============================================
// User DTOs
// ============================================

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ============================================
// Team DTOs
// ============================================

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

type UpdateTeamRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type AddTeamMemberRequest struct {
	UserID string `json:"userId" binding:"required,uuid4"`
	Role   string `json:"role" binding:"required,oneof=leader member viewer"`
}

type UpdateTeamMemberRequest struct {
	Role string `json:"role" binding:"required,oneof=leader member viewer"`
}

type TeamResponse struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	IsActive  bool                     `json:"isActive"`
	CreatedAt time.Time                `json:"createdAt"`
	Members   []TeamMembershipResponse `json:"members,omitempty"`
}

type TeamMembershipResponse struct {
	ID       string        `json:"id"`
	TeamID   string        `json:"teamId"`
	UserID   string        `json:"userId"`
	Role     string        `json:"role"`
	JoinedAt time.Time     `json:"joinedAt"`
	User     *UserResponse `json:"user,omitempty"`
}

// ============================================
// Catalog DTOs
// ============================================

type CreateCatalogEntryRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

type ProjectResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// ============================================
// Work Log DTOs
// ============================================

type CreateWorkLogRequest struct {
	Date       string  `json:"date" binding:"required"`
	Hours      string  `json:"hours" binding:"required"`
	ProjectID  string  `json:"projectId" binding:"required"`
	CategoryID string  `json:"categoryId" binding:"required"`
	Details    *string `json:"details,omitempty"`
	UserID     string  `json:"userId,omitempty"`
}

type UpdateWorkLogRequest struct {
	Date       *string `json:"date,omitempty"`
	Hours      *string `json:"hours,omitempty"`
	ProjectID  *string `json:"projectId,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
	Details    *string `json:"details,omitempty"`
	UserID     *string `json:"userId,omitempty"`
}

type WorkLogResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName,omitempty"`
	UserEmail    string    `json:"userEmail,omitempty"`
	Date         string    `json:"date"`
	Hours        string    `json:"hours"`
	ProjectID    string    `json:"projectId"`
	ProjectName  string    `json:"projectName,omitempty"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName,omitempty"`
	Details      *string   `json:"details,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Pagination echoes the full filtered count, not the returned page size
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ============================================
// Dashboard DTOs
// ============================================

type StatResponse struct {
	Key        string `json:"key"`
	TotalHours string `json:"totalHours"`
	Count      int    `json:"count"`
}
