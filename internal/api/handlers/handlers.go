package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AWLL-inc/work-management-sub003/internal/config"
	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/service"
)

// Error envelope codes
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL_ERROR"
)

// production controls whether internal errors surface their cause.
var production bool

// ============================================
// Handlers Container
// ============================================

type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Team      *TeamHandler
	Catalog   *CatalogHandler
	WorkLog   *WorkLogHandler
	Dashboard *DashboardHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	production = cfg.IsProduction()
	return &Handlers{
		Auth:      NewAuthHandler(services.Auth),
		User:      NewUserHandler(services.User),
		Team:      NewTeamHandler(services.Team),
		Catalog:   NewCatalogHandler(services.Catalog),
		WorkLog:   NewWorkLogHandler(services.WorkLog, services.Export),
		Dashboard: NewDashboardHandler(services.Dashboard),
	}
}

// ============================================
// Response helpers
// ============================================

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, data interface{}, pagination interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "pagination": pagination})
}

func respondError(c *gin.Context, status int, code, message string, details interface{}) {
	body := gin.H{"code": code, "message": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, gin.H{"success": false, "error": body})
}

// handleServiceError maps service/query errors onto the uniform envelope.
// Repository and other unexpected failures surface a generic message in
// production; the underlying error is attached everywhere else.
func handleServiceError(c *gin.Context, err error) {
	var verr *query.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, CodeValidation, verr.Message, verr.Details)
	case errors.Is(err, query.ErrForbidden), errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, CodeForbidden, "Insufficient permissions for the requested operation", nil)
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		respondError(c, http.StatusUnauthorized, CodeUnauthorized, "Authentication failed", nil)
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "Resource not found", nil)
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrUserExists):
		respondError(c, http.StatusConflict, CodeConflict, "Resource already exists", nil)
	case errors.Is(err, service.ErrRateLimited):
		respondError(c, http.StatusTooManyRequests, CodeRateLimited, "Too many attempts, try again later", nil)
	default:
		var details interface{}
		if !production {
			details = err.Error()
		}
		respondError(c, http.StatusInternalServerError, CodeInternal, "An unexpected error occurred", details)
	}
}
