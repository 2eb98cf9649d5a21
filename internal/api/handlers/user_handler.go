package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AWLL-inc/work-management-sub003/internal/api/middleware"
	"github.com/AWLL-inc/work-management-sub003/internal/models"
	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/service"
)

// ============================================
// User Handler
// ============================================

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me - The authenticated user's own profile
// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), principal.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, toUserResponse(user))
}

// List - All users (admin)
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	users, err := h.userService.List(c.Request.Context(), principal)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	respondOK(c, responses)
}

// GetByID - One user by id
// GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	if _, ok := middleware.RequirePrincipal(c); !ok {
		return
	}

	id := query.ParseUUID(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "id must be a valid UUID", nil)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, toUserResponse(user))
}
