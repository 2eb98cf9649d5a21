package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AWLL-inc/work-management-sub003/internal/api/middleware"
	"github.com/AWLL-inc/work-management-sub003/internal/models"
	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/service"
)

// ============================================
// Team Handler
// ============================================

type TeamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// Create - Create a team (admin)
// POST /teams
func (h *TeamHandler) Create(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), principal, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondCreated(c, toTeamResponse(team))
}

// List - All teams
// GET /teams
func (h *TeamHandler) List(c *gin.Context) {
	if _, ok := middleware.RequirePrincipal(c); !ok {
		return
	}

	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]models.TeamResponse, 0, len(teams))
	for _, team := range teams {
		responses = append(responses, toTeamResponse(team))
	}
	respondOK(c, responses)
}

// GetByID - One team with its members
// GET /teams/:id
func (h *TeamHandler) GetByID(c *gin.Context) {
	if _, ok := middleware.RequirePrincipal(c); !ok {
		return
	}

	id := query.ParseUUID(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "id must be a valid UUID", nil)
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, toTeamResponse(team))
}

// Update - Rename or (de)activate a team (admin)
// PUT /teams/:id
func (h *TeamHandler) Update(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	id := query.ParseUUID(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "id must be a valid UUID", nil)
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), principal, id, req.Name, req.IsActive)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, toTeamResponse(team))
}

// AddMember - Attach a user to a team (admin)
// POST /teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	teamID := query.ParseUUID(c.Param("id"))
	if teamID == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "id must be a valid UUID", nil)
		return
	}

	var req models.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	if err := h.teamService.AddMember(c.Request.Context(), principal, teamID, req.UserID, req.Role); err != nil {
		handleServiceError(c, err)
		return
	}

	respondCreated(c, gin.H{"added": true})
}

// ListMembers - Members of a team
// GET /teams/:id/members
func (h *TeamHandler) ListMembers(c *gin.Context) {
	if _, ok := middleware.RequirePrincipal(c); !ok {
		return
	}

	teamID := query.ParseUUID(c.Param("id"))
	if teamID == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "id must be a valid UUID", nil)
		return
	}

	members, err := h.teamService.ListMembers(c.Request.Context(), teamID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, toMembershipResponses(members))
}

// UpdateMemberRole - Change a membership role (admin)
// PUT /teams/:id/members/:userId
func (h *TeamHandler) UpdateMemberRole(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	teamID := query.ParseUUID(c.Param("id"))
	userID := query.ParseUUID(c.Param("userId"))
	if teamID == "" || userID == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "id and userId must be valid UUIDs", nil)
		return
	}

	var req models.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	if err := h.teamService.UpdateMemberRole(c.Request.Context(), principal, teamID, userID, req.Role); err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"updated": true})
}

// RemoveMember - Detach a user from a team (admin)
// DELETE /teams/:id/members/:userId
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	teamID := query.ParseUUID(c.Param("id"))
	userID := query.ParseUUID(c.Param("userId"))
	if teamID == "" || userID == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "id and userId must be valid UUIDs", nil)
		return
	}

	if err := h.teamService.RemoveMember(c.Request.Context(), principal, teamID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"removed": true})
}

func toTeamResponse(team *repository.Team) models.TeamResponse {
	return models.TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		IsActive:  team.IsActive,
		CreatedAt: team.CreatedAt,
		Members:   toMembershipResponses(team.Members),
	}
}

func toMembershipResponses(members []*repository.TeamMembership) []models.TeamMembershipResponse {
	if members == nil {
		return nil
	}
	responses := make([]models.TeamMembershipResponse, 0, len(members))
	for _, member := range members {
		resp := models.TeamMembershipResponse{
			ID:       member.ID,
			TeamID:   member.TeamID,
			UserID:   member.UserID,
			Role:     member.Role,
			JoinedAt: member.JoinedAt,
		}
		if member.User != nil {
			user := toUserResponse(member.User)
			resp.User = &user
		}
		responses = append(responses, resp)
	}
	return responses
}
