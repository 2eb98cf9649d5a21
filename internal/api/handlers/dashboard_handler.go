package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AWLL-inc/work-management-sub003/internal/api/middleware"
	"github.com/AWLL-inc/work-management-sub003/internal/models"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/service"
)

// ============================================
// Dashboard Handler
// ============================================

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func dashboardParamsFromQuery(c *gin.Context) service.DashboardParams {
	return service.DashboardParams{
		Period:    c.Query("period"),
		Scope:     c.Query("scope"),
		UserID:    c.Query("userId"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
}

// Personal - Hours per day inside the resolved period
// GET /dashboard/personal
func (h *DashboardHandler) Personal(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Personal(c.Request.Context(), principal, dashboardParamsFromQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, toStatResponses(stats))
}

// Projects - Hours per project inside the resolved period
// GET /dashboard/projects
func (h *DashboardHandler) Projects(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Projects(c.Request.Context(), principal, dashboardParamsFromQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, toStatResponses(stats))
}

func toStatResponses(stats []*repository.Stat) []models.StatResponse {
	responses := make([]models.StatResponse, 0, len(stats))
	for _, stat := range stats {
		responses = append(responses, models.StatResponse{
			Key:        stat.Key,
			TotalHours: stat.TotalHours.String(),
			Count:      stat.Count,
		})
	}
	return responses
}
