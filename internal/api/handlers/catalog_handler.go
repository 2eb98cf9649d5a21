package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AWLL-inc/work-management-sub003/internal/api/middleware"
	"github.com/AWLL-inc/work-management-sub003/internal/models"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/service"
)

// ============================================
// Catalog Handler (projects & categories)
// ============================================

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProjects - Active projects for filter dropdowns
// GET /projects
func (h *CatalogHandler) ListProjects(c *gin.Context) {
	if _, ok := middleware.RequirePrincipal(c); !ok {
		return
	}

	projects, err := h.catalogService.ListProjects(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]models.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, toProjectResponse(project))
	}
	respondOK(c, responses)
}

// CreateProject - Add a project (admin)
// POST /projects
func (h *CatalogHandler) CreateProject(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	var req models.CreateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	project, err := h.catalogService.CreateProject(c.Request.Context(), principal, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondCreated(c, toProjectResponse(project))
}

// ListCategories - Active categories for filter dropdowns
// GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	if _, ok := middleware.RequirePrincipal(c); !ok {
		return
	}

	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}
	respondOK(c, responses)
}

// CreateCategory - Add a category (admin)
// POST /categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	var req models.CreateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), principal, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondCreated(c, toCategoryResponse(category))
}

func toProjectResponse(project *repository.Project) models.ProjectResponse {
	return models.ProjectResponse{ID: project.ID, Name: project.Name, IsActive: project.IsActive}
}

func toCategoryResponse(category *repository.Category) models.CategoryResponse {
	return models.CategoryResponse{ID: category.ID, Name: category.Name, IsActive: category.IsActive}
}
