package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AWLL-inc/work-management-sub003/internal/api/middleware"
	"github.com/AWLL-inc/work-management-sub003/internal/models"
	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/service"
)

// ============================================
// Work Log Handler
// ============================================

type WorkLogHandler struct {
	workLogService service.WorkLogService
	exportService  service.ExportService
}

func NewWorkLogHandler(workLogService service.WorkLogService, exportService service.ExportService) *WorkLogHandler {
	return &WorkLogHandler{workLogService: workLogService, exportService: exportService}
}

// rawParamsFromQuery collects the listing/export query string untouched;
// parsing and validation happen inside the query engine.
func rawParamsFromQuery(c *gin.Context) query.RawParams {
	return query.RawParams{
		Scope:       c.Query("scope"),
		UserID:      c.Query("userId"),
		Page:        c.Query("page"),
		Limit:       c.Query("limit"),
		StartDate:   c.Query("startDate"),
		EndDate:     c.Query("endDate"),
		ProjectID:   c.Query("projectId"),
		ProjectIDs:  c.Query("projectIds"),
		CategoryID:  c.Query("categoryId"),
		CategoryIDs: c.Query("categoryIds"),
		SearchText:  c.Query("searchText"),
	}
}

// List - Scoped, filtered, paginated work logs
// GET /work-logs
func (h *WorkLogHandler) List(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	views, pagination, err := h.workLogService.List(c.Request.Context(), principal, rawParamsFromQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]models.WorkLogResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, toWorkLogViewResponse(view))
	}
	respondList(c, responses, pagination)
}

// Create - Record a work log entry
// POST /work-logs
func (h *WorkLogHandler) Create(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	var req models.CreateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	entry, err := h.workLogService.Create(c.Request.Context(), principal, service.CreateWorkLogInput{
		Date:       req.Date,
		Hours:      req.Hours,
		ProjectID:  req.ProjectID,
		CategoryID: req.CategoryID,
		Details:    req.Details,
		UserID:     req.UserID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondCreated(c, toWorkLogResponse(entry))
}

// Update - Patch an existing entry
// PUT /work-logs/:id
func (h *WorkLogHandler) Update(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	id := query.ParseUUID(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "id must be a valid UUID", nil)
		return
	}

	var req models.UpdateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	entry, err := h.workLogService.Update(c.Request.Context(), principal, id, service.UpdateWorkLogInput{
		Date:       req.Date,
		Hours:      req.Hours,
		ProjectID:  req.ProjectID,
		CategoryID: req.CategoryID,
		Details:    req.Details,
		UserID:     req.UserID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, toWorkLogResponse(entry))
}

// Delete - Remove an entry (owner or admin)
// DELETE /work-logs/:id
func (h *WorkLogHandler) Delete(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	id := query.ParseUUID(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "id must be a valid UUID", nil)
		return
	}

	if err := h.workLogService.Delete(c.Request.Context(), principal, id); err != nil {
		handleServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"deleted": true})
}

// Export - CSV download over the same scope/filter pipeline as List.
// Errors keep the JSON envelope; only a successful export switches to CSV.
// GET /work-logs/export
func (h *WorkLogHandler) Export(c *gin.Context) {
	principal, ok := middleware.RequirePrincipal(c)
	if !ok {
		return
	}

	// The export surface names its window and list params differently from
	// the listing endpoint; both feed the same pipeline.
	raw := query.RawParams{
		Scope:       c.Query("scope"),
		UserID:      c.Query("userId"),
		StartDate:   c.Query("from"),
		EndDate:     c.Query("to"),
		ProjectIDs:  c.Query("projects"),
		CategoryIDs: c.Query("categories"),
	}

	filename, body, err := h.exportService.Export(c.Request.Context(), principal, raw)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}

func toWorkLogResponse(entry *repository.WorkLog) models.WorkLogResponse {
	return models.WorkLogResponse{
		ID:         entry.ID,
		UserID:     entry.UserID,
		Date:       entry.LogDate.Format("2006-01-02"),
		Hours:      entry.Hours.String(),
		ProjectID:  entry.ProjectID,
		CategoryID: entry.CategoryID,
		Details:    entry.Details,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}

func toWorkLogViewResponse(view *repository.WorkLogView) models.WorkLogResponse {
	resp := toWorkLogResponse(&view.WorkLog)
	resp.UserName = view.UserName
	resp.UserEmail = view.UserEmail
	resp.ProjectName = view.ProjectName
	resp.CategoryName = view.CategoryName
	return resp
}
