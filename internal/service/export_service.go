package service

import (
	"context"
	"fmt"

	"github.com/AWLL-inc/work-management-sub003/internal/export"
	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
)

// ============================================
// Export Service
// ============================================

// ExportService produces the CSV download for the work-log export endpoint.
// It composes the same scope/filter engine as the listing path, so the file
// can never contain rows the list view would hide.
type ExportService interface {
	Export(ctx context.Context, p query.Principal, raw query.RawParams) (filename string, body string, err error)
}

type exportService struct {
	engine      *query.Engine
	workLogRepo repository.WorkLogRepository
}

// NewExportService creates a new export service
func NewExportService(engine *query.Engine, workLogRepo repository.WorkLogRepository) ExportService {
	return &exportService{engine: engine, workLogRepo: workLogRepo}
}

func (s *exportService) Export(ctx context.Context, p query.Principal, raw query.RawParams) (string, string, error) {
	spec, err := s.engine.BuildSpec(ctx, p, raw)
	if err != nil {
		return "", "", err
	}

	// The window cap is checked before the repository is ever consulted.
	if err := export.ValidateWindow(spec.StartDate, spec.EndDate); err != nil {
		return "", "", err
	}

	rows, err := s.workLogRepo.ListAll(ctx, spec)
	if err != nil {
		return "", "", err
	}

	filename := fmt.Sprintf("work-logs-%s_%s.csv", raw.StartDate, raw.EndDate)
	return filename, export.Serialize(rows), nil
}
