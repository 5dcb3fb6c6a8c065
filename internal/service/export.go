package service

import (
	"context"
	"fmt"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/repo"
)

// ExportService assembles a full flat export of the menu.
type ExportService struct {
	rows repo.ExportRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(rows repo.ExportRepo) *ExportService {
	return &ExportService{rows: rows}
}

// Export returns one row per dish across every canteen and window.
// Windows with no dishes contribute one row with empty dish fields.
// Tags is never nil so JSON renders [] rather than null.
func (s *ExportService) Export(ctx context.Context) ([]domain.MenuExportRow, error) {
	rows, err := s.rows.MenuRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	for i := range rows {
		if rows[i].Tags == nil {
			rows[i].Tags = []string{}
		}
	}
	return rows, nil
}
