package app

import (
	"context"
	"fmt"

	"github.com/example/facscrub/internal/export"
	"github.com/example/facscrub/internal/ports/primary"
	"github.com/example/facscrub/internal/ports/secondary"
)

// ExportServiceImpl implements the ExportService interface.
type ExportServiceImpl struct {
	taskRepo       secondary.TaskRepository
	inspectionRepo secondary.InspectionRepository
	consumableRepo secondary.ConsumableRepository
}

// NewExportService creates a new ExportService with injected dependencies.
func NewExportService(
	taskRepo secondary.TaskRepository,
	inspectionRepo secondary.InspectionRepository,
	consumableRepo secondary.ConsumableRepository,
) *ExportServiceImpl {
	return &ExportServiceImpl{
		taskRepo:       taskRepo,
		inspectionRepo: inspectionRepo,
		consumableRepo: consumableRepo,
	}
}

// ExportWorkbook writes the full current contents of all three tables to
// an xlsx workbook at path.
func (s *ExportServiceImpl) ExportWorkbook(ctx context.Context, path string) error {
	taskRecords, err := s.taskRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("tasks: list rows: %w", err)
	}
	inspectionRecords, err := s.inspectionRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("inspections: list rows: %w", err)
	}
	consumableRecords, err := s.consumableRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("consumables: list rows: %w", err)
	}

	tasks := make([]*primary.Task, 0, len(taskRecords))
	for _, rec := range taskRecords {
		tasks = append(tasks, taskToDTO(rec))
	}
	inspections := make([]*primary.Inspection, 0, len(inspectionRecords))
	for _, rec := range inspectionRecords {
		inspections = append(inspections, inspectionToDTO(rec))
	}
	consumables := make([]*primary.ConsumableUsage, 0, len(consumableRecords))
	for _, rec := range consumableRecords {
		consumables = append(consumables, consumableToDTO(rec))
	}

	workbook, err := export.Workbook(tasks, inspections, consumables)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}

	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// Ensure ExportServiceImpl implements the interface
var _ primary.ExportService = (*ExportServiceImpl)(nil)
