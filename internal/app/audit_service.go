package app

import (
	"context"
	"fmt"

	"github.com/example/facscrub/internal/core/rules"
	"github.com/example/facscrub/internal/ports/primary"
	"github.com/example/facscrub/internal/ports/secondary"
)

// AuditServiceImpl implements the AuditService interface. It reads every
// row and checks the post-normalization invariants with the pure
// predicates in core/rules; nothing is mutated.
type AuditServiceImpl struct {
	taskRepo       secondary.TaskRepository
	inspectionRepo secondary.InspectionRepository
	consumableRepo secondary.ConsumableRepository
}

// NewAuditService creates a new AuditService with injected dependencies.
func NewAuditService(
	taskRepo secondary.TaskRepository,
	inspectionRepo secondary.InspectionRepository,
	consumableRepo secondary.ConsumableRepository,
) *AuditServiceImpl {
	return &AuditServiceImpl{
		taskRepo:       taskRepo,
		inspectionRepo: inspectionRepo,
		consumableRepo: consumableRepo,
	}
}

// Audit checks all three tables and reports every row that still violates
// an invariant the normalizer is supposed to establish.
func (s *AuditServiceImpl) Audit(ctx context.Context) (*primary.AuditReport, error) {
	report := &primary.AuditReport{}

	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("tasks: list rows: %w", err)
	}
	taskAudit := primary.TableAudit{Table: "tasks", Rows: int64(len(tasks))}
	for _, rec := range tasks {
		problems := rules.TaskViolations(rules.TaskFields{
			Status:       rec.Status,
			TaskType:     rec.TaskType,
			Notes:        rec.Notes,
			HasNotes:     rec.HasNotes,
			DurationMins: rec.DurationMins,
		})
		if len(problems) > 0 {
			taskAudit.Violations = append(taskAudit.Violations, primary.RowViolation{
				RowID:    rec.ID,
				Problems: problems,
			})
		}
	}
	report.Tables = append(report.Tables, taskAudit)

	inspections, err := s.inspectionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inspections: list rows: %w", err)
	}
	inspectionAudit := primary.TableAudit{Table: "inspections", Rows: int64(len(inspections))}
	for _, rec := range inspections {
		problems := rules.InspectionViolations(rules.InspectionFields{
			Feedback:          rec.Feedback,
			IssuesFound:       rec.IssuesFound,
			CorrectiveActions: rec.CorrectiveActions,
			HygieneScore:      rec.HygieneScore,
		})
		if len(problems) > 0 {
			inspectionAudit.Violations = append(inspectionAudit.Violations, primary.RowViolation{
				RowID:    rec.ID,
				Problems: problems,
			})
		}
	}
	report.Tables = append(report.Tables, inspectionAudit)

	consumables, err := s.consumableRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("consumables: list rows: %w", err)
	}
	consumableAudit := primary.TableAudit{Table: "consumables", Rows: int64(len(consumables))}
	for _, rec := range consumables {
		problems := rules.ConsumableViolations(rules.ConsumableFields{
			ResourceType: rec.ResourceType,
			QuantityUsed: rec.QuantityUsed,
			TotalCost:    rec.TotalCost,
		})
		if len(problems) > 0 {
			consumableAudit.Violations = append(consumableAudit.Violations, primary.RowViolation{
				RowID:    rec.UsageID,
				Problems: problems,
			})
		}
	}
	report.Tables = append(report.Tables, consumableAudit)

	return report, nil
}

// Ensure AuditServiceImpl implements the interface
var _ primary.AuditService = (*AuditServiceImpl)(nil)
