// Package app implements the primary ports: the normalization pipeline,
// the invariant audit, and the workbook export.
package app

import (
	"context"
	"fmt"

	"github.com/example/facscrub/internal/core/dedup"
	"github.com/example/facscrub/internal/ports/primary"
	"github.com/example/facscrub/internal/ports/secondary"
)

// NormalizerServiceImpl implements the NormalizerService interface.
type NormalizerServiceImpl struct {
	taskRepo       secondary.TaskRepository
	inspectionRepo secondary.InspectionRepository
	consumableRepo secondary.ConsumableRepository
}

// NewNormalizerService creates a new NormalizerService with injected dependencies.
func NewNormalizerService(
	taskRepo secondary.TaskRepository,
	inspectionRepo secondary.InspectionRepository,
	consumableRepo secondary.ConsumableRepository,
) *NormalizerServiceImpl {
	return &NormalizerServiceImpl{
		taskRepo:       taskRepo,
		inspectionRepo: inspectionRepo,
		consumableRepo: consumableRepo,
	}
}

// pipelineStep is one statement of the fixed pipeline order.
type pipelineStep struct {
	table string
	name  string
	run   func(context.Context) (int64, error)
}

// steps returns the pipeline in its mandatory order: task repairs,
// inspection repairs, consumable canonicalization, bad-row removal, then
// duplicate elimination. Canonicalization must precede dedup because
// duplicate detection keys on resource_type; bad-row removal must precede
// dedup so condemned rows are picked from the surviving population.
func (s *NormalizerServiceImpl) steps() []pipelineStep {
	return []pipelineStep{
		{"tasks", "default missing status", s.taskRepo.DefaultMissingStatus},
		{"tasks", "default missing notes", s.taskRepo.DefaultMissingNotes},
		{"tasks", "trim text fields", s.taskRepo.TrimTextFields},
		{"tasks", "zero negative durations", s.taskRepo.ZeroNegativeDurations},
		{"inspections", "default missing feedback", s.inspectionRepo.DefaultMissingFeedback},
		{"inspections", "trim text fields", s.inspectionRepo.TrimTextFields},
		{"inspections", "clamp high hygiene scores", s.inspectionRepo.ClampHighScores},
		{"inspections", "clamp low hygiene scores", s.inspectionRepo.ClampLowScores},
		{"consumables", "canonicalize resource types", s.consumableRepo.CanonicalizeResourceTypes},
		{"consumables", "delete non-positive usage rows", s.consumableRepo.DeleteNonPositive},
		{"consumables", "collapse duplicate usage rows", s.collapseDuplicates},
	}
}

// Run executes the pipeline as a sequence of independent, immediately
// committed statements. The first failure aborts the remainder; earlier
// steps stay applied.
func (s *NormalizerServiceImpl) Run(ctx context.Context) (*primary.RunReport, error) {
	before, err := s.counts(ctx)
	if err != nil {
		return nil, err
	}

	report := &primary.RunReport{}
	for _, step := range s.steps() {
		affected, err := step.run(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", step.table, step.name, err)
		}
		report.Steps = append(report.Steps, primary.StepResult{
			Table:        step.table,
			Step:         step.name,
			RowsAffected: affected,
		})
	}

	after, err := s.counts(ctx)
	if err != nil {
		return nil, err
	}
	for i, table := range []string{"tasks", "inspections", "consumables"} {
		report.Tables = append(report.Tables, primary.TableCount{
			Table:  table,
			Before: before[i],
			After:  after[i],
		})
	}

	return report, nil
}

// collapseDuplicates removes all but the highest-usage_id row per natural
// key. Grouping happens in core/dedup; only the condemned ids go back to
// the store as an explicit delete.
func (s *NormalizerServiceImpl) collapseDuplicates(ctx context.Context) (int64, error) {
	records, err := s.consumableRepo.ListUsageKeys(ctx)
	if err != nil {
		return 0, err
	}

	entries := make([]dedup.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, dedup.Entry{
			UsageID: rec.UsageID,
			Key: dedup.Key{
				UsageDate:    rec.UsageDate,
				LocationID:   rec.LocationID,
				ResourceType: rec.ResourceType,
			},
		})
	}

	condemned := dedup.Condemned(entries)
	if len(condemned) == 0 {
		return 0, nil
	}

	return s.consumableRepo.DeleteByUsageIDs(ctx, condemned)
}

func (s *NormalizerServiceImpl) counts(ctx context.Context) ([3]int64, error) {
	var counts [3]int64

	tasks, err := s.taskRepo.Count(ctx)
	if err != nil {
		return counts, fmt.Errorf("tasks: count rows: %w", err)
	}
	inspections, err := s.inspectionRepo.Count(ctx)
	if err != nil {
		return counts, fmt.Errorf("inspections: count rows: %w", err)
	}
	consumables, err := s.consumableRepo.Count(ctx)
	if err != nil {
		return counts, fmt.Errorf("consumables: count rows: %w", err)
	}

	counts = [3]int64{tasks, inspections, consumables}
	return counts, nil
}

// Sample returns the first limit rows of each table for manual inspection.
// Read-only diagnostic, not part of the correctness contract.
func (s *NormalizerServiceImpl) Sample(ctx context.Context, limit int) (*primary.TableSamples, error) {
	tasks, err := s.taskRepo.Sample(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("tasks: sample rows: %w", err)
	}
	inspections, err := s.inspectionRepo.Sample(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("inspections: sample rows: %w", err)
	}
	consumables, err := s.consumableRepo.Sample(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("consumables: sample rows: %w", err)
	}

	samples := &primary.TableSamples{Limit: limit}
	for _, rec := range tasks {
		samples.Tasks = append(samples.Tasks, taskToDTO(rec))
	}
	for _, rec := range inspections {
		samples.Inspections = append(samples.Inspections, inspectionToDTO(rec))
	}
	for _, rec := range consumables {
		samples.Consumables = append(samples.Consumables, consumableToDTO(rec))
	}

	return samples, nil
}

func taskToDTO(rec *secondary.TaskRecord) *primary.Task {
	return &primary.Task{
		ID:           rec.ID,
		LocationID:   rec.LocationID,
		TaskDate:     rec.TaskDate,
		TaskTime:     rec.TaskTime,
		CleanerID:    rec.CleanerID,
		TaskType:     rec.TaskType,
		Status:       rec.Status,
		DurationMins: rec.DurationMins,
		Notes:        rec.Notes,
	}
}

func inspectionToDTO(rec *secondary.InspectionRecord) *primary.Inspection {
	return &primary.Inspection{
		ID:                rec.ID,
		LocationID:        rec.LocationID,
		InspectDate:       rec.InspectDate,
		HygieneScore:      rec.HygieneScore,
		AuditorID:         rec.AuditorID,
		IssuesFound:       rec.IssuesFound,
		CorrectiveActions: rec.CorrectiveActions,
		Feedback:          rec.Feedback,
	}
}

func consumableToDTO(rec *secondary.ConsumableRecord) *primary.ConsumableUsage {
	return &primary.ConsumableUsage{
		UsageID:      rec.UsageID,
		UsageDate:    rec.UsageDate,
		LocationID:   rec.LocationID,
		ResourceType: rec.ResourceType,
		QuantityUsed: rec.QuantityUsed,
		TotalCost:    rec.TotalCost,
	}
}

// Ensure NormalizerServiceImpl implements the interface
var _ primary.NormalizerService = (*NormalizerServiceImpl)(nil)
