package app

import (
	"context"
	"errors"

	"github.com/example/facscrub/internal/ports/secondary"
)

// errStatement is returned by mocks configured to fail a given step.
var errStatement = errors.New("statement failed")

// callLog records repository calls across mocks so tests can assert the
// pipeline order.
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) {
	l.calls = append(l.calls, name)
}

// mockTaskRepo implements secondary.TaskRepository for testing.
type mockTaskRepo struct {
	log      *callLog
	failOn   string
	affected map[string]int64
	records  []*secondary.TaskRecord
}

func (m *mockTaskRepo) step(name string) (int64, error) {
	m.log.add(name)
	if m.failOn == name {
		return 0, errStatement
	}
	return m.affected[name], nil
}

func (m *mockTaskRepo) DefaultMissingStatus(ctx context.Context) (int64, error) {
	return m.step("tasks.DefaultMissingStatus")
}

func (m *mockTaskRepo) DefaultMissingNotes(ctx context.Context) (int64, error) {
	return m.step("tasks.DefaultMissingNotes")
}

func (m *mockTaskRepo) TrimTextFields(ctx context.Context) (int64, error) {
	return m.step("tasks.TrimTextFields")
}

func (m *mockTaskRepo) ZeroNegativeDurations(ctx context.Context) (int64, error) {
	return m.step("tasks.ZeroNegativeDurations")
}

func (m *mockTaskRepo) List(ctx context.Context) ([]*secondary.TaskRecord, error) {
	return m.records, nil
}

func (m *mockTaskRepo) Sample(ctx context.Context, limit int) ([]*secondary.TaskRecord, error) {
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

func (m *mockTaskRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

// mockInspectionRepo implements secondary.InspectionRepository for testing.
type mockInspectionRepo struct {
	log      *callLog
	failOn   string
	affected map[string]int64
	records  []*secondary.InspectionRecord
}

func (m *mockInspectionRepo) step(name string) (int64, error) {
	m.log.add(name)
	if m.failOn == name {
		return 0, errStatement
	}
	return m.affected[name], nil
}

func (m *mockInspectionRepo) DefaultMissingFeedback(ctx context.Context) (int64, error) {
	return m.step("inspections.DefaultMissingFeedback")
}

func (m *mockInspectionRepo) TrimTextFields(ctx context.Context) (int64, error) {
	return m.step("inspections.TrimTextFields")
}

func (m *mockInspectionRepo) ClampHighScores(ctx context.Context) (int64, error) {
	return m.step("inspections.ClampHighScores")
}

func (m *mockInspectionRepo) ClampLowScores(ctx context.Context) (int64, error) {
	return m.step("inspections.ClampLowScores")
}

func (m *mockInspectionRepo) List(ctx context.Context) ([]*secondary.InspectionRecord, error) {
	return m.records, nil
}

func (m *mockInspectionRepo) Sample(ctx context.Context, limit int) ([]*secondary.InspectionRecord, error) {
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

func (m *mockInspectionRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

// mockConsumableRepo implements secondary.ConsumableRepository for testing.
type mockConsumableRepo struct {
	log        *callLog
	failOn     string
	affected   map[string]int64
	records    []*secondary.ConsumableRecord
	deletedIDs []int64
}

func (m *mockConsumableRepo) step(name string) (int64, error) {
	m.log.add(name)
	if m.failOn == name {
		return 0, errStatement
	}
	return m.affected[name], nil
}

func (m *mockConsumableRepo) CanonicalizeResourceTypes(ctx context.Context) (int64, error) {
	return m.step("consumables.CanonicalizeResourceTypes")
}

func (m *mockConsumableRepo) DeleteNonPositive(ctx context.Context) (int64, error) {
	return m.step("consumables.DeleteNonPositive")
}

func (m *mockConsumableRepo) ListUsageKeys(ctx context.Context) ([]*secondary.ConsumableRecord, error) {
	m.log.add("consumables.ListUsageKeys")
	if m.failOn == "consumables.ListUsageKeys" {
		return nil, errStatement
	}
	return m.records, nil
}

func (m *mockConsumableRepo) DeleteByUsageIDs(ctx context.Context, ids []int64) (int64, error) {
	m.log.add("consumables.DeleteByUsageIDs")
	m.deletedIDs = append(m.deletedIDs, ids...)
	return int64(len(ids)), nil
}

func (m *mockConsumableRepo) List(ctx context.Context) ([]*secondary.ConsumableRecord, error) {
	return m.records, nil
}

func (m *mockConsumableRepo) Sample(ctx context.Context, limit int) ([]*secondary.ConsumableRecord, error) {
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

func (m *mockConsumableRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

// newMockServices builds a normalizer service over fresh mocks sharing one
// call log.
func newMockServices() (*NormalizerServiceImpl, *mockTaskRepo, *mockInspectionRepo, *mockConsumableRepo) {
	log := &callLog{}
	taskRepo := &mockTaskRepo{log: log, affected: map[string]int64{}}
	inspectionRepo := &mockInspectionRepo{log: log, affected: map[string]int64{}}
	consumableRepo := &mockConsumableRepo{log: log, affected: map[string]int64{}}
	return NewNormalizerService(taskRepo, inspectionRepo, consumableRepo), taskRepo, inspectionRepo, consumableRepo
}

// Ensure mocks implement the interfaces
var (
	_ secondary.TaskRepository       = (*mockTaskRepo)(nil)
	_ secondary.InspectionRepository = (*mockInspectionRepo)(nil)
	_ secondary.ConsumableRepository = (*mockConsumableRepo)(nil)
)
