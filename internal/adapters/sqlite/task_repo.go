// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/facscrub/internal/core/rules"
	"github.com/example/facscrub/internal/ports/secondary"
)

// TaskRepository implements secondary.TaskRepository with SQLite.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new SQLite task repository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskSelectCols = "task_id, location_id, task_date, task_time, cleaner_id, task_type, status, duration_mins, notes"

// scanTask scans a task row into a TaskRecord.
func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*secondary.TaskRecord, error) {
	var (
		taskTime  sql.NullString
		cleanerID sql.NullInt64
		taskType  sql.NullString
		status    sql.NullString
		duration  sql.NullInt64
		notes     sql.NullString
	)

	record := &secondary.TaskRecord{}
	err := scanner.Scan(
		&record.ID, &record.LocationID, &record.TaskDate, &taskTime,
		&cleanerID, &taskType, &status, &duration, &notes,
	)
	if err != nil {
		return nil, err
	}

	record.TaskTime = taskTime.String
	record.CleanerID = cleanerID.Int64
	record.TaskType = taskType.String
	record.Status = status.String
	record.DurationMins = duration.Int64
	record.Notes = notes.String
	record.HasNotes = notes.Valid

	return record, nil
}

// DefaultMissingStatus fills NULL or empty statuses with the documented default.
func (r *TaskRepository) DefaultMissingStatus(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ? WHERE status IS NULL OR status = ''",
		rules.DefaultTaskStatus,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to default missing task statuses: %w", err)
	}
	return result.RowsAffected()
}

// DefaultMissingNotes fills NULL notes with the documented default.
// Empty-but-present notes are left alone.
func (r *TaskRepository) DefaultMissingNotes(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET notes = ? WHERE notes IS NULL",
		rules.DefaultTaskNotes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to default missing task notes: %w", err)
	}
	return result.RowsAffected()
}

// TrimTextFields strips surrounding whitespace from task_type and notes.
// The predicate keeps the statement idempotent: already-trimmed rows are
// not touched and do not count as affected.
func (r *TaskRepository) TrimTextFields(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET task_type = TRIM(task_type), notes = TRIM(notes) WHERE task_type <> TRIM(task_type) OR notes <> TRIM(notes)",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to trim task text fields: %w", err)
	}
	return result.RowsAffected()
}

// ZeroNegativeDurations coerces negative durations to zero.
func (r *TaskRepository) ZeroNegativeDurations(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET duration_mins = 0 WHERE duration_mins < 0",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to zero negative task durations: %w", err)
	}
	return result.RowsAffected()
}

// List retrieves all task rows ordered by id.
func (r *TaskRepository) List(ctx context.Context) ([]*secondary.TaskRecord, error) {
	return r.query(ctx, "SELECT "+taskSelectCols+" FROM tasks ORDER BY task_id ASC")
}

// Sample retrieves the first limit task rows.
func (r *TaskRepository) Sample(ctx context.Context, limit int) ([]*secondary.TaskRecord, error) {
	return r.query(ctx, "SELECT "+taskSelectCols+" FROM tasks ORDER BY task_id ASC LIMIT ?", limit)
}

// Count returns the number of task rows.
func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

func (r *TaskRepository) query(ctx context.Context, query string, args ...any) ([]*secondary.TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*secondary.TaskRecord
	for rows.Next() {
		record, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, record)
	}

	return tasks, rows.Err()
}

// Ensure TaskRepository implements the interface
var _ secondary.TaskRepository = (*TaskRepository)(nil)
