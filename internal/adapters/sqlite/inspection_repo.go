package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/facscrub/internal/core/rules"
	"github.com/example/facscrub/internal/ports/secondary"
)

// InspectionRepository implements secondary.InspectionRepository with SQLite.
type InspectionRepository struct {
	db *sql.DB
}

// NewInspectionRepository creates a new SQLite inspection repository.
func NewInspectionRepository(db *sql.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

const inspectionSelectCols = "inspection_id, location_id, inspect_date, hygiene_score, auditor_id, issues_found, corrective_actions, feedback"

// scanInspection scans an inspection row into an InspectionRecord.
func scanInspection(scanner interface {
	Scan(dest ...any) error
}) (*secondary.InspectionRecord, error) {
	var (
		score      sql.NullInt64
		auditorID  sql.NullInt64
		issues     sql.NullString
		corrective sql.NullString
		feedback   sql.NullString
	)

	record := &secondary.InspectionRecord{}
	err := scanner.Scan(
		&record.ID, &record.LocationID, &record.InspectDate, &score,
		&auditorID, &issues, &corrective, &feedback,
	)
	if err != nil {
		return nil, err
	}

	record.HygieneScore = score.Int64
	record.AuditorID = auditorID.Int64
	record.IssuesFound = issues.String
	record.CorrectiveActions = corrective.String
	record.Feedback = feedback.String

	return record, nil
}

// DefaultMissingFeedback fills NULL or empty feedback with the documented default.
func (r *InspectionRepository) DefaultMissingFeedback(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE inspections SET feedback = ? WHERE feedback IS NULL OR feedback = ''",
		rules.DefaultInspectionFeedback,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to default missing inspection feedback: %w", err)
	}
	return result.RowsAffected()
}

// TrimTextFields strips surrounding whitespace from issues_found and
// corrective_actions.
func (r *InspectionRepository) TrimTextFields(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE inspections SET issues_found = TRIM(issues_found), corrective_actions = TRIM(corrective_actions) WHERE issues_found <> TRIM(issues_found) OR corrective_actions <> TRIM(corrective_actions)",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to trim inspection text fields: %w", err)
	}
	return result.RowsAffected()
}

// ClampHighScores caps hygiene scores above the upper bound. A score
// exactly on the bound is left unchanged.
func (r *InspectionRepository) ClampHighScores(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE inspections SET hygiene_score = ? WHERE hygiene_score > ?",
		rules.MaxHygieneScore, rules.MaxHygieneScore,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to clamp high hygiene scores: %w", err)
	}
	return result.RowsAffected()
}

// ClampLowScores raises hygiene scores below the lower bound, including
// negative values.
func (r *InspectionRepository) ClampLowScores(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE inspections SET hygiene_score = ? WHERE hygiene_score < ?",
		rules.MinHygieneScore, rules.MinHygieneScore,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to clamp low hygiene scores: %w", err)
	}
	return result.RowsAffected()
}

// List retrieves all inspection rows ordered by id.
func (r *InspectionRepository) List(ctx context.Context) ([]*secondary.InspectionRecord, error) {
	return r.query(ctx, "SELECT "+inspectionSelectCols+" FROM inspections ORDER BY inspection_id ASC")
}

// Sample retrieves the first limit inspection rows.
func (r *InspectionRepository) Sample(ctx context.Context, limit int) ([]*secondary.InspectionRecord, error) {
	return r.query(ctx, "SELECT "+inspectionSelectCols+" FROM inspections ORDER BY inspection_id ASC LIMIT ?", limit)
}

// Count returns the number of inspection rows.
func (r *InspectionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM inspections").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count inspections: %w", err)
	}
	return count, nil
}

func (r *InspectionRepository) query(ctx context.Context, query string, args ...any) ([]*secondary.InspectionRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	defer rows.Close()

	var inspections []*secondary.InspectionRecord
	for rows.Next() {
		record, err := scanInspection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inspection: %w", err)
		}
		inspections = append(inspections, record)
	}

	return inspections, rows.Err()
}

// Ensure InspectionRepository implements the interface
var _ secondary.InspectionRepository = (*InspectionRepository)(nil)
