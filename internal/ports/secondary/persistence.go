// Package secondary defines the driven ports: repository interfaces the
// application core depends on, implemented by the sqlite adapters.
package secondary

import "context"

// TaskRecord is the persistence-level representation of a cleaning task row.
type TaskRecord struct {
	ID           int64
	LocationID   int64
	TaskDate     string
	TaskTime     string
	CleanerID    int64
	TaskType     string
	Status       string
	DurationMins int64
	Notes        string
	HasNotes     bool // false when the notes column is NULL
}

// InspectionRecord is the persistence-level representation of a hygiene
// inspection row.
type InspectionRecord struct {
	ID                int64
	LocationID        int64
	InspectDate       string
	HygieneScore      int64
	AuditorID         int64
	IssuesFound       string
	CorrectiveActions string
	Feedback          string
}

// ConsumableRecord is the persistence-level representation of a consumable
// usage row.
type ConsumableRecord struct {
	UsageID      int64
	UsageDate    string
	LocationID   int64
	ResourceType string
	QuantityUsed int64
	TotalCost    float64
}

// TaskRepository exposes the task normalization statements. Each repair
// method is a single bulk statement that touches only non-compliant rows
// and reports how many rows it changed.
type TaskRepository interface {
	// DefaultMissingStatus sets status to the documented default where it
	// is NULL or empty.
	DefaultMissingStatus(ctx context.Context) (int64, error)
	// DefaultMissingNotes sets notes to the documented default where it is NULL.
	DefaultMissingNotes(ctx context.Context) (int64, error)
	// TrimTextFields strips surrounding whitespace from task_type and notes.
	TrimTextFields(ctx context.Context) (int64, error)
	// ZeroNegativeDurations replaces negative duration_mins with zero.
	ZeroNegativeDurations(ctx context.Context) (int64, error)

	List(ctx context.Context) ([]*TaskRecord, error)
	Sample(ctx context.Context, limit int) ([]*TaskRecord, error)
	Count(ctx context.Context) (int64, error)
}

// InspectionRepository exposes the inspection normalization statements.
type InspectionRepository interface {
	// DefaultMissingFeedback sets feedback to the documented default where
	// it is NULL or empty.
	DefaultMissingFeedback(ctx context.Context) (int64, error)
	// TrimTextFields strips surrounding whitespace from issues_found and
	// corrective_actions.
	TrimTextFields(ctx context.Context) (int64, error)
	// ClampHighScores caps hygiene_score at the upper bound. Independent of
	// ClampLowScores; a score cannot match both predicates.
	ClampHighScores(ctx context.Context) (int64, error)
	// ClampLowScores raises hygiene_score to the lower bound, covering
	// negative values.
	ClampLowScores(ctx context.Context) (int64, error)

	List(ctx context.Context) ([]*InspectionRecord, error)
	Sample(ctx context.Context, limit int) ([]*InspectionRecord, error)
	Count(ctx context.Context) (int64, error)
}

// ConsumableRepository exposes the consumable normalization statements plus
// the primitives duplicate elimination is built from.
type ConsumableRepository interface {
	// CanonicalizeResourceTypes rewrites resource_type to its upper-cased,
	// trimmed form. Must run before duplicate detection.
	CanonicalizeResourceTypes(ctx context.Context) (int64, error)
	// DeleteNonPositive removes rows whose quantity_used or total_cost is
	// not strictly positive. Destructive, no soft delete.
	DeleteNonPositive(ctx context.Context) (int64, error)
	// ListUsageKeys returns the natural-key projection of every row,
	// ordered by usage_id.
	ListUsageKeys(ctx context.Context) ([]*ConsumableRecord, error)
	// DeleteByUsageIDs removes the given rows and reports how many existed.
	DeleteByUsageIDs(ctx context.Context, ids []int64) (int64, error)

	List(ctx context.Context) ([]*ConsumableRecord, error)
	Sample(ctx context.Context, limit int) ([]*ConsumableRecord, error)
	Count(ctx context.Context) (int64, error)
}
