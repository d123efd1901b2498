// Package primary defines the driving ports: the service interfaces the CLI
// calls and the DTOs they exchange.
package primary

import "context"

// Task is the caller-facing view of a cleaning task row.
type Task struct {
	ID           int64
	LocationID   int64
	TaskDate     string
	TaskTime     string
	CleanerID    int64
	TaskType     string
	Status       string
	DurationMins int64
	Notes        string
}

// Inspection is the caller-facing view of a hygiene inspection row.
type Inspection struct {
	ID                int64
	LocationID        int64
	InspectDate       string
	HygieneScore      int64
	AuditorID         int64
	IssuesFound       string
	CorrectiveActions string
	Feedback          string
}

// ConsumableUsage is the caller-facing view of a consumable usage row.
type ConsumableUsage struct {
	UsageID      int64
	UsageDate    string
	LocationID   int64
	ResourceType string
	QuantityUsed int64
	TotalCost    float64
}

// StepResult records the outcome of one pipeline statement.
type StepResult struct {
	Table        string
	Step         string
	RowsAffected int64
}

// TableCount records a table's row count before and after the pipeline.
type TableCount struct {
	Table  string
	Before int64
	After  int64
}

// RunReport is the structured account of one normalization run.
type RunReport struct {
	Steps  []StepResult
	Tables []TableCount
}

// TotalAffected sums rows affected across all steps.
func (r *RunReport) TotalAffected() int64 {
	var total int64
	for _, s := range r.Steps {
		total += s.RowsAffected
	}
	return total
}

// TableSamples is the bounded verification sample of each table.
type TableSamples struct {
	Limit       int
	Tasks       []*Task
	Inspections []*Inspection
	Consumables []*ConsumableUsage
}

// NormalizerService runs the normalization pipeline and produces
// verification samples.
type NormalizerService interface {
	// Run executes the full pipeline in its fixed order. It stops at the
	// first failing statement; the error names the table and step.
	Run(ctx context.Context) (*RunReport, error)
	// Sample returns the first limit rows of each table.
	Sample(ctx context.Context, limit int) (*TableSamples, error)
}

// RowViolation lists the invariants one row still breaks.
type RowViolation struct {
	RowID    int64
	Problems []string
}

// TableAudit is the audit outcome for one table.
type TableAudit struct {
	Table      string
	Rows       int64
	Violations []RowViolation
}

// AuditReport is the read-only invariant check across all three tables.
type AuditReport struct {
	Tables []TableAudit
}

// Clean reports whether no table has a violating row.
func (r *AuditReport) Clean() bool {
	for _, t := range r.Tables {
		if len(t.Violations) > 0 {
			return false
		}
	}
	return true
}

// AuditService checks post-normalization invariants without mutating data.
type AuditService interface {
	Audit(ctx context.Context) (*AuditReport, error)
}

// ExportService writes the current table contents to an external workbook.
type ExportService interface {
	// ExportWorkbook writes all three tables to an xlsx workbook at path.
	ExportWorkbook(ctx context.Context, path string) error
}
