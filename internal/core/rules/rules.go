// Package rules contains the pure normalization logic for facility records.
// Repair functions are total: they accept any input value and return the
// canonical form without side effects. Violation checks are the read-only
// counterparts used by the doctor audit.
package rules

import (
	"fmt"
	"strings"
)

// Documented defaults and bounds applied by the normalization pass.
const (
	DefaultTaskStatus         = "Planned"
	DefaultTaskNotes          = "N/A"
	DefaultInspectionFeedback = "No comments"
	MinHygieneScore           = 1
	MaxHygieneScore           = 10
)

// FillBlank returns fallback when s is empty, otherwise s unchanged.
func FillBlank(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Trim strips leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ClampScore forces a hygiene score into [MinHygieneScore, MaxHygieneScore].
// Scores already in range (including the bounds themselves) are unchanged.
func ClampScore(n int64) int64 {
	if n > MaxHygieneScore {
		return MaxHygieneScore
	}
	if n < MinHygieneScore {
		return MinHygieneScore
	}
	return n
}

// ClampDuration replaces negative durations with zero.
func ClampDuration(mins int64) int64 {
	if mins < 0 {
		return 0
	}
	return mins
}

// CanonicalResourceType rewrites a resource type to its canonical form:
// upper-cased and whitespace-trimmed, so "Soap", " soap " and "SOAP"
// all converge to "SOAP". Duplicate detection keys on this form.
func CanonicalResourceType(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// TaskFields carries the cleanable fields of a task row.
type TaskFields struct {
	Status       string
	TaskType     string
	Notes        string
	HasNotes     bool // false when the notes column is NULL
	DurationMins int64
}

// InspectionFields carries the cleanable fields of an inspection row.
type InspectionFields struct {
	Feedback          string
	IssuesFound       string
	CorrectiveActions string
	HygieneScore      int64
}

// ConsumableFields carries the cleanable fields of a consumable usage row.
type ConsumableFields struct {
	ResourceType string
	QuantityUsed int64
	TotalCost    float64
}

// TaskViolations reports every invariant a task row breaks after a
// normalization pass. A clean row yields nil.
func TaskViolations(f TaskFields) []string {
	var problems []string
	if f.Status == "" {
		problems = append(problems, "status is missing")
	}
	if !f.HasNotes {
		problems = append(problems, "notes is null")
	}
	if f.TaskType != Trim(f.TaskType) {
		problems = append(problems, "task_type has surrounding whitespace")
	}
	if f.HasNotes && f.Notes != Trim(f.Notes) {
		problems = append(problems, "notes has surrounding whitespace")
	}
	if f.DurationMins < 0 {
		problems = append(problems, "duration_mins is negative")
	}
	return problems
}

// InspectionViolations reports every invariant an inspection row breaks
// after a normalization pass. A clean row yields nil.
func InspectionViolations(f InspectionFields) []string {
	var problems []string
	if f.Feedback == "" {
		problems = append(problems, "feedback is missing")
	}
	if f.IssuesFound != Trim(f.IssuesFound) {
		problems = append(problems, "issues_found has surrounding whitespace")
	}
	if f.CorrectiveActions != Trim(f.CorrectiveActions) {
		problems = append(problems, "corrective_actions has surrounding whitespace")
	}
	if f.HygieneScore < MinHygieneScore || f.HygieneScore > MaxHygieneScore {
		problems = append(problems, fmt.Sprintf("hygiene_score %d outside [%d, %d]", f.HygieneScore, MinHygieneScore, MaxHygieneScore))
	}
	return problems
}

// ConsumableViolations reports every invariant a consumable usage row
// breaks after a normalization pass. A clean row yields nil.
func ConsumableViolations(f ConsumableFields) []string {
	var problems []string
	if f.ResourceType != CanonicalResourceType(f.ResourceType) {
		problems = append(problems, "resource_type is not canonical")
	}
	if f.QuantityUsed <= 0 {
		problems = append(problems, "quantity_used is not positive")
	}
	if f.TotalCost <= 0 {
		problems = append(problems, "total_cost is not positive")
	}
	return problems
}
