package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with a deliberately messy demo
// dataset: missing statuses and notes, padded text, out-of-range hygiene
// scores, non-positive quantities and costs, and duplicate usage rows.
// Every dirt class the normalizer repairs is represented at least once.
func SeedFixtures(database *sql.DB) error {
	// Tasks. nil notes dominate, matching real entry habits.
	tasks := []struct {
		locationID   int64
		date, tm     string
		cleanerID    int64
		taskType     any
		status       any
		durationMins int64
		notes        any
	}{
		{101, "2025-02-03", "08:15:00", 4, "Vacuuming", "Completed", 45, nil},
		{108, "2025-02-03", "09:30:00", 7, "Mop Floor", "Completed", 30, "Slippery when wet sign left out"},
		{115, "2025-02-04", "07:00:00", 2, "  Trash Collection  ", "", 20, nil},
		{101, "2025-02-04", "14:45:00", 4, "Sanitization", nil, 60, "  Door handles and rails  "},
		{122, "2025-02-05", "10:10:00", 11, "Deep Clean", "Planned", 120, nil},
		{130, "2025-02-05", "16:00:00", 9, "Vacuuming  ", "Completed", -30, nil},
		{108, "2025-02-06", "08:00:00", 7, "Mop Floor", "Missed", 0, "   "},
		{141, "2025-02-06", "11:20:00", 15, "Sanitization", "Completed", 40, nil},
		{115, "2025-02-07", "13:05:00", 2, "Trash Collection", "", -5, nil},
		{136, "2025-02-07", "15:30:00", 18, "  Deep Clean", "Planned", 90, "Check storage room access  "},
		{122, "2025-02-08", "09:00:00", 11, "Vacuuming", "Completed", 35, nil},
		{147, "2025-02-08", "17:40:00", 20, "Mop Floor", nil, 25, nil},
	}
	for _, t := range tasks {
		if _, err := database.Exec(
			"INSERT INTO tasks (location_id, task_date, task_time, cleaner_id, task_type, status, duration_mins, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			t.locationID, t.date, t.tm, t.cleanerID, t.taskType, t.status, t.durationMins, t.notes,
		); err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
	}

	// Inspections. Scores 15 and -3 exercise both clamp bounds; 1 and 10
	// sit exactly on them and must survive unchanged.
	inspections := []struct {
		locationID int64
		date       string
		score      int64
		auditorID  int64
		issues     any
		corrective any
		feedback   any
	}{
		{101, "2025-03-01", 9, 501, "None", "None", "Spotless as usual"},
		{115, "2025-03-01", 15, 503, "  Dust on vents  ", "Re-clean scheduled", nil},
		{108, "2025-03-02", -3, 502, "Overflowing bins, stained carpet", "  Retraining required", ""},
		{122, "2025-03-02", 7, 501, "None", "None  ", "Acceptable, minor streaks on glass"},
		{130, "2025-03-03", 0, 505, "Washroom supplies empty", "Restock rota revised", nil},
		{136, "2025-03-03", 1, 504, "Severe grime in pantry", "Deep clean ordered", "Worst score on record"},
		{141, "2025-03-04", 10, 502, "None", "None", "Exemplary"},
		{147, "2025-03-04", 12, 503, "None", "None", "  Scoring dispute raised by supervisor  "},
	}
	for _, i := range inspections {
		if _, err := database.Exec(
			"INSERT INTO inspections (location_id, inspect_date, hygiene_score, auditor_id, issues_found, corrective_actions, feedback) VALUES (?, ?, ?, ?, ?, ?, ?)",
			i.locationID, i.date, i.score, i.auditorID, i.issues, i.corrective, i.feedback,
		); err != nil {
			return fmt.Errorf("seed inspections: %w", err)
		}
	}

	// Consumables. The three Liquid Soap rows at location 104 share a
	// natural key once canonicalized and must collapse to the last one.
	consumables := []struct {
		date         string
		locationID   int64
		resourceType string
		quantity     int64
		cost         float64
	}{
		{"2025-03-10", 104, "Liquid Soap", 4, 20.00},
		{"2025-03-10", 104, " liquid soap ", 6, 30.00},
		{"2025-03-10", 104, "LIQUID SOAP", 5, 25.00},
		{"2025-03-10", 118, "Paper Towels", 10, 25.00},
		{"2025-03-11", 118, "paper towels  ", 8, 20.00},
		{"2025-03-11", 118, "Paper Towels", 12, 30.00},
		{"2025-03-11", 127, "Sanitizer", 0, 16.00},
		{"2025-03-12", 127, "Sanitizer", 2, -16.00},
		{"2025-03-12", 127, "Sanitizer", 3, 24.00},
		{"2025-03-12", 133, "Trash Bags", 20, 10.00},
		{"2025-03-13", 133, "  TRASH BAGS", -4, 2.00},
		{"2025-03-13", 140, "Floor Cleaner", 1, 12.00},
		{"2025-03-14", 140, "Floor Cleaner", 0, 0.00},
		{"2025-03-14", 149, "floor cleaner", 2, 24.00},
	}
	for _, c := range consumables {
		if _, err := database.Exec(
			"INSERT INTO consumables (usage_date, location_id, resource_type, quantity_used, total_cost) VALUES (?, ?, ?, ?, ?)",
			c.date, c.locationID, c.resourceType, c.quantity, c.cost,
		); err != nil {
			return fmt.Errorf("seed consumables: %w", err)
		}
	}

	return nil
}
