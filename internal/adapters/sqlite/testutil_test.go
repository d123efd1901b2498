// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; repository code referencing a missing column fails
// immediately with "no such column".
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/facscrub/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedTask inserts a task row and returns its id. taskType, status and
// notes accept nil to seed NULL columns.
func seedTask(t *testing.T, db *sql.DB, taskType, status any, durationMins int64, notes any) int64 {
	t.Helper()
	result, err := db.Exec(
		"INSERT INTO tasks (location_id, task_date, task_time, cleaner_id, task_type, status, duration_mins, notes) VALUES (101, '2025-02-03', '08:00:00', 4, ?, ?, ?, ?)",
		taskType, status, durationMins, notes,
	)
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get task id: %v", err)
	}
	return id
}

// seedInspection inserts an inspection row and returns its id. Text fields
// accept nil to seed NULL columns.
func seedInspection(t *testing.T, db *sql.DB, score int64, issues, corrective, feedback any) int64 {
	t.Helper()
	result, err := db.Exec(
		"INSERT INTO inspections (location_id, inspect_date, hygiene_score, auditor_id, issues_found, corrective_actions, feedback) VALUES (101, '2025-03-01', ?, 501, ?, ?, ?)",
		score, issues, corrective, feedback,
	)
	if err != nil {
		t.Fatalf("failed to seed inspection: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get inspection id: %v", err)
	}
	return id
}

// seedConsumable inserts a consumable usage row and returns its usage_id.
func seedConsumable(t *testing.T, db *sql.DB, date string, locationID int64, resourceType string, quantity int64, cost float64) int64 {
	t.Helper()
	result, err := db.Exec(
		"INSERT INTO consumables (usage_date, location_id, resource_type, quantity_used, total_cost) VALUES (?, ?, ?, ?, ?)",
		date, locationID, resourceType, quantity, cost,
	)
	if err != nil {
		t.Fatalf("failed to seed consumable: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get usage id: %v", err)
	}
	return id
}
