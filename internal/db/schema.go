package db

// SchemaSQL is the complete schema for fresh facscrub installs.
// This schema reflects the current state after all migrations.
//
// This is the single source of truth for the database schema. All tests use
// it via GetSchemaSQL(); repository code referencing a column that does not
// exist here fails immediately with "no such column" at test time.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Cleaning tasks (scheduled and completed work)
CREATE TABLE IF NOT EXISTS tasks (
	task_id INTEGER PRIMARY KEY,
	location_id INTEGER NOT NULL,
	task_date TEXT NOT NULL,
	task_time TEXT,
	cleaner_id INTEGER,
	task_type TEXT,
	status TEXT,
	duration_mins INTEGER,
	notes TEXT
);

-- Hygiene inspections (audit visits with scores)
CREATE TABLE IF NOT EXISTS inspections (
	inspection_id INTEGER PRIMARY KEY,
	location_id INTEGER NOT NULL,
	inspect_date TEXT NOT NULL,
	hygiene_score INTEGER,
	auditor_id INTEGER,
	issues_found TEXT,
	corrective_actions TEXT,
	feedback TEXT
);

-- Consumable resource usage (one row per recorded draw)
CREATE TABLE IF NOT EXISTS consumables (
	usage_id INTEGER PRIMARY KEY AUTOINCREMENT,
	usage_date TEXT NOT NULL,
	location_id INTEGER NOT NULL,
	resource_type TEXT NOT NULL,
	quantity_used INTEGER NOT NULL,
	total_cost REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_consumables_natural_key
	ON consumables(usage_date, location_id, resource_type);
`

// InitSchema creates the schema on a fresh database and brings an existing
// database up to date via migrations.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create the modern schema directly and mark all
		// migrations as applied so the runner never replays them.
		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema (used by tests)
func GetSchemaSQL() string {
	return SchemaSQL
}
