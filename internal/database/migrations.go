package database

import (
	"database/sql"
	"fmt"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the embedded schema history, applied in version order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_analysis_runs",
		SQL: `
			CREATE TABLE IF NOT EXISTS analysis_runs (
				id TEXT PRIMARY KEY,
				points INTEGER NOT NULL,
				days INTEGER NOT NULL,
				total_points INTEGER NOT NULL,
				max_uhi_intensity REAL NOT NULL,
				statistics TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_analysis_points",
		SQL: `
			CREATE TABLE IF NOT EXISTS analysis_points (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id TEXT NOT NULL REFERENCES analysis_runs(id) ON DELETE CASCADE,
				lat REAL NOT NULL,
				lon REAL NOT NULL,
				lst REAL NOT NULL,
				ndvi REAL NOT NULL,
				uhi_intensity REAL NOT NULL,
				timestamp INTEGER NOT NULL,
				zone INTEGER NOT NULL,
				vegetation TEXT NOT NULL,
				color TEXT NOT NULL,
				severity TEXT NOT NULL,
				priority TEXT NOT NULL,
				recommendation TEXT NOT NULL
			)
		`,
	},
	{
		Version: 3,
		Name:    "index_analysis_points_run",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_analysis_points_run ON analysis_points(run_id)`,
	},
}

// runMigrations applies any pending migrations inside transactions
func runMigrations(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(migrations))
	for _, m := range migrations {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Version < pending[j].Version })

	for _, m := range pending {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// initMigrationsTable creates the migrations tracking table
func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of applied migration versions
func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
