package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Saved runs, one per distance and duration
		`CREATE TABLE IF NOT EXISTS favorites (
			id TEXT PRIMARY KEY,
			pair TEXT NOT NULL,
			payload TEXT NOT NULL,
			distance_km REAL NOT NULL,
			duration_sec INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			UNIQUE(distance_km, duration_sec)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_favorites_created_at ON favorites(created_at)`,

		// Flat key-value settings
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
