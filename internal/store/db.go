package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrFavoriteNotFound is returned when a favorite doesn't exist
var ErrFavoriteNotFound = errors.New("favorite not found")

// ErrFavoriteExists is returned when a favorite with the same distance and
// duration is already stored
var ErrFavoriteExists = errors.New("favorite already exists")

// DBName is the database file name inside the config directory
const DBName = "data.db"

// Store is the application's data access layer
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database in dir, creating it if necessary.
func Open(dir string) (*Store, error) {
	// Ensure directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return OpenPath(filepath.Join(dir, DBName))
}

// OpenPath opens the SQLite database at path and runs migrations.
// ":memory:" opens a private in-memory database.
func OpenPath(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every pooled connection would get its own empty in-memory database
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return newStore(db), nil
}

func newStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
