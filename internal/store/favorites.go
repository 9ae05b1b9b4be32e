package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const favoriteColumns = `id, pair, payload, distance_km, duration_sec, created_at`

// AddFavorite inserts f. An empty ID is filled with a new UUID and a zero
// CreatedAt with the current time. Returns ErrFavoriteExists when a favorite
// with the same distance and duration is already stored.
func (s *Store) AddFavorite(f *Favorite) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(`
		INSERT INTO favorites (`+favoriteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(distance_km, duration_sec) DO NOTHING
	`, f.ID, f.Pair, f.Payload, f.DistanceKm, f.DurationSec, f.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFavoriteExists
	}
	return nil
}

// GetFavorite retrieves a favorite by ID
func (s *Store) GetFavorite(id string) (*Favorite, error) {
	row := s.db.QueryRow(`
		SELECT `+favoriteColumns+` FROM favorites WHERE id = ?
	`, id)
	return scanFavorite(row)
}

// FindFavoriteByKey retrieves the favorite stored for a distance and duration
func (s *Store) FindFavoriteByKey(distanceKm float64, durationSec int) (*Favorite, error) {
	row := s.db.QueryRow(`
		SELECT `+favoriteColumns+` FROM favorites
		WHERE distance_km = ? AND duration_sec = ?
	`, distanceKm, durationSec)
	return scanFavorite(row)
}

// ListFavorites returns all favorites, newest first
func (s *Store) ListFavorites() ([]Favorite, error) {
	rows, err := s.db.Query(`
		SELECT ` + favoriteColumns + ` FROM favorites
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, *f)
	}
	return favorites, rows.Err()
}

// DeleteFavorite removes a favorite by ID
func (s *Store) DeleteFavorite(id string) error {
	result, err := s.db.Exec(`DELETE FROM favorites WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFavorite(row rowScanner) (*Favorite, error) {
	var f Favorite
	var createdAt string
	err := row.Scan(&f.ID, &f.Pair, &f.Payload, &f.DistanceKm, &f.DurationSec, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFavoriteNotFound
	}
	if err != nil {
		return nil, err
	}

	f.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &f, nil
}
