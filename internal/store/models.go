package store

import "time"

// Favorite is a saved run. Payload holds the run in its storage form and
// Pair names the input pair it was authored with.
type Favorite struct {
	ID          string    `db:"id"`
	Pair        string    `db:"pair"`
	Payload     string    `db:"payload"`
	DistanceKm  float64   `db:"distance_km"`
	DurationSec int       `db:"duration_sec"`
	CreatedAt   time.Time `db:"created_at"`
}

// Setting keys
const (
	SettingLastInput = "last_input"
)
