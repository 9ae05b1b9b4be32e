package service

import (
	"errors"
	"log/slog"
	"time"

	"runpace/internal/failure"
	"runpace/internal/run"
	"runpace/internal/store"
)

// SavedRun is a decoded favorite
type SavedRun struct {
	ID        string
	Run       run.Run
	Pair      run.InputPair
	CreatedAt time.Time
}

// Favorites manages the saved runs. Two runs are the same favorite when they
// cover the same distance in the same duration.
type Favorites struct {
	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewFavorites creates a favorites service
func NewFavorites(st *store.Store, logger *slog.Logger) *Favorites {
	return &Favorites{store: st, logger: orDiscard(logger), now: time.Now}
}

// Save stores r with the pair it was authored with. Saving a run that is
// already a favorite returns the existing entry.
func (f *Favorites) Save(r run.Run, pair run.InputPair) (*SavedRun, error) {
	if r.IsZero() {
		return nil, failure.InvalidArgument("Nothing to save", "cannot save an empty run")
	}

	fav := &store.Favorite{
		Pair:        pair.String(),
		Payload:     run.ToPairStorageForm(r, pair),
		DistanceKm:  r.DistanceKm(),
		DurationSec: r.DurationSec(),
		CreatedAt:   f.now(),
	}
	err := f.store.AddFavorite(fav)
	if errors.Is(err, store.ErrFavoriteExists) {
		existing, err := f.store.FindFavoriteByKey(r.DistanceKm(), r.DurationSec())
		if err != nil {
			return nil, err
		}
		return f.decode(*existing)
	}
	if err != nil {
		return nil, err
	}

	f.logger.Info("favorite saved", "id", fav.ID, "run", r.String(), "pair", fav.Pair)
	return &SavedRun{ID: fav.ID, Run: r, Pair: pair, CreatedAt: fav.CreatedAt}, nil
}

// Remove deletes a favorite by ID
func (f *Favorites) Remove(id string) error {
	if err := f.store.DeleteFavorite(id); err != nil {
		return err
	}
	f.logger.Info("favorite removed", "id", id)
	return nil
}

// List returns the saved runs, newest first. Entries that no longer decode
// are logged and skipped.
func (f *Favorites) List() ([]SavedRun, error) {
	favorites, err := f.store.ListFavorites()
	if err != nil {
		return nil, err
	}

	saved := make([]SavedRun, 0, len(favorites))
	for _, fav := range favorites {
		s, err := f.decode(fav)
		if err != nil {
			f.logger.Warn("skipping unreadable favorite", "id", fav.ID, "payload", fav.Payload, "error", err)
			continue
		}
		saved = append(saved, *s)
	}
	return saved, nil
}

// Contains reports whether r is a favorite
func (f *Favorites) Contains(r run.Run) (bool, error) {
	_, err := f.store.FindFavoriteByKey(r.DistanceKm(), r.DurationSec())
	if errors.Is(err, store.ErrFavoriteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Toggle saves r when it is not a favorite and removes it otherwise.
// It reports whether r is a favorite afterwards.
func (f *Favorites) Toggle(r run.Run, pair run.InputPair) (bool, error) {
	existing, err := f.store.FindFavoriteByKey(r.DistanceKm(), r.DurationSec())
	if errors.Is(err, store.ErrFavoriteNotFound) {
		if _, err := f.Save(r, pair); err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if err := f.Remove(existing.ID); err != nil {
		return true, err
	}
	return false, nil
}

func (f *Favorites) decode(fav store.Favorite) (*SavedRun, error) {
	r, pair, err := run.DecodeStorageForm(fav.Payload)
	if err != nil {
		return nil, err
	}
	// The stored pair wins over the one guessed from the payload keys
	if stored, err := run.ParsePair(fav.Pair); err == nil {
		pair = stored
	}
	return &SavedRun{ID: fav.ID, Run: r, Pair: pair, CreatedAt: fav.CreatedAt}, nil
}
