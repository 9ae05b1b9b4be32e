package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runpace/internal/run"
	"runpace/internal/store"
)

func newTestFavorites(t *testing.T) *Favorites {
	t.Helper()

	f := NewFavorites(newTestStore(t), nil)
	clock := time.Date(2024, time.April, 1, 8, 0, 0, 0, time.UTC)
	f.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return f
}

// mustRun unwraps a run builder result, e.g. mustRun(t)(run.NewWithDistanceAndPace(10, 300))
func mustRun(t *testing.T) func(run.Run, error) run.Run {
	t.Helper()
	return func(r run.Run, err error) run.Run {
		t.Helper()
		require.NoError(t, err)
		return r
	}
}

func TestFavoritesSaveAndList(t *testing.T) {
	favs := newTestFavorites(t)

	tenK := mustRun(t)(run.NewWithDistanceAndPace(10, 300))
	half := mustRun(t)(run.NewWithDistanceAndDuration(21.0975, 6300))

	saved, err := favs.Save(tenK, run.DistancePace)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	_, err = favs.Save(half, run.DistanceDuration)
	require.NoError(t, err)

	list, err := favs.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first, authored pair preserved
	assert.True(t, half.Equal(list[0].Run))
	assert.Equal(t, run.DistanceDuration, list[0].Pair)
	assert.True(t, tenK.Equal(list[1].Run))
	assert.Equal(t, run.DistancePace, list[1].Pair)
	assert.Equal(t, saved.ID, list[1].ID)
}

func TestFavoritesSave_Idempotent(t *testing.T) {
	favs := newTestFavorites(t)

	first, err := favs.Save(mustRun(t)(run.NewWithDistanceAndDuration(10, 3000)), run.DistanceDuration)
	require.NoError(t, err)

	// The same run authored from duration and speed
	same := mustRun(t)(run.NewWithDurationAndSpeed(3000, 12))
	second, err := favs.Save(same, run.DurationSpeed)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, run.DistanceDuration, second.Pair)

	list, err := favs.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFavoritesSave_EmptyRun(t *testing.T) {
	favs := newTestFavorites(t)

	_, err := favs.Save(run.Run{}, run.DistanceDuration)
	assert.Error(t, err)
}

func TestFavoritesToggle(t *testing.T) {
	favs := newTestFavorites(t)
	r := mustRun(t)(run.NewWithDurationAndPace(1500, 300))

	ok, err := favs.Contains(r)
	require.NoError(t, err)
	assert.False(t, ok)

	isFavorite, err := favs.Toggle(r, run.DurationPace)
	require.NoError(t, err)
	assert.True(t, isFavorite)

	ok, err = favs.Contains(r)
	require.NoError(t, err)
	assert.True(t, ok)

	isFavorite, err = favs.Toggle(r, run.DurationPace)
	require.NoError(t, err)
	assert.False(t, isFavorite)

	ok, err = favs.Contains(r)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoritesRemove(t *testing.T) {
	favs := newTestFavorites(t)

	saved, err := favs.Save(mustRun(t)(run.NewWithDistanceAndSpeed(5, 10)), run.DistanceSpeed)
	require.NoError(t, err)

	require.NoError(t, favs.Remove(saved.ID))
	assert.ErrorIs(t, favs.Remove(saved.ID), store.ErrFavoriteNotFound)

	list, err := favs.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFavoritesList_SkipsUnreadable(t *testing.T) {
	favs := newTestFavorites(t)

	require.NoError(t, favs.store.AddFavorite(&store.Favorite{
		Pair:        "pace+speed",
		Payload:     "{'pace': 300, 'speed': 12.0}",
		DistanceKm:  1,
		DurationSec: 1,
	}))
	_, err := favs.Save(mustRun(t)(run.NewWithDistanceAndDuration(5, 1500)), run.DistanceDuration)
	require.NoError(t, err)

	list, err := favs.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5.0, list[0].Run.DistanceKm())
}
