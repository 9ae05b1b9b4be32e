package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runpace/internal/config"
	"runpace/internal/run"
	"runpace/internal/service"
)

func testResult(t *testing.T, cfg config.Config) service.Result {
	t.Helper()

	r, err := run.NewWithDistanceAndDuration(10, 3000)
	require.NoError(t, err)
	result, err := service.NewCalculator(nil, cfg.Display, nil).Describe(r, run.DistanceDuration)
	require.NoError(t, err)
	return result
}

func TestMetricsModel_Content(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profile.BirthDate = "1990-06-15"
	now := func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }

	m := NewMetricsModel(&cfg, NewUnits(cfg.Display), now, 120, 60)
	assert.Contains(t, m.View(), "Calculate a run first")

	m = m.SetResult(testResult(t, cfg))
	content := m.renderContent()

	assert.Contains(t, content, "~630 kcal")
	assert.Contains(t, content, "173 spm")
	assert.Contains(t, content, "Normal")
	assert.Contains(t, content, "Heart Rate (age 34)")
	assert.Contains(t, content, "186 bpm")
	assert.Contains(t, content, "Half marathon")
	assert.Contains(t, content, "1:50:19")
	assert.Contains(t, content, "vs now")
	assert.Contains(t, content, "+14s")
	assert.Contains(t, content, "-12s")
	assert.NotContains(t, content, "10K")
}

func TestMetricsModel_NoBirthDate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profile.HeightCm = 300

	m := NewMetricsModel(&cfg, NewUnits(cfg.Display), time.Now, 0, 0)
	m = m.SetResult(testResult(t, cfg))
	content := m.renderContent()

	assert.Contains(t, content, "birth_date")
	assert.Contains(t, content, "height must be between")
}

func TestMetricsModel_ChartRange(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewMetricsModel(&cfg, NewUnits(cfg.Display), time.Now, 0, 0)
	m = m.SetResult(testResult(t, cfg))

	from, to := m.chartRange()
	assert.Equal(t, 5.0, from)
	assert.Equal(t, 42.195, to)
}
