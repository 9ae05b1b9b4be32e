package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runpace/internal/units"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test profile defaults
	if cfg.Profile.WeightKg != 70 {
		t.Errorf("Profile.WeightKg = %v, want 70", cfg.Profile.WeightKg)
	}
	if cfg.Profile.HeightCm != 175 {
		t.Errorf("Profile.HeightCm = %v, want 175", cfg.Profile.HeightCm)
	}
	if cfg.Profile.BirthDate != "" {
		t.Errorf("Profile.BirthDate should be empty, got %q", cfg.Profile.BirthDate)
	}

	// Test display defaults
	assert.Equal(t, units.KM, cfg.Display.DistanceUnit)
	assert.Equal(t, units.MinKm, cfg.Display.PaceUnit)
	assert.Equal(t, units.KmH, cfg.Display.SpeedUnit)
	assert.Equal(t, units.KG, cfg.Display.WeightUnit)
	assert.Equal(t, units.CM, cfg.Display.HeightUnit)

	assert.Equal(t, 1.06, cfg.Forecast.FatigueCoefficient)
	assert.Equal(t, []float64{5, 10, 21.0975, 42.195}, cfg.Forecast.TargetDistancesKm)

	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name:   "empty config is valid",
			config: Config{},
		},
		{
			name:   "imperial display",
			config: Config{Display: Imperial()},
		},
		{
			name:        "negative weight",
			config:      Config{Profile: Profile{WeightKg: -1}},
			expectError: true,
			errContains: "weight_kg",
		},
		{
			name:        "negative height",
			config:      Config{Profile: Profile{HeightCm: -175}},
			expectError: true,
			errContains: "height_cm",
		},
		{
			name:        "bad birth date",
			config:      Config{Profile: Profile{BirthDate: "15/06/1990"}},
			expectError: true,
			errContains: "birth_date",
		},
		{
			name:        "weight unit as distance",
			config:      Config{Display: DisplayConfig{DistanceUnit: units.KG}},
			expectError: true,
			errContains: "display.distance_unit",
		},
		{
			name:        "speed unit as pace",
			config:      Config{Display: DisplayConfig{PaceUnit: units.MPH}},
			expectError: true,
			errContains: "display.pace_unit",
		},
		{
			name:        "fatigue coefficient out of range",
			config:      Config{Forecast: ForecastConfig{FatigueCoefficient: 2}},
			expectError: true,
			errContains: "fatigue_coefficient",
		},
		{
			name:        "zero target distance",
			config:      Config{Forecast: ForecastConfig{TargetDistancesKm: []float64{5, 0}}},
			expectError: true,
			errContains: "target_distances_km",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	_, err := Load()
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	cfg := DefaultConfig()
	cfg.Profile.WeightKg = 62.5
	cfg.Profile.BirthDate = "1985-03-20"
	cfg.Display = Imperial()
	require.NoError(t, Save(&cfg))

	_, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, *got)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"profile": {"height_cm": 182}, "display": {"distance_unit": "MILE", "pace_unit": "min/mi"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 182.0, cfg.Profile.HeightCm)
	assert.Equal(t, 70.0, cfg.Profile.WeightKg)
	assert.Equal(t, units.Mile, cfg.Display.DistanceUnit)
	assert.Equal(t, units.MinMile, cfg.Display.PaceUnit)
	assert.Equal(t, units.KmH, cfg.Display.SpeedUnit)
	assert.Equal(t, 1.06, cfg.Forecast.FatigueCoefficient)
}

func TestLoadRejectsUnknownUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"display": {"distance_unit": "furlong"}}`), 0600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestCreateExample(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	require.NoError(t, CreateExample())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "1990-01-01", cfg.Profile.BirthDate)

	// An existing config is left alone
	cfg.Profile.WeightKg = 80
	require.NoError(t, Save(cfg))
	require.NoError(t, CreateExample())
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 80.0, cfg.Profile.WeightKg)
}

func TestProfileAge(t *testing.T) {
	now := time.Date(2024, time.March, 19, 12, 0, 0, 0, time.UTC)

	p := Profile{BirthDate: "1985-03-20"}
	assert.True(t, p.HasAge())
	assert.Equal(t, 38, p.Age(now))

	p = Profile{}
	assert.False(t, p.HasAge())
	assert.Equal(t, 0, p.Age(now))
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/runpace-test")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/runpace-test", dir)
}
