package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"runpace/internal/health"
	"runpace/internal/units"
)

// HomeEnv overrides the directory holding the config file and database
const HomeEnv = "RUNPACE_HOME"

// BirthDateLayout is the layout of Profile.BirthDate
const BirthDateLayout = "2006-01-02"

// Config represents the application configuration
type Config struct {
	Profile  Profile        `json:"profile"`
	Display  DisplayConfig  `json:"display"`
	Forecast ForecastConfig `json:"forecast"`
}

// Profile holds the runner's body measurements
type Profile struct {
	WeightKg  float64 `json:"weight_kg"`
	HeightCm  float64 `json:"height_cm"`
	BirthDate string  `json:"birth_date"` // YYYY-MM-DD, optional
}

// DisplayConfig holds the preferred unit per quantity
type DisplayConfig struct {
	DistanceUnit units.Unit `json:"distance_unit"`
	PaceUnit     units.Unit `json:"pace_unit"`
	SpeedUnit    units.Unit `json:"speed_unit"`
	WeightUnit   units.Unit `json:"weight_unit"`
	HeightUnit   units.Unit `json:"height_unit"`
}

// ForecastConfig holds the race forecast settings
type ForecastConfig struct {
	FatigueCoefficient float64   `json:"fatigue_coefficient"`
	TargetDistancesKm  []float64 `json:"target_distances_km"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Profile: Profile{
			WeightKg: 70,
			HeightCm: 175,
		},
		Display: DisplayConfig{
			DistanceUnit: units.KM,
			PaceUnit:     units.MinKm,
			SpeedUnit:    units.KmH,
			WeightUnit:   units.KG,
			HeightUnit:   units.CM,
		},
		Forecast: ForecastConfig{
			FatigueCoefficient: 1.06,
			TargetDistancesKm:  []float64{5, 10, 21.0975, 42.195},
		},
	}
}

// Imperial returns the display config for miles and pounds
func Imperial() DisplayConfig {
	return DisplayConfig{
		DistanceUnit: units.Mile,
		PaceUnit:     units.MinMile,
		SpeedUnit:    units.MPH,
		WeightUnit:   units.LB,
		HeightUnit:   units.Inch,
	}
}

// Load reads the configuration from <config dir>/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path and applies defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Profile.WeightKg == 0 {
		c.Profile.WeightKg = defaults.Profile.WeightKg
	}
	if c.Profile.HeightCm == 0 {
		c.Profile.HeightCm = defaults.Profile.HeightCm
	}
	if c.Display.DistanceUnit == 0 {
		c.Display.DistanceUnit = defaults.Display.DistanceUnit
	}
	if c.Display.PaceUnit == 0 {
		c.Display.PaceUnit = defaults.Display.PaceUnit
	}
	if c.Display.SpeedUnit == 0 {
		c.Display.SpeedUnit = defaults.Display.SpeedUnit
	}
	if c.Display.WeightUnit == 0 {
		c.Display.WeightUnit = defaults.Display.WeightUnit
	}
	if c.Display.HeightUnit == 0 {
		c.Display.HeightUnit = defaults.Display.HeightUnit
	}
	if c.Forecast.FatigueCoefficient == 0 {
		c.Forecast.FatigueCoefficient = defaults.Forecast.FatigueCoefficient
	}
	if len(c.Forecast.TargetDistancesKm) == 0 {
		c.Forecast.TargetDistancesKm = defaults.Forecast.TargetDistancesKm
	}
}

// Save writes the configuration to <config dir>/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path
func SaveFile(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Profile.BirthDate = "1990-01-01"
	return SaveFile(path, &example)
}

// Validate checks the profile and unit preferences
func (c *Config) Validate() error {
	if c.Profile.WeightKg < 0 {
		return fmt.Errorf("profile.weight_kg must be positive, got %v", c.Profile.WeightKg)
	}
	if c.Profile.HeightCm < 0 {
		return fmt.Errorf("profile.height_cm must be positive, got %v", c.Profile.HeightCm)
	}
	if c.Profile.BirthDate != "" {
		if _, err := time.Parse(BirthDateLayout, c.Profile.BirthDate); err != nil {
			return fmt.Errorf("profile.birth_date must be YYYY-MM-DD, got %q", c.Profile.BirthDate)
		}
	}

	// Validate display units
	checks := []struct {
		field    string
		unit     units.Unit
		category units.Category
	}{
		{"display.distance_unit", c.Display.DistanceUnit, units.Length},
		{"display.pace_unit", c.Display.PaceUnit, units.Pace},
		{"display.speed_unit", c.Display.SpeedUnit, units.Speed},
		{"display.weight_unit", c.Display.WeightUnit, units.Weight},
		{"display.height_unit", c.Display.HeightUnit, units.Length},
	}
	for _, check := range checks {
		if check.unit != 0 && check.unit.Category() != check.category {
			return fmt.Errorf("%s must be a %s unit, got %s", check.field, check.category, check.unit)
		}
	}

	if c.Forecast.FatigueCoefficient != 0 && (c.Forecast.FatigueCoefficient < 1 || c.Forecast.FatigueCoefficient > 1.2) {
		return fmt.Errorf("forecast.fatigue_coefficient must be between 1.0 and 1.2, got %v", c.Forecast.FatigueCoefficient)
	}
	for _, km := range c.Forecast.TargetDistancesKm {
		if km <= 0 {
			return fmt.Errorf("forecast.target_distances_km must be positive, got %v", km)
		}
	}

	return nil
}

// Birth returns the parsed birth date, or the zero time when unset
func (p Profile) Birth() time.Time {
	t, err := time.Parse(BirthDateLayout, p.BirthDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Age returns the runner's age on now, or 0 without a birth date
func (p Profile) Age(now time.Time) int {
	return health.AgeAt(p.Birth(), now)
}

// HasAge reports whether a birth date is configured
func (p Profile) HasAge() bool {
	return !p.Birth().IsZero()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runpace"), nil
}
