package health

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{"average adult", 70, 175, 22.857},
		{"tall and light", 60, 190, 16.620},
		{"short and heavy", 95, 160, 37.109},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BMI(tt.weightKg, tt.heightCm), 0.001)
		})
	}
}

func TestBMI_ZeroHeight(t *testing.T) {
	assert.True(t, math.IsInf(BMI(70, 0), 1))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(16.6))
	assert.Equal(t, "Normal", BMICategory(18.5))
	assert.Equal(t, "Normal", BMICategory(22.9))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Obese", BMICategory(37.1))
	assert.Equal(t, "Obese", BMICategory(math.Inf(1)))
	assert.Equal(t, "Unknown", BMICategory(math.NaN()))
}

func TestHeartRates(t *testing.T) {
	tests := []struct {
		age  int
		want HeartRateZones
	}{
		{40, HeartRateZones{Max: 180, FatBurning: 117, ConditionBuilding: 135, MaxPerformance: 153}},
		{20, HeartRateZones{Max: 200, FatBurning: 130, ConditionBuilding: 150, MaxPerformance: 170}},
		{0, HeartRateZones{Max: 220, FatBurning: 143, ConditionBuilding: 165, MaxPerformance: 187}},
	}

	for _, tt := range tests {
		t.Run("age "+strconv.Itoa(tt.age), func(t *testing.T) {
			assert.Equal(t, tt.want, Zones(tt.age))
			assert.Equal(t, tt.want.Max, MaxHeartRate(tt.age))
			assert.Equal(t, tt.want.FatBurning, FatBurningHeartRate(tt.age))
			assert.Equal(t, tt.want.ConditionBuilding, ConditionBuildingHeartRate(tt.age))
			assert.Equal(t, tt.want.MaxPerformance, MaxPerformanceHeartRate(tt.age))
		})
	}
}

func TestAgeAt(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday", time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC), 33},
		{"on birthday", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), 34},
		{"later in year", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 34},
		{"earlier month", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), 33},
		{"before birth", time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeAt(birth, tt.now))
		})
	}

	assert.Equal(t, 0, AgeAt(time.Time{}, time.Now()))
}
