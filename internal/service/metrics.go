package service

import (
	"math"
	"time"

	"runpace/internal/config"
	"runpace/internal/failure"
	"runpace/internal/health"
	"runpace/internal/run"
)

// Metrics are the runner-specific figures for one run
type Metrics struct {
	Calories string

	// Cadence is 0 when the profile height is out of range; CadenceNote
	// then explains why
	Cadence     int
	CadenceNote string

	BMI         float64
	BMICategory string

	// Heart-rate targets need a birth date
	HasAge bool
	Age    int
	Zones  health.HeartRateZones
}

// ProfileMetrics computes the metrics of r for the runner described by profile
func ProfileMetrics(r run.Run, profile config.Profile, now time.Time) Metrics {
	m := Metrics{
		Calories: r.Calories(profile.WeightKg),
	}

	cadence, err := r.CadenceCount(profile.HeightCm)
	if err != nil {
		_, m.CadenceNote = failure.Describe(err)
	} else {
		m.Cadence = cadence
	}

	if profile.HeightCm > 0 {
		m.BMI = health.BMI(profile.WeightKg, profile.HeightCm)
		m.BMICategory = health.BMICategory(m.BMI)
	} else {
		m.BMICategory = health.BMICategory(math.NaN())
	}

	if profile.HasAge() {
		m.HasAge = true
		m.Age = profile.Age(now)
		m.Zones = health.Zones(m.Age)
	}
	return m
}
