// Package health computes body and heart-rate figures from plain profile
// values. Every function is pure.
package health

import (
	"math"
	"time"
)

const (
	maxHeartRateBase = 220

	FatBurningIntensity        = 0.65
	ConditionBuildingIntensity = 0.75
	MaxPerformanceIntensity    = 0.85
)

// BMI returns the body mass index. A zero height yields +Inf.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// BMICategory returns the WHO classification of a BMI value
func BMICategory(bmi float64) string {
	switch {
	case math.IsNaN(bmi):
		return "Unknown"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// MaxHeartRate estimates the maximum heart rate for age
func MaxHeartRate(age int) int {
	return maxHeartRateBase - age
}

// FatBurningHeartRate is 65% of the maximum heart rate
func FatBurningHeartRate(age int) int {
	return zone(age, FatBurningIntensity)
}

// ConditionBuildingHeartRate is 75% of the maximum heart rate
func ConditionBuildingHeartRate(age int) int {
	return zone(age, ConditionBuildingIntensity)
}

// MaxPerformanceHeartRate is 85% of the maximum heart rate
func MaxPerformanceHeartRate(age int) int {
	return zone(age, MaxPerformanceIntensity)
}

func zone(age int, intensity float64) int {
	return int(math.Round(float64(MaxHeartRate(age)) * intensity))
}

// HeartRateZones groups the training targets for one age
type HeartRateZones struct {
	Max               int
	FatBurning        int
	ConditionBuilding int
	MaxPerformance    int
}

// Zones returns every heart-rate target for age
func Zones(age int) HeartRateZones {
	return HeartRateZones{
		Max:               MaxHeartRate(age),
		FatBurning:        FatBurningHeartRate(age),
		ConditionBuilding: ConditionBuildingHeartRate(age),
		MaxPerformance:    MaxPerformanceHeartRate(age),
	}
}

// AgeAt returns the age in whole years on now of someone born on birth.
// Birth dates after now yield 0.
func AgeAt(birth, now time.Time) int {
	if birth.IsZero() || now.Before(birth) {
		return 0
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
