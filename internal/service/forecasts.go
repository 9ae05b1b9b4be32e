package service

import (
	"math"
	"strconv"

	"runpace/internal/run"
)

// Forecast is a predicted race result
type Forecast struct {
	Label    string
	TargetKm float64
	Run      run.Run
}

// Forecasts predicts the run over each target distance with Riegel's
// formula. Targets within 5% of the run's own distance are skipped. A zero
// coefficient means run.DefaultFatigueCoefficient and no targets means
// DefaultTargetsKm.
func Forecasts(r run.Run, coefficient float64, targetsKm []float64) ([]Forecast, error) {
	if coefficient == 0 {
		coefficient = run.DefaultFatigueCoefficient
	}
	if len(targetsKm) == 0 {
		targetsKm = DefaultTargetsKm
	}

	var forecasts []Forecast
	for _, km := range targetsKm {
		if isNear(km, r.DistanceKm()) {
			continue
		}
		predicted, err := r.Forecast(km, coefficient)
		if err != nil {
			return nil, err
		}
		forecasts = append(forecasts, Forecast{
			Label:    TargetLabel(km),
			TargetKm: km,
			Run:      predicted,
		})
	}
	return forecasts, nil
}

// ForecastCurve returns the predicted pace in seconds per km at points
// distances evenly spread between fromKm and toKm, for charting
func ForecastCurve(r run.Run, coefficient, fromKm, toKm float64, points int) ([]float64, error) {
	if coefficient == 0 {
		coefficient = run.DefaultFatigueCoefficient
	}
	if points < 2 {
		points = 2
	}

	curve := make([]float64, 0, points)
	step := (toKm - fromKm) / float64(points-1)
	for i := 0; i < points; i++ {
		predicted, err := r.Forecast(fromKm+step*float64(i), coefficient)
		if err != nil {
			return nil, err
		}
		curve = append(curve, float64(predicted.PaceSecPerKm()))
	}
	return curve, nil
}

// TargetLabel names the standard race distances, e.g. "Half marathon"
func TargetLabel(km float64) string {
	switch km {
	case FiveKm:
		return "5K"
	case TenKm:
		return "10K"
	case HalfMarathon:
		return "Half marathon"
	case Marathon:
		return "Marathon"
	default:
		return strconv.FormatFloat(km, 'f', -1, 64) + " km"
	}
}

func isNear(targetKm, sourceKm float64) bool {
	if sourceKm <= 0 {
		return false
	}
	return math.Abs(targetKm-sourceKm)/sourceKm <= ForecastSkipTolerance
}
