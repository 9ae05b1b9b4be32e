package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runpace/internal/run"
)

func TestForecasts(t *testing.T) {
	r := mustRun(t)(run.NewWithDistanceAndDuration(10, 3000))

	forecasts, err := Forecasts(r, 0, nil)
	require.NoError(t, err)
	require.Len(t, forecasts, 3, "the 10K target matches the run and is skipped")

	tests := []struct {
		label    string
		targetKm float64
		duration int
	}{
		{"5K", FiveKm, 1439},
		{"Half marathon", HalfMarathon, 6619},
		{"Marathon", Marathon, 13801},
	}
	for i, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, forecasts[i].Label)
			assert.Equal(t, tt.targetKm, forecasts[i].TargetKm)
			assert.Equal(t, tt.duration, forecasts[i].Run.DurationSec())
		})
	}
}

func TestForecasts_SkipsNearbyTargets(t *testing.T) {
	r := mustRun(t)(run.NewWithDistanceAndDuration(10.4, 3120))

	forecasts, err := Forecasts(r, 1.06, []float64{10, 11, 20})
	require.NoError(t, err)
	require.Len(t, forecasts, 2)
	assert.Equal(t, 11.0, forecasts[0].TargetKm)
	assert.Equal(t, "11 km", forecasts[0].Label)
	assert.Equal(t, 20.0, forecasts[1].TargetKm)
}

func TestForecasts_CoefficientOne(t *testing.T) {
	r := mustRun(t)(run.NewWithDistanceAndDuration(10, 3000))

	forecasts, err := Forecasts(r, 1, []float64{20})
	require.NoError(t, err)
	require.Len(t, forecasts, 1)
	assert.Equal(t, 6000, forecasts[0].Run.DurationSec())
	assert.Equal(t, 300, forecasts[0].Run.PaceSecPerKm())
}

func TestForecastCurve(t *testing.T) {
	r := mustRun(t)(run.NewWithDistanceAndDuration(10, 3000))

	curve, err := ForecastCurve(r, 0, 5, 42.195, ForecastCurvePoints)
	require.NoError(t, err)
	require.Len(t, curve, ForecastCurvePoints)

	// Pace slows down as the distance grows
	for i := 1; i < len(curve); i++ {
		assert.GreaterOrEqual(t, curve[i], curve[i-1])
	}
	assert.Less(t, curve[0], 300.0)
	assert.Greater(t, curve[len(curve)-1], 300.0)
}

func TestTargetLabel(t *testing.T) {
	assert.Equal(t, "Marathon", TargetLabel(42.195))
	assert.Equal(t, "10K", TargetLabel(10))
	assert.Equal(t, "15 km", TargetLabel(15))
	assert.Equal(t, "2.5 km", TargetLabel(2.5))
}
