package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"runpace/internal/config"
	"runpace/internal/run"
	"runpace/internal/units"
)

func TestUnitsMetric(t *testing.T) {
	u := NewUnits(config.DefaultConfig().Display)

	assert.Equal(t, units.KM, u.For(run.Distance))
	assert.Equal(t, units.Unit(0), u.For(run.Duration))
	assert.Equal(t, "21.1 km", u.FormatDistance(21.0975))
	assert.Equal(t, "5:00 min/km", u.FormatPace(300))
	assert.Equal(t, "70 kg", u.FormatWeight(70))
	assert.Equal(t, "175 cm", u.FormatHeight(175))
	assert.Equal(t, "min/km", u.PaceLabel())
}

func TestUnitsImperial(t *testing.T) {
	u := NewUnits(config.Imperial())

	assert.Equal(t, units.MPH, u.For(run.Speed))
	assert.Equal(t, "6.21 mi", u.FormatDistance(10))
	assert.Equal(t, "8:03 min/mi", u.FormatPace(300))
	assert.Equal(t, "154.32 lb", u.FormatWeight(70))
	assert.Equal(t, "min/mi", u.PaceLabel())
}

func TestConvertPaceData(t *testing.T) {
	metric := NewUnits(config.DefaultConfig().Display)
	assert.Equal(t, []float64{5, 4.5}, metric.ConvertPaceData([]float64{300, 270}))

	imperial := NewUnits(config.Imperial())
	got := imperial.ConvertPaceData([]float64{300})
	assert.InDelta(t, 8.0467, got[0], 0.0001)
}

func TestPaceDelta(t *testing.T) {
	tests := []struct {
		name    string
		display config.DisplayConfig
		from    float64
		to      float64
		want    int
	}{
		{"metric slower", config.DefaultConfig().Display, 300, 314, 14},
		{"metric faster", config.DefaultConfig().Display, 300, 288, -12},
		{"metric same", config.DefaultConfig().Display, 300, 300, 0},
		{"imperial slower", config.Imperial(), 300, 314, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewUnits(tt.display).PaceDelta(tt.from, tt.to))
		})
	}
}
