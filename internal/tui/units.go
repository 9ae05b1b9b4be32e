package tui

import (
	"math"

	"runpace/internal/config"
	"runpace/internal/run"
	"runpace/internal/units"
)

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// For returns the display unit of a run parameter. Durations have none.
func (u Units) For(p run.Param) units.Unit {
	switch p {
	case run.Distance:
		return u.cfg.DistanceUnit
	case run.Pace:
		return u.cfg.PaceUnit
	case run.Speed:
		return u.cfg.SpeedUnit
	default:
		return 0
	}
}

// FormatDistance formats a distance in km in the preferred unit, e.g. "6.21 mi"
func (u Units) FormatDistance(km float64) string {
	return u.format(u.cfg.DistanceUnit, km)
}

// FormatPace formats a pace in seconds per km in the preferred unit, e.g. "8:03 min/mi"
func (u Units) FormatPace(secPerKm float64) string {
	return u.format(u.cfg.PaceUnit, secPerKm)
}

// FormatWeight formats a weight in kg in the preferred unit
func (u Units) FormatWeight(kg float64) string {
	return u.format(u.cfg.WeightUnit, kg)
}

// FormatHeight formats a height in cm in the preferred unit
func (u Units) FormatHeight(cm float64) string {
	return u.format(u.cfg.HeightUnit, cm/units.CmPerKm)
}

func (u Units) format(unit units.Unit, base float64) string {
	v, err := unit.FromBase(base)
	if err != nil {
		return "-"
	}
	return unit.Format(v)
}

// PaceDelta returns to minus from, both paces in seconds per km, as whole
// seconds in the preferred pace unit. Negative means to is faster.
func (u Units) PaceDelta(fromSecPerKm, toSecPerKm float64) int {
	from, err := u.cfg.PaceUnit.FromBase(fromSecPerKm)
	if err != nil {
		return 0
	}
	to, err := u.cfg.PaceUnit.FromBase(toSecPerKm)
	if err != nil {
		return 0
	}
	return int(math.Round(to)) - int(math.Round(from))
}

// PaceLabel returns the pace unit label ("min/mi" or "min/km")
func (u Units) PaceLabel() string {
	return u.cfg.PaceUnit.Symbol()
}

// ConvertPaceData converts paces in seconds per km to minutes in the
// preferred pace unit, for charts
func (u Units) ConvertPaceData(secPerKm []float64) []float64 {
	converted := make([]float64, len(secPerKm))
	for i, p := range secPerKm {
		v, err := u.cfg.PaceUnit.FromBase(p)
		if err != nil {
			continue
		}
		converted[i] = v / units.SecondsPerMin
	}
	return converted
}
