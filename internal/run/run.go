// Package run builds and describes runs: a distance covered in a duration,
// with the pace and speed derived from them.
//
// A Run is always built by one of the New* functions from exactly two of its
// four quantities. The remaining two are derived, with duration and pace
// rounded to whole seconds and distance and speed kept at full precision.
package run

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"runpace/internal/failure"
	"runpace/internal/timecodec"
	"runpace/internal/units"
)

const (
	maxDistanceDecimals = 4
	caloriesPerKgKm     = 0.9

	// Cadence model: 160 spm at 6 km/h for a 170 cm runner
	cadenceBase          = 160.0
	cadenceBaseSpeedKmh  = 6.0
	cadencePerKmh        = 2.5
	cadenceBaseHeightCm  = 170.0
	cadenceHeightDivisor = 2.0
)

const (
	// MinCadenceHeightCm and MaxCadenceHeightCm bound the supported heights (exclusive)
	MinCadenceHeightCm = 100.0
	MaxCadenceHeightCm = 272.0

	// DefaultFatigueCoefficient is the exponent of Riegel's formula
	DefaultFatigueCoefficient = 1.06
)

// Run is an immutable run. The zero value is not a valid run.
type Run struct {
	distanceKm   float64
	durationSec  int
	paceSecPerKm int
	speedKmh     float64
}

// DistanceKm returns the distance in kilometers
func (r Run) DistanceKm() float64 { return r.distanceKm }

// DurationSec returns the duration in seconds
func (r Run) DurationSec() int { return r.durationSec }

// PaceSecPerKm returns the pace in seconds per kilometer
func (r Run) PaceSecPerKm() int { return r.paceSecPerKm }

// SpeedKmh returns the speed in kilometers per hour
func (r Run) SpeedKmh() float64 { return r.speedKmh }

// IsZero reports whether r is the zero value
func (r Run) IsZero() bool {
	return r.durationSec == 0 && r.distanceKm == 0
}

// Equal reports whether both runs cover the same distance in the same time.
// Pace and speed are derived and do not take part in the comparison.
func (r Run) Equal(other Run) bool {
	return r.distanceKm == other.distanceKm && r.durationSec == other.durationSec
}

// Value returns the run's value of p in base units
func (r Run) Value(p Param) float64 {
	switch p {
	case Distance:
		return r.distanceKm
	case Duration:
		return float64(r.durationSec)
	case Pace:
		return float64(r.paceSecPerKm)
	case Speed:
		return r.speedKmh
	default:
		return 0
	}
}

// Distance formats the distance in unit using as many decimals as the
// converted value carries, between 1 and 4
func (r Run) Distance(unit units.Unit) (string, error) {
	v, err := units.Length.FromBase(unit, r.distanceKm)
	if err != nil {
		return "", err
	}
	prec := decimals(v)
	if prec < 1 {
		prec = 1
	}
	if prec > maxDistanceDecimals {
		prec = maxDistanceDecimals
	}
	return strconv.FormatFloat(v, 'f', prec, 64), nil
}

// Duration formats the duration as a clock time
func (r Run) Duration() string {
	return timecodec.FormatSeconds(r.durationSec)
}

// Pace formats the pace in unit as a clock time, rounded to whole seconds
func (r Run) Pace(unit units.Unit) (string, error) {
	v, err := units.Pace.FromBase(unit, float64(r.paceSecPerKm))
	if err != nil {
		return "", err
	}
	return timecodec.FormatSeconds(int(math.Round(v))), nil
}

// Speed formats the speed in unit with one decimal when the value has at
// most one, two otherwise
func (r Run) Speed(unit units.Unit) (string, error) {
	v, err := units.Speed.FromBase(unit, r.speedKmh)
	if err != nil {
		return "", err
	}
	prec := 2
	if decimals(v) <= 1 {
		prec = 1
	}
	return strconv.FormatFloat(v, 'f', prec, 64), nil
}

// Format formats the value of p in unit. Durations ignore the unit.
func (r Run) Format(p Param, unit units.Unit) (string, error) {
	switch p {
	case Distance:
		return r.Distance(unit)
	case Duration:
		return r.Duration(), nil
	case Pace:
		return r.Pace(unit)
	case Speed:
		return r.Speed(unit)
	default:
		return "", failure.InvalidArgument("Invalid parameter", "unknown parameter %d", int(p))
	}
}

// CaloriesCount estimates the energy spent by a runner of weightKg
func (r Run) CaloriesCount(weightKg float64) int {
	return int(math.Floor(r.distanceKm * weightKg * caloriesPerKgKm))
}

// Calories is CaloriesCount formatted as an approximation, e.g. "~630"
func (r Run) Calories(weightKg float64) string {
	return "~" + strconv.Itoa(r.CaloriesCount(weightKg))
}

// CadenceCount recommends steps per minute for the run's speed and the
// runner's height. Heights must lie strictly between 100 and 272 cm.
func (r Run) CadenceCount(heightCm float64) (int, error) {
	if math.IsNaN(heightCm) || heightCm <= MinCadenceHeightCm || heightCm >= MaxCadenceHeightCm {
		return 0, failure.InvalidArgument("Invalid height",
			"height must be between %v and %v cm (got %v)", MinCadenceHeightCm, MaxCadenceHeightCm, heightCm)
	}
	cadence := cadenceBase +
		(r.speedKmh-cadenceBaseSpeedKmh)*cadencePerKmh -
		(heightCm-cadenceBaseHeightCm)/cadenceHeightDivisor
	return int(math.Ceil(cadence)), nil
}

// Forecast predicts the run over targetKm using Riegel's formula
// t2 = t1 * (d2/d1)^k, where k is the fatigue coefficient
func (r Run) Forecast(targetKm, fatigueCoefficient float64) (Run, error) {
	if err := requirePositive(Distance, targetKm); err != nil {
		return Run{}, err
	}
	if r.IsZero() {
		return Run{}, failure.InvalidArgument("Invalid run", "cannot forecast from an empty run")
	}
	seconds := math.Round(float64(r.durationSec) * math.Pow(targetKm/r.distanceKm, fatigueCoefficient))
	return NewWithDistanceAndDuration(targetKm, roundSeconds(seconds))
}

// String describes the run in metric units
func (r Run) String() string {
	if r.IsZero() {
		return "empty run"
	}
	dist, _ := r.Distance(units.KM)
	pace, _ := r.Pace(units.MinKm)
	speed, _ := r.Speed(units.KmH)
	return fmt.Sprintf("%s km in %s (%s min/km, %s km/h)", dist, r.Duration(), pace, speed)
}

// decimals counts the fractional digits of v's shortest representation
func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return len(frac)
}
