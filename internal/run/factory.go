package run

import (
	"math"

	"runpace/internal/failure"
)

const secondsPerHour = 3600.0

// NewWithDistanceAndDuration builds a run from a distance in km and a
// duration in seconds
func NewWithDistanceAndDuration(distanceKm float64, durationSec int) (Run, error) {
	if err := requirePositive(Distance, distanceKm); err != nil {
		return Run{}, err
	}
	if err := requirePositive(Duration, float64(durationSec)); err != nil {
		return Run{}, err
	}

	pace := math.Round(float64(durationSec) / distanceKm)
	return newRun(distanceKm, durationSec, pace, distanceKm*secondsPerHour/float64(durationSec))
}

// NewWithDistanceAndPace builds a run from a distance in km and a pace in
// seconds per km. The pace is rounded to whole seconds first.
func NewWithDistanceAndPace(distanceKm, paceSecPerKm float64) (Run, error) {
	if err := requirePositive(Distance, distanceKm); err != nil {
		return Run{}, err
	}
	pace, err := wholePace(paceSecPerKm)
	if err != nil {
		return Run{}, err
	}

	duration := int(math.Round(distanceKm * pace))
	return newRun(distanceKm, duration, pace, secondsPerHour/pace)
}

// NewWithDistanceAndSpeed builds a run from a distance in km and a speed in
// km/h
func NewWithDistanceAndSpeed(distanceKm, speedKmh float64) (Run, error) {
	if err := requirePositive(Distance, distanceKm); err != nil {
		return Run{}, err
	}
	if err := requirePositive(Speed, speedKmh); err != nil {
		return Run{}, err
	}

	duration := int(math.Round(distanceKm * secondsPerHour / speedKmh))
	return newRun(distanceKm, duration, math.Round(secondsPerHour/speedKmh), speedKmh)
}

// NewWithDurationAndPace builds a run from a duration in seconds and a pace
// in seconds per km. The pace is rounded to whole seconds first.
func NewWithDurationAndPace(durationSec int, paceSecPerKm float64) (Run, error) {
	if err := requirePositive(Duration, float64(durationSec)); err != nil {
		return Run{}, err
	}
	pace, err := wholePace(paceSecPerKm)
	if err != nil {
		return Run{}, err
	}

	return newRun(float64(durationSec)/pace, durationSec, pace, secondsPerHour/pace)
}

// NewWithDurationAndSpeed builds a run from a duration in seconds and a speed
// in km/h
func NewWithDurationAndSpeed(durationSec int, speedKmh float64) (Run, error) {
	if err := requirePositive(Duration, float64(durationSec)); err != nil {
		return Run{}, err
	}
	if err := requirePositive(Speed, speedKmh); err != nil {
		return Run{}, err
	}

	distance := speedKmh * float64(durationSec) / secondsPerHour
	return newRun(distance, durationSec, math.Round(secondsPerHour/speedKmh), speedKmh)
}

// New builds a run from the pair's two values, given in base units and in
// the pair's parameter order. Durations are rounded to whole seconds.
func New(pair InputPair, a, b float64) (Run, error) {
	switch pair {
	case DistanceDuration:
		return NewWithDistanceAndDuration(a, roundSeconds(b))
	case DistancePace:
		return NewWithDistanceAndPace(a, b)
	case DistanceSpeed:
		return NewWithDistanceAndSpeed(a, b)
	case DurationPace:
		return NewWithDurationAndPace(roundSeconds(a), b)
	case DurationSpeed:
		return NewWithDurationAndSpeed(roundSeconds(a), b)
	default:
		return Run{}, failure.UnsupportedConversion("Unsupported combination", "cannot build a run from %s", pair)
	}
}

// NewFromParams is New for an unordered pair of parameters
func NewFromParams(p1 Param, v1 float64, p2 Param, v2 float64) (Run, InputPair, error) {
	pair, err := PairOf(p1, p2)
	if err != nil {
		return Run{}, 0, err
	}
	first, _ := pair.Params()
	if first != p1 {
		v1, v2 = v2, v1
	}
	r, err := New(pair, v1, v2)
	if err != nil {
		return Run{}, 0, err
	}
	return r, pair, nil
}

func newRun(distanceKm float64, durationSec int, pace, speedKmh float64) (Run, error) {
	// Rounding can push a derived whole-second field to zero for extreme inputs
	if durationSec <= 0 {
		return Run{}, failure.InvalidArgument("Invalid duration", "resulting duration rounds to 0 seconds")
	}
	if pace <= 0 {
		return Run{}, failure.InvalidArgument("Invalid pace", "resulting pace rounds to 0 seconds per km")
	}
	if math.IsInf(speedKmh, 0) || math.IsInf(distanceKm, 0) || pace > math.MaxInt32 {
		return Run{}, failure.InvalidArgument("Invalid run", "values are out of range")
	}

	return Run{
		distanceKm:   distanceKm,
		durationSec:  durationSec,
		paceSecPerKm: int(pace),
		speedKmh:     speedKmh,
	}, nil
}

func requirePositive(p Param, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return failure.InvalidArgument("Invalid "+p.String(), "%s must be greater than 0 (got %v)", p, v)
	}
	return nil
}

func wholePace(paceSecPerKm float64) (float64, error) {
	if err := requirePositive(Pace, paceSecPerKm); err != nil {
		return 0, err
	}
	pace := math.Round(paceSecPerKm)
	if pace <= 0 {
		return 0, failure.InvalidArgument("Invalid pace", "pace must be at least 1 second per km (got %v)", paceSecPerKm)
	}
	return pace, nil
}

func roundSeconds(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
