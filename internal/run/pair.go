package run

import (
	"strings"

	"runpace/internal/failure"
	"runpace/internal/units"
)

// Param is one of the four quantities describing a run
type Param int

const (
	Distance Param = iota + 1
	Duration
	Pace
	Speed
)

// Params lists every parameter in storage key order
var Params = []Param{Distance, Duration, Pace, Speed}

// String returns the storage key of the parameter
func (p Param) String() string {
	switch p {
	case Distance:
		return "distance"
	case Duration:
		return "duration"
	case Pace:
		return "pace"
	case Speed:
		return "speed"
	default:
		return "unknown"
	}
}

// Label returns the capitalized display name
func (p Param) Label() string {
	s := p.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Category returns the unit category values of p are expressed in
func (p Param) Category() units.Category {
	switch p {
	case Distance:
		return units.Length
	case Duration:
		return units.Time
	case Pace:
		return units.Pace
	case Speed:
		return units.Speed
	default:
		return 0
	}
}

// ParseParam resolves a parameter from its storage key
func ParseParam(s string) (Param, error) {
	for _, p := range Params {
		if strings.EqualFold(strings.TrimSpace(s), p.String()) {
			return p, nil
		}
	}
	return 0, failure.Parse("Unknown parameter", nil, "%q is not one of distance, duration, pace, speed", s)
}

// MarshalText implements encoding.TextMarshaler
func (p Param) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Param) UnmarshalText(text []byte) error {
	parsed, err := ParseParam(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// InputPair names the two parameters a run was built from
type InputPair int

const (
	DistanceDuration InputPair = iota + 1
	DistancePace
	DistanceSpeed
	DurationPace
	DurationSpeed
)

// Pairs lists the supported pairs in decoding priority order
var Pairs = []InputPair{DistanceDuration, DistancePace, DistanceSpeed, DurationPace, DurationSpeed}

// Params returns the two parameters of the pair in storage key order
func (ip InputPair) Params() (Param, Param) {
	switch ip {
	case DistanceDuration:
		return Distance, Duration
	case DistancePace:
		return Distance, Pace
	case DistanceSpeed:
		return Distance, Speed
	case DurationPace:
		return Duration, Pace
	case DurationSpeed:
		return Duration, Speed
	default:
		return 0, 0
	}
}

// Includes reports whether p is one of the pair's parameters
func (ip InputPair) Includes(p Param) bool {
	a, b := ip.Params()
	return p != 0 && (p == a || p == b)
}

// String returns e.g. "distance+duration"
func (ip InputPair) String() string {
	a, b := ip.Params()
	if a == 0 {
		return "unknown"
	}
	return a.String() + "+" + b.String()
}

// PairOf resolves an unordered pair of parameters.
// Pace and speed together cannot describe a run since neither is absolute.
func PairOf(a, b Param) (InputPair, error) {
	if a > b {
		a, b = b, a
	}
	if a == b {
		return 0, failure.InvalidArgument("Invalid parameters", "%s cannot be combined with itself", a)
	}
	if a == Pace && b == Speed {
		return 0, failure.UnsupportedConversion("Unsupported combination",
			"pace and speed alone do not determine a run, provide a distance or a duration")
	}
	for _, ip := range Pairs {
		x, y := ip.Params()
		if x == a && y == b {
			return ip, nil
		}
	}
	return 0, failure.InvalidArgument("Invalid parameters", "unknown parameter combination %d and %d", int(a), int(b))
}

// ParsePair resolves a pair from its String form
func ParsePair(s string) (InputPair, error) {
	left, right, ok := strings.Cut(s, "+")
	if !ok {
		return 0, failure.Parse("Unknown pair", nil, "%q is not a parameter pair", s)
	}
	a, err := ParseParam(left)
	if err != nil {
		return 0, err
	}
	b, err := ParseParam(right)
	if err != nil {
		return 0, err
	}
	return PairOf(a, b)
}
