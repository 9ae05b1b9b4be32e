package run

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"runpace/internal/failure"
)

// storedFields mirrors the storage form. Every key is optional; absent keys
// stay nil so the authored pair can be recovered.
type storedFields struct {
	Distance *float64 `yaml:"distance"`
	Duration *float64 `yaml:"duration"`
	Pace     *float64 `yaml:"pace"`
	Speed    *float64 `yaml:"speed"`
}

func (f storedFields) get(p Param) *float64 {
	switch p {
	case Distance:
		return f.Distance
	case Duration:
		return f.Duration
	case Pace:
		return f.Pace
	case Speed:
		return f.Speed
	default:
		return nil
	}
}

// ToStorageForm encodes all four values of r, e.g.
//
//	{'distance': 10.0, 'duration': 3000, 'pace': 300, 'speed': 12.0}
func ToStorageForm(r Run) string {
	return encode(r, Params...)
}

// ToPairStorageForm encodes only the two values the run was authored with,
// e.g. {'distance': 10.0, 'duration': 3000}
func ToPairStorageForm(r Run, pair InputPair) string {
	a, b := pair.Params()
	if a == 0 {
		return ToStorageForm(r)
	}
	return encode(r, a, b)
}

func encode(r Run, params ...Param) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('\'')
		sb.WriteString(p.String())
		sb.WriteString("': ")
		switch p {
		case Distance:
			sb.WriteString(formatDecimal(r.distanceKm))
		case Duration:
			sb.WriteString(strconv.Itoa(r.durationSec))
		case Pace:
			sb.WriteString(strconv.Itoa(r.paceSecPerKm))
		case Speed:
			sb.WriteString(formatDecimal(r.speedKmh))
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

// formatDecimal writes the shortest representation of v, always with a
// fractional part so decimals stay distinguishable from whole seconds
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FromStorageForm decodes a run stored with ToStorageForm or
// ToPairStorageForm
func FromStorageForm(text string) (Run, error) {
	r, _, err := DecodeStorageForm(text)
	return r, err
}

// DecodeStorageForm decodes a stored run and reports the pair it was
// rebuilt from. Only two values are ever trusted: the other two are derived
// again through the matching builder.
func DecodeStorageForm(text string) (Run, InputPair, error) {
	if strings.TrimSpace(text) == "" {
		return Run{}, 0, failure.Parse("Invalid run data", nil, "stored run is empty")
	}

	var fields storedFields
	if err := yaml.Unmarshal([]byte(text), &fields); err != nil {
		return Run{}, 0, failure.Parse("Invalid run data", err, "cannot read stored run %q", text)
	}

	pair, err := storedPair(fields)
	if err != nil {
		return Run{}, 0, err
	}

	a, b := pair.Params()
	for _, p := range []Param{a, b} {
		if err := checkStoredValue(p, *fields.get(p)); err != nil {
			return Run{}, 0, err
		}
	}

	r, err := New(pair, *fields.get(a), *fields.get(b))
	if err != nil {
		return Run{}, 0, err
	}
	return r, pair, nil
}

// checkStoredValue rejects values no builder could have produced. Durations
// and paces are whole seconds, so they must fit in an int32.
func checkStoredValue(p Param, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return failure.Parse("Invalid run data", nil, "stored %s %v is not a number", p, v)
	}
	if (p == Duration || p == Pace) && math.Abs(v) > math.MaxInt32 {
		return failure.Parse("Invalid run data", nil, "stored %s %v is out of range", p, v)
	}
	return nil
}

func storedPair(fields storedFields) (InputPair, error) {
	for _, pair := range Pairs {
		a, b := pair.Params()
		if fields.get(a) != nil && fields.get(b) != nil {
			return pair, nil
		}
	}
	if fields.Pace != nil && fields.Speed != nil {
		return 0, failure.UnsupportedConversion("Unsupported combination",
			"a run stored with only pace and speed cannot be rebuilt")
	}
	return 0, failure.Parse("Invalid run data", nil, "stored run needs two of distance, duration, pace, speed")
}
