// Package units defines the closed set of measurement units the calculator
// understands and converts values between them.
//
// Every unit belongs to a Category with a canonical base unit: kilograms for
// weight, kilometers for length, seconds per kilometer for pace, kilometers
// per hour for speed and seconds for time. A unit is described by a single
// factor relative to that base, so conversions are implemented once per
// category instead of once per unit.
package units

import (
	"math"
	"strconv"
	"strings"

	"runpace/internal/failure"
	"runpace/internal/timecodec"
)

const (
	KmPerMile      = 1.60934
	PoundsPerKg    = 2.20462
	CmPerKm        = 100000.0
	FeetPerKm      = 3280.84
	InchesPerKm    = 39370.1
	SecondsPerHour = 3600.0
	SecondsPerMin  = 60.0
)

// Category groups units that can be converted into each other
type Category int

const (
	Weight Category = iota + 1
	Length
	Pace
	Speed
	Time
)

func (c Category) String() string {
	switch c {
	case Weight:
		return "weight"
	case Length:
		return "length"
	case Pace:
		return "pace"
	case Speed:
		return "speed"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// Base returns the canonical unit of the category
func (c Category) Base() Unit {
	switch c {
	case Weight:
		return KG
	case Length:
		return KM
	case Pace:
		return MinKm
	case Speed:
		return KmH
	default:
		return 0
	}
}

// rejectsNegative reports whether negative values are undefined in c
func (c Category) rejectsNegative() bool {
	return c == Pace || c == Speed
}

// ToBase converts v expressed in u to the category's base unit
func (c Category) ToBase(u Unit, v float64) (float64, error) {
	def, err := c.lookup(u, v)
	if err != nil {
		return 0, err
	}
	if def.divide {
		return v * def.factor, nil
	}
	return v / def.factor, nil
}

// FromBase converts base, expressed in the category's base unit, to u
func (c Category) FromBase(u Unit, base float64) (float64, error) {
	def, err := c.lookup(u, base)
	if err != nil {
		return 0, err
	}
	if def.divide {
		return base / def.factor, nil
	}
	return base * def.factor, nil
}

func (c Category) lookup(u Unit, v float64) (definition, error) {
	def, ok := definitions[u]
	if !ok {
		return definition{}, failure.UnsupportedConversion("Unsupported unit", "unit %d is not a known unit", int(u))
	}
	if def.category != c {
		return definition{}, failure.UnsupportedConversion("Unsupported conversion",
			"%s is a %s unit and cannot be converted as %s", def.name, def.category, c)
	}
	if c.rejectsNegative() && v < 0 {
		return definition{}, failure.InvalidArgument("Invalid "+c.String(), "%s cannot be negative (got %v)", c, v)
	}
	return def, nil
}

// Unit identifies a measurement unit
type Unit int

const (
	KG Unit = iota + 1
	LB
	CM
	Feet
	Inch
	KM
	Mile
	MinKm
	MinMile
	KmH
	MPH
	Hour
	Minute
)

type definition struct {
	name     string
	symbol   string
	category Category
	factor   float64
	divide   bool // FromBase divides by factor instead of multiplying
}

var definitions = map[Unit]definition{
	KG:      {"KG", "kg", Weight, 1, false},
	LB:      {"LB", "lb", Weight, PoundsPerKg, false},
	CM:      {"CM", "cm", Length, CmPerKm, false},
	Feet:    {"FEET", "ft", Length, FeetPerKm, false},
	Inch:    {"INCH", "in", Length, InchesPerKm, false},
	KM:      {"KM", "km", Length, 1, false},
	Mile:    {"MILE", "mi", Length, KmPerMile, true},
	MinKm:   {"MIN_KM", "min/km", Pace, 1, false},
	MinMile: {"MIN_MILE", "min/mi", Pace, KmPerMile, false},
	KmH:     {"KM_H", "km/h", Speed, 1, false},
	MPH:     {"MPH", "mph", Speed, KmPerMile, true},
	Hour:    {"HOUR", "h", Time, SecondsPerHour, true},
	Minute:  {"MINUTE", "min", Time, SecondsPerMin, true},
}

// All returns every unit in declaration order
func All() []Unit {
	return []Unit{KG, LB, CM, Feet, Inch, KM, Mile, MinKm, MinMile, KmH, MPH, Hour, Minute}
}

// InCategory returns the units of c in declaration order
func InCategory(c Category) []Unit {
	var out []Unit
	for _, u := range All() {
		if definitions[u].category == c {
			out = append(out, u)
		}
	}
	return out
}

// Valid reports whether u is a known unit
func (u Unit) Valid() bool {
	_, ok := definitions[u]
	return ok
}

// String returns the unit identifier, e.g. "MIN_KM"
func (u Unit) String() string {
	if def, ok := definitions[u]; ok {
		return def.name
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// Symbol returns the display symbol, e.g. "min/km"
func (u Unit) Symbol() string {
	return definitions[u].symbol
}

// Category returns the category u belongs to, or 0 for unknown units
func (u Unit) Category() Category {
	return definitions[u].category
}

// ToBase converts v from u to its category's base unit
func (u Unit) ToBase(v float64) (float64, error) {
	if !u.Valid() {
		return 0, failure.UnsupportedConversion("Unsupported unit", "unit %d is not a known unit", int(u))
	}
	return u.Category().ToBase(u, v)
}

// FromBase converts base from its category's base unit to u
func (u Unit) FromBase(base float64) (float64, error) {
	if !u.Valid() {
		return 0, failure.UnsupportedConversion("Unsupported unit", "unit %d is not a known unit", int(u))
	}
	return u.Category().FromBase(u, base)
}

// Format renders v (already expressed in u) followed by the unit symbol.
// Pace values are rendered as a clock time.
func (u Unit) Format(v float64) string {
	if u.Category() == Pace {
		return timecodec.FormatSeconds(int(math.Round(v))) + " " + u.Symbol()
	}
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + u.Symbol()
}

// MarshalText implements encoding.TextMarshaler. The zero Unit marshals as
// an empty string.
func (u Unit) MarshalText() ([]byte, error) {
	if u == 0 {
		return []byte{}, nil
	}
	if !u.Valid() {
		return nil, failure.UnsupportedConversion("Unsupported unit", "unit %d is not a known unit", int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*u = 0
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Parse resolves a unit by identifier ("MIN_KM") or symbol ("min/km"),
// ignoring case
func Parse(name string) (Unit, error) {
	name = strings.TrimSpace(name)
	for _, u := range All() {
		def := definitions[u]
		if strings.EqualFold(name, def.name) || strings.EqualFold(name, def.symbol) {
			return u, nil
		}
	}
	return 0, failure.UnsupportedConversion("Unknown unit", "%q is not a supported unit", name)
}

// Convert converts v between two units of the same category
func Convert(v float64, from, to Unit) (float64, error) {
	if from.Category() != to.Category() || !from.Valid() {
		return 0, failure.UnsupportedConversion("Unsupported conversion",
			"cannot convert %s to %s", from, to)
	}
	base, err := from.ToBase(v)
	if err != nil {
		return 0, err
	}
	return to.FromBase(base)
}

// PaceToSpeed converts seconds per kilometer to kilometers per hour
func PaceToSpeed(secPerKm float64) (float64, error) {
	if secPerKm <= 0 || math.IsNaN(secPerKm) {
		return 0, failure.InvalidArgument("Invalid pace", "pace must be greater than 0 (got %v)", secPerKm)
	}
	return SecondsPerHour / secPerKm, nil
}

// SpeedToPace converts kilometers per hour to seconds per kilometer
func SpeedToPace(kmh float64) (float64, error) {
	if kmh <= 0 || math.IsNaN(kmh) {
		return 0, failure.InvalidArgument("Invalid speed", "speed must be greater than 0 (got %v)", kmh)
	}
	return SecondsPerHour / kmh, nil
}
