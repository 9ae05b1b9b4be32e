package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"runpace/internal/config"
	"runpace/internal/failure"
	"runpace/internal/run"
	"runpace/internal/store"
	"runpace/internal/timecodec"
	"runpace/internal/units"
)

// Field is one raw calculator input. Durations and paces are clock texts
// ("1:45:11", "5:00"), distances and speeds decimals with either "." or ","
// as separator. A zero Unit means the display unit of the field's category.
type Field struct {
	Param run.Param  `json:"param"`
	Text  string     `json:"text"`
	Unit  units.Unit `json:"unit,omitempty"`
}

// Input is the pair of fields the user filled in
type Input struct {
	First  Field `json:"first"`
	Second Field `json:"second"`
}

// Result is a calculated run with every value formatted in display units
type Result struct {
	Run      run.Run
	Pair     run.InputPair
	Distance string
	Duration string
	Pace     string
	Speed    string
}

// Calculator turns raw inputs into runs
type Calculator struct {
	store   *store.Store
	display config.DisplayConfig
	logger  *slog.Logger
}

// NewCalculator creates a calculator formatting results in display units.
// With a non-nil store the last successful input is remembered.
func NewCalculator(st *store.Store, display config.DisplayConfig, logger *slog.Logger) *Calculator {
	return &Calculator{store: st, display: display, logger: orDiscard(logger)}
}

// Calculate parses both fields and builds the run they describe
func (c *Calculator) Calculate(in Input) (Result, error) {
	v1, err := c.ParseField(in.First)
	if err != nil {
		return Result{}, err
	}
	v2, err := c.ParseField(in.Second)
	if err != nil {
		return Result{}, err
	}

	r, pair, err := run.NewFromParams(in.First.Param, v1, in.Second.Param, v2)
	if err != nil {
		c.logger.Debug("calculation rejected", "pair", in.First.Param.String()+"+"+in.Second.Param.String(), "error", err)
		return Result{}, err
	}

	result, err := c.Describe(r, pair)
	if err != nil {
		return Result{}, err
	}

	if c.store != nil {
		if err := c.remember(in); err != nil {
			// The result is still valid
			c.logger.Warn("failed to remember input", "error", err)
		}
	}
	return result, nil
}

// Describe formats every value of r in the display units
func (c *Calculator) Describe(r run.Run, pair run.InputPair) (Result, error) {
	distance, err := r.Distance(c.display.DistanceUnit)
	if err != nil {
		return Result{}, err
	}
	pace, err := r.Pace(c.display.PaceUnit)
	if err != nil {
		return Result{}, err
	}
	speed, err := r.Speed(c.display.SpeedUnit)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Run:      r,
		Pair:     pair,
		Distance: distance + " " + c.display.DistanceUnit.Symbol(),
		Duration: r.Duration(),
		Pace:     pace + " " + c.display.PaceUnit.Symbol(),
		Speed:    speed + " " + c.display.SpeedUnit.Symbol(),
	}, nil
}

// UnitFor returns the unit f is expressed in
func (c *Calculator) UnitFor(f Field) units.Unit {
	if f.Unit != 0 {
		return f.Unit
	}
	switch f.Param {
	case run.Distance:
		return c.display.DistanceUnit
	case run.Pace:
		return c.display.PaceUnit
	case run.Speed:
		return c.display.SpeedUnit
	default:
		return 0
	}
}

// ParseField converts a raw field to its base unit value
func (c *Calculator) ParseField(f Field) (float64, error) {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		return 0, failure.InvalidArgument("Missing "+f.Param.String(), "enter a %s", f.Param)
	}

	switch f.Param {
	case run.Duration:
		seconds, err := timecodec.ParseToSeconds(text)
		if err != nil {
			return 0, err
		}
		return float64(seconds), nil
	case run.Pace:
		seconds, err := timecodec.ParseToSeconds(text)
		if err != nil {
			return 0, err
		}
		return run.Pace.Category().ToBase(c.UnitFor(f), float64(seconds))
	case run.Distance, run.Speed:
		v, err := ParseDecimal(text)
		if err != nil {
			return 0, failure.Parse("Invalid "+f.Param.String(), err, "%q is not a number", text)
		}
		return f.Param.Category().ToBase(c.UnitFor(f), v)
	default:
		return 0, failure.InvalidArgument("Invalid parameter", "unknown parameter %d", int(f.Param))
	}
}

// ParseDecimal parses a decimal number accepting "," as decimal separator
func ParseDecimal(text string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(strings.TrimSpace(text), ",", ".", 1), 64)
}

func (c *Calculator) remember(in Input) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding input: %w", err)
	}
	return c.store.SetSetting(store.SettingLastInput, string(data))
}

// LastInput returns the last successfully calculated input.
// ok is false when nothing was remembered.
func (c *Calculator) LastInput() (in Input, ok bool, err error) {
	if c.store == nil {
		return Input{}, false, nil
	}
	value, err := c.store.GetSetting(store.SettingLastInput)
	if err != nil || value == "" {
		return Input{}, false, err
	}
	if err := json.Unmarshal([]byte(value), &in); err != nil {
		c.logger.Warn("discarding unreadable last input", "error", err)
		return Input{}, false, nil
	}
	return in, true, nil
}
