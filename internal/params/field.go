package params

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field identifies a numeric simulation parameter.
type Field int

const (
	FrequencyA Field = iota + 1
	FrequencyB
	WidthA
	WidthB
	Resolution
	Angle
	Speed
)

// Fields lists every numeric field in control-panel order.
var Fields = []Field{FrequencyA, FrequencyB, WidthA, WidthB, Resolution, Angle, Speed}

// Domain is the closed-or-open interval a field accepts.
type Domain struct {
	Min, Max     float64
	MinExclusive bool
}

func (d Domain) Contains(v float64) bool {
	if d.MinExclusive && v <= d.Min {
		return false
	}
	if v < d.Min || v > d.Max {
		return false
	}
	return true
}

func (d Domain) String() string {
	open := "["
	if d.MinExclusive {
		open = "("
	}
	return fmt.Sprintf("%s%g, %g]", open, d.Min, d.Max)
}

type fieldInfo struct {
	key      string
	label    string
	decimals int
	domain   Domain
}

var fieldTable = map[Field]fieldInfo{
	FrequencyA: {"frequency-a", "Frequency A", 1, Domain{0, 2000, true}},
	FrequencyB: {"frequency-b", "Frequency B", 1, Domain{0, 2000, true}},
	WidthA:     {"width-a", "Width A", 3, Domain{0, 100, true}},
	WidthB:     {"width-b", "Width B", 3, Domain{0, 100, true}},
	Resolution: {"resolution", "Resolution", 2, Domain{0, 8, true}},
	Angle:      {"angle", "Angle", 1, Domain{-180, 180, false}},
	Speed:      {"speed", "Speed", 2, Domain{0, 100, true}},
}

func (f Field) info() fieldInfo {
	if i, ok := fieldTable[f]; ok {
		return i
	}
	return fieldInfo{key: fmt.Sprintf("field(%d)", int(f)), label: "Unknown"}
}

// Key is the stable lowercase identifier, e.g. "frequency-a".
func (f Field) Key() string { return f.info().key }

// Label is the human label, e.g. "Frequency A".
func (f Field) Label() string { return f.info().label }

// ControlID is the identifier of the field's control, e.g. "ctrl-frequency-a".
func (f Field) ControlID() string { return "ctrl-" + f.Key() }

// Decimals is the number of fraction digits used for display.
func (f Field) Decimals() int { return f.info().decimals }

func (f Field) Domain() Domain { return f.info().domain }

func (f Field) String() string { return f.Key() }

func (f Field) Valid() bool {
	_, ok := fieldTable[f]
	return ok
}

// Validate checks v against the field's domain.
func (f Field) Validate(v float64) error {
	if !f.Valid() {
		return &ValidationError{Field: f, Input: Format(f, v), Wrapped: ErrUnknownField}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: f, Input: strconv.FormatFloat(v, 'g', -1, 64), Wrapped: ErrNonFinite}
	}
	if !f.Domain().Contains(v) {
		return &ValidationError{
			Field:   f,
			Input:   strconv.FormatFloat(v, 'g', -1, 64),
			Wrapped: fmt.Errorf("%w %s", ErrOutOfDomain, f.Domain()),
		}
	}
	return nil
}

// Parse converts user text into a validated value for f.
func (f Field) Parse(text string) (float64, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || s == "" {
		return 0, &ValidationError{Field: f, Input: text, Wrapped: ErrUnparsable}
	}
	if err := f.Validate(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseField resolves a key ("width-a") or control ID ("ctrl-width-a").
func ParseField(s string) (Field, error) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "ctrl-")
	for _, f := range Fields {
		if f.Key() == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Format renders v with the field's display precision.
func Format(f Field, v float64) string {
	return strconv.FormatFloat(v, 'f', f.Decimals(), 64)
}

// Label renders the live readout text, e.g. "Frequency A: 440.0".
func Label(f Field, v float64) string {
	return f.Label() + ": " + Format(f, v)
}
