package controls

import (
	"math"

	"github.com/san-kum/moire/internal/params"
)

// Range is the span and granularity of a range control.
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Fraction maps v onto [0, 1] within the range.
func (r Range) Fraction(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	return (r.Clamp(v) - r.Min) / (r.Max - r.Min)
}

func (r Range) Valid() bool {
	return r.Max > r.Min && r.Step > 0 && !math.IsNaN(r.Min) && !math.IsInf(r.Max, 0)
}

// DefaultRanges returns the stock control bounds for every field.
func DefaultRanges() map[params.Field]Range {
	return map[params.Field]Range{
		params.FrequencyA: {Min: 1, Max: 500, Step: 0.5},
		params.FrequencyB: {Min: 1, Max: 500, Step: 0.5},
		params.WidthA:     {Min: 0.1, Max: 12, Step: 0.05},
		params.WidthB:     {Min: 0.1, Max: 12, Step: 0.05},
		params.Resolution: {Min: 0.25, Max: 4, Step: 0.05},
		params.Angle:      {Min: -90, Max: 90, Step: 0.5},
		params.Speed:      {Min: 0.05, Max: 5, Step: 0.05},
	}
}

// Pair binds a range control and a number control to one field.
type Pair struct {
	field  params.Field
	bounds Range
	store  *params.Store

	value   float64
	text    string
	editing bool
}

func newPair(store *params.Store, f params.Field, bounds Range) *Pair {
	p := &Pair{field: f, bounds: bounds, store: store}
	p.sync(store.Get(f))
	return p
}

func (p *Pair) Field() params.Field { return p.field }

func (p *Pair) Bounds() Range { return p.bounds }

func (p *Pair) Store() *params.Store { return p.store }

// ID is the range control identifier, e.g. "ctrl-frequency-a".
func (p *Pair) ID() string { return p.field.ControlID() }

// Value is the last committed value.
func (p *Pair) Value() float64 { return p.value }

// RangeValue is the position shown by the range control.
func (p *Pair) RangeValue() float64 { return p.bounds.Clamp(p.value) }

// NumberText is what the number control currently displays, including an
// uncommitted draft while editing.
func (p *Pair) NumberText() string { return p.text }

func (p *Pair) Editing() bool { return p.editing }

// Label is the live readout, e.g. "Frequency A: 440.0".
func (p *Pair) Label() string { return params.Label(p.field, p.value) }

// SetRange handles a range input change.
func (p *Pair) SetRange(v float64) error {
	if math.IsNaN(v) {
		return &params.ValidationError{Field: p.field, Input: "NaN", Wrapped: params.ErrNonFinite}
	}
	return p.commit(p.bounds.Clamp(v))
}

// Step moves the range control by n steps.
func (p *Pair) Step(n int) error {
	v := p.RangeValue() + float64(n)*p.bounds.Step
	return p.SetRange(math.Round(v/p.bounds.Step) * p.bounds.Step)
}

// EditNumber replaces the number control's draft text without committing.
func (p *Pair) EditNumber(text string) {
	p.editing = true
	p.text = text
}

// CommitNumber handles blur or explicit commit of the number control.
// Unparsable or out-of-domain text is reverted to the last valid value and
// the rejection is returned for logging; the field is left unchanged.
func (p *Pair) CommitNumber() error {
	if !p.editing {
		return nil
	}
	v, err := p.field.Parse(p.text)
	if err != nil {
		p.revert()
		return err
	}
	return p.commit(p.bounds.Clamp(v))
}

// CancelEdit drops the draft and restores the committed display.
func (p *Pair) CancelEdit() {
	p.revert()
}

func (p *Pair) commit(v float64) error {
	p.editing = false
	if err := p.store.Set(p.field, v); err != nil {
		p.revert()
		return err
	}
	// The store skips notification for an unchanged value, so refresh the
	// display here as well.
	p.sync(p.store.Get(p.field))
	return nil
}

func (p *Pair) revert() {
	p.editing = false
	p.text = params.Format(p.field, p.value)
}

func (p *Pair) sync(v float64) {
	p.value = v
	if !p.editing {
		p.text = params.Format(p.field, v)
	}
}
