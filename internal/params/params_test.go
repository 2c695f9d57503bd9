package params

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultsValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestFieldMetadata(t *testing.T) {
	tests := []struct {
		field    Field
		key      string
		control  string
		label    string
		decimals int
	}{
		{FrequencyA, "frequency-a", "ctrl-frequency-a", "Frequency A", 1},
		{FrequencyB, "frequency-b", "ctrl-frequency-b", "Frequency B", 1},
		{WidthA, "width-a", "ctrl-width-a", "Width A", 3},
		{WidthB, "width-b", "ctrl-width-b", "Width B", 3},
		{Resolution, "resolution", "ctrl-resolution", "Resolution", 2},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if tt.field.Key() != tt.key {
				t.Errorf("expected key %s, got %s", tt.key, tt.field.Key())
			}
			if tt.field.ControlID() != tt.control {
				t.Errorf("expected control %s, got %s", tt.control, tt.field.ControlID())
			}
			if tt.field.Label() != tt.label {
				t.Errorf("expected label %s, got %s", tt.label, tt.field.Label())
			}
			if tt.field.Decimals() != tt.decimals {
				t.Errorf("expected %d decimals, got %d", tt.decimals, tt.field.Decimals())
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := Label(FrequencyA, 440); got != "Frequency A: 440.0" {
		t.Errorf("got %q", got)
	}
	if got := Label(WidthA, 5); got != "Width A: 5.000" {
		t.Errorf("got %q", got)
	}
	if got := Label(FrequencyB, 26); got != "Frequency B: 26.0" {
		t.Errorf("got %q", got)
	}
}

func TestParseField(t *testing.T) {
	for _, s := range []string{"frequency-a", "ctrl-frequency-a", " CTRL-Frequency-A "} {
		f, err := ParseField(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if f != FrequencyA {
			t.Errorf("parse %q: expected frequency-a, got %s", s, f)
		}
	}

	if _, err := ParseField("ctrl-blend-mode"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value float64
		want  error
	}{
		{"positive frequency", FrequencyA, 440, nil},
		{"zero frequency", FrequencyA, 0, ErrOutOfDomain},
		{"negative width", WidthB, -1, ErrOutOfDomain},
		{"nan resolution", Resolution, math.NaN(), ErrNonFinite},
		{"inf width", WidthA, math.Inf(1), ErrNonFinite},
		{"negative angle", Angle, -45, nil},
		{"angle too large", Angle, 200, ErrOutOfDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Validate(tt.value)
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, verr.Field)
			}
		})
	}
}

func TestParse(t *testing.T) {
	v, err := WidthA.Parse(" 5 ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if v != 5 {
		t.Errorf("expected 5, got %f", v)
	}

	if _, err := WidthA.Parse("abc"); !errors.Is(err, ErrUnparsable) {
		t.Errorf("expected ErrUnparsable, got %v", err)
	}
	if _, err := WidthA.Parse(""); !errors.Is(err, ErrUnparsable) {
		t.Errorf("expected ErrUnparsable for empty input, got %v", err)
	}
	if _, err := WidthA.Parse("NaN"); !errors.Is(err, ErrNonFinite) {
		t.Errorf("expected ErrNonFinite, got %v", err)
	}
	if _, err := FrequencyA.Parse("-3"); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("expected ErrOutOfDomain, got %v", err)
	}
}

func TestParseBlendMode(t *testing.T) {
	tests := []struct {
		in   string
		want BlendMode
	}{
		{"0", BlendNormal},
		{"1", BlendAlternate},
		{"alternate", BlendAlternate},
		{"Difference", BlendDifference},
	}
	for _, tt := range tests {
		got, err := ParseBlendMode(tt.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parse %q: expected %s, got %s", tt.in, tt.want, got)
		}
	}

	if _, err := ParseBlendMode("9"); !errors.Is(err, ErrUnknownBlendMode) {
		t.Errorf("expected ErrUnknownBlendMode, got %v", err)
	}
}

func TestBlendModeNextWraps(t *testing.T) {
	if BlendDifference.Next() != BlendNormal {
		t.Errorf("expected wrap to normal, got %s", BlendDifference.Next())
	}
}

func TestWithGetRoundTrip(t *testing.T) {
	p := Defaults()
	for i, f := range Fields {
		v := float64(i + 1)
		p = p.With(f, v)
		if p.Get(f) != v {
			t.Errorf("%s: expected %f, got %f", f, v, p.Get(f))
		}
	}
}
