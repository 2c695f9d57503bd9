package params

import (
	"errors"
	"fmt"
)

const (
	DefaultFrequencyA = 60.0
	DefaultFrequencyB = 64.0
	DefaultWidth      = 1.5
	DefaultResolution = 1.0
	DefaultAngle      = 4.0
	DefaultSpeed      = 0.5
)

// Parameters is one complete simulator configuration.
type Parameters struct {
	FrequencyA float64   `yaml:"frequency_a" json:"frequency_a"`
	FrequencyB float64   `yaml:"frequency_b" json:"frequency_b"`
	WidthA     float64   `yaml:"width_a" json:"width_a"`
	WidthB     float64   `yaml:"width_b" json:"width_b"`
	Resolution float64   `yaml:"resolution" json:"resolution"`
	Angle      float64   `yaml:"angle" json:"angle"`
	Speed      float64   `yaml:"speed" json:"speed"`
	BlendMode  BlendMode `yaml:"blend_mode" json:"blend_mode"`
	Animate    bool      `yaml:"animate" json:"animate"`
}

func Defaults() Parameters {
	return Parameters{
		FrequencyA: DefaultFrequencyA,
		FrequencyB: DefaultFrequencyB,
		WidthA:     DefaultWidth,
		WidthB:     DefaultWidth,
		Resolution: DefaultResolution,
		Angle:      DefaultAngle,
		Speed:      DefaultSpeed,
		BlendMode:  BlendNormal,
		Animate:    true,
	}
}

// Get returns the value of a numeric field. Unknown fields read as 0.
func (p Parameters) Get(f Field) float64 {
	switch f {
	case FrequencyA:
		return p.FrequencyA
	case FrequencyB:
		return p.FrequencyB
	case WidthA:
		return p.WidthA
	case WidthB:
		return p.WidthB
	case Resolution:
		return p.Resolution
	case Angle:
		return p.Angle
	case Speed:
		return p.Speed
	}
	return 0
}

// With returns a copy of p with f set to v. It does not validate.
func (p Parameters) With(f Field, v float64) Parameters {
	switch f {
	case FrequencyA:
		p.FrequencyA = v
	case FrequencyB:
		p.FrequencyB = v
	case WidthA:
		p.WidthA = v
	case WidthB:
		p.WidthB = v
	case Resolution:
		p.Resolution = v
	case Angle:
		p.Angle = v
	case Speed:
		p.Speed = v
	}
	return p
}

// Validate reports every out-of-domain field of p.
func (p Parameters) Validate() error {
	var errs []error
	for _, f := range Fields {
		if err := f.Validate(p.Get(f)); err != nil {
			errs = append(errs, err)
		}
	}
	if !p.BlendMode.Valid() {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownBlendMode, int(p.BlendMode)))
	}
	return errors.Join(errs...)
}
