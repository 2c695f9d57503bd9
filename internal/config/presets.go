package config

import (
	"sort"

	"github.com/san-kum/moire/internal/params"
)

func preset(edit func(p *params.Parameters)) params.Parameters {
	p := params.Defaults()
	edit(&p)
	return p
}

var Presets = map[string]params.Parameters{
	"default": params.Defaults(),
	"fine": preset(func(p *params.Parameters) {
		p.FrequencyA, p.FrequencyB = 240, 246
		p.WidthA, p.WidthB = 0.8, 0.8
		p.Angle = 1.5
	}),
	"coarse": preset(func(p *params.Parameters) {
		p.FrequencyA, p.FrequencyB = 24, 26
		p.WidthA, p.WidthB = 6, 6
		p.Angle = 0
	}),
	"beat": preset(func(p *params.Parameters) {
		p.FrequencyA, p.FrequencyB = 118, 26
		p.Resolution = 1.25
		p.Angle = 0
	}),
	"rotation": preset(func(p *params.Parameters) {
		p.FrequencyA, p.FrequencyB = 80, 80
		p.Angle = 12
		p.Speed = 0.25
	}),
	"xor": preset(func(p *params.Parameters) {
		p.FrequencyA, p.FrequencyB = 64, 70
		p.WidthA, p.WidthB = 3, 3
		p.BlendMode = params.BlendAlternate
		p.Animate = false
	}),
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) *params.Parameters {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
