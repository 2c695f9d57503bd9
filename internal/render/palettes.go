package render

import (
	"image/color"
	"sort"
)

// Available palettes
var (
	PaletteMono = Palette{
		Name:  "mono",
		Paper: color.RGBA{10, 10, 10, 255},
		Ink:   color.RGBA{235, 235, 235, 255},
	}

	PalettePaper = Palette{
		Name:  "paper",
		Paper: color.RGBA{245, 242, 232, 255},
		Ink:   color.RGBA{20, 20, 28, 255},
	}

	PaletteCyber = Palette{
		Name:  "cyberpunk",
		Paper: color.RGBA{10, 10, 10, 255},
		Ink:   color.RGBA{255, 0, 255, 255},
	}

	PaletteRetro = Palette{
		Name:  "retro",
		Paper: color.RGBA{0, 17, 0, 255},
		Ink:   color.RGBA{0, 255, 0, 255},
	}

	PaletteOcean = Palette{
		Name:  "ocean",
		Paper: color.RGBA{0, 26, 51, 255},
		Ink:   color.RGBA{0, 212, 255, 255},
	}
)

var palettes = map[string]Palette{
	PaletteMono.Name:  PaletteMono,
	PalettePaper.Name: PalettePaper,
	PaletteCyber.Name: PaletteCyber,
	PaletteRetro.Name: PaletteRetro,
	PaletteOcean.Name: PaletteOcean,
}

// GetPalette returns the named palette, falling back to mono.
func GetPalette(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return PaletteMono
}

// PaletteNames lists palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
