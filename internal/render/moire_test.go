package render

import (
	"math"
	"testing"

	"github.com/san-kum/moire/internal/params"
)

func maxDiff(a, b params.Parameters, ta, tb float64, w, h int) float64 {
	sa := NewSampler(a, ta, w, h)
	sb := NewSampler(b, tb, w, h)
	worst := 0.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			worst = math.Max(worst, math.Abs(sa.At(x, y)-sb.At(x, y)))
		}
	}
	return worst
}

func TestDeterministic(t *testing.T) {
	p := params.Defaults()
	if d := maxDiff(p, p, 1.25, 1.25, 64, 48); d != 0 {
		t.Errorf("same inputs produced different output (max diff %g)", d)
	}
}

func TestContinuousInParameters(t *testing.T) {
	base := params.Defaults()
	base.FrequencyA = 118
	base.FrequencyB = 26

	tests := []struct {
		name  string
		field params.Field
		delta float64
	}{
		{"frequency a", params.FrequencyA, 1e-4},
		{"frequency b", params.FrequencyB, 1e-4},
		{"width a", params.WidthA, 1e-4},
		{"width b", params.WidthB, 1e-4},
		{"resolution", params.Resolution, 1e-5},
		{"angle", params.Angle, 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := base.With(tt.field, base.Get(tt.field)+tt.delta)
			if d := maxDiff(base, next, 0, 0, 64, 64); d > 0.01 {
				t.Errorf("small change produced jump of %g", d)
			}
		})
	}
}

func TestContinuousInTime(t *testing.T) {
	p := params.Defaults()
	if d := maxDiff(p, p, 2.0, 2.0001, 64, 64); d > 0.01 {
		t.Errorf("small time step produced jump of %g", d)
	}
}

func TestTimeMovesPattern(t *testing.T) {
	p := params.Defaults()
	if d := maxDiff(p, p, 0, 0.5, 64, 64); d == 0 {
		t.Error("expected animation to change the frame")
	}
}

func TestCoverageInRange(t *testing.T) {
	for _, mode := range params.BlendModes {
		p := params.Defaults()
		p.BlendMode = mode
		s := NewSampler(p, 0.3, 40, 30)
		for y := 0; y < 30; y++ {
			for x := 0; x < 40; x++ {
				v := s.At(x, y)
				if v < 0 || v > 1 || math.IsNaN(v) {
					t.Fatalf("%s: coverage %g out of [0,1] at (%d,%d)", mode, v, x, y)
				}
			}
		}
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		mode    params.BlendMode
		a, b    float64
		want    float64
	}{
		{params.BlendNormal, 1, 0, 0.5},
		{params.BlendNormal, 1, 1, 1},
		{params.BlendAlternate, 1, 1, 0},
		{params.BlendAlternate, 1, 0, 1},
		{params.BlendAlternate, 0, 0, 0},
		{params.BlendMultiply, 1, 0.5, 0.5},
		{params.BlendDifference, 0.25, 1, 0.75},
	}

	for _, tt := range tests {
		got := Blend(tt.mode, tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s(%g, %g): expected %g, got %g", tt.mode, tt.a, tt.b, tt.want, got)
		}
	}
}

func TestBlendModesDiffer(t *testing.T) {
	normal := params.Defaults()
	alt := normal
	alt.BlendMode = params.BlendAlternate

	if d := maxDiff(normal, alt, 0, 0, 64, 64); d == 0 {
		t.Error("normal and alternate blend should differ")
	}
}

func TestWideLinesSaturate(t *testing.T) {
	p := params.Defaults()
	p.FrequencyA = 440
	p.FrequencyB = 440
	p.WidthA = 5
	p.WidthB = 5
	p.BlendMode = params.BlendMultiply

	s := NewSampler(p, 0, 100, 10)
	for x := 0; x < 100; x++ {
		if v := s.At(x, 5); v < 0.999 {
			t.Fatalf("expected full coverage when lines overlap their period, got %g at x=%d", v, x)
		}
	}
}

func TestRenderImage(t *testing.T) {
	img := Image(params.Defaults(), 0, 32, 16, PalettePaper)

	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	for _, px := range []int{0, 5, 17, 31} {
		c := img.RGBAAt(px, 8)
		if c.A != 255 {
			t.Errorf("expected opaque pixel, got alpha %d", c.A)
		}
	}
}

func TestRenderCanvas(t *testing.T) {
	c := NewCanvas(20, 6)
	p := params.Defaults()
	p.WidthA = 3
	p.FrequencyA = 10

	RenderCanvas(c, p, 0)

	raised := 0
	for y := 0; y < c.DotsHigh(); y++ {
		for x := 0; x < c.DotsWide(); x++ {
			if c.Dot(x, y) {
				raised++
			}
		}
	}
	total := c.DotsWide() * c.DotsHigh()
	if raised == 0 || raised == total {
		t.Errorf("expected a dithered mix of dots, got %d/%d raised", raised, total)
	}
}

func TestProfile(t *testing.T) {
	p := params.Defaults()
	prof := Profile(p, 0, 200, 50, 100)

	if len(prof) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(prof))
	}
	lo, hi := 1.0, 0.0
	for _, v := range prof {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 0.1 {
		t.Errorf("profile is flat: [%g, %g]", lo, hi)
	}
	if Profile(p, 0, 200, 50, 0) != nil {
		t.Error("expected nil for zero samples")
	}
}

func TestPaletteEndpoints(t *testing.T) {
	pal := PaletteOcean
	if pal.At(0) != pal.Paper {
		t.Errorf("expected paper at 0, got %v", pal.At(0))
	}
	if pal.At(1) != pal.Ink {
		t.Errorf("expected ink at 1, got %v", pal.At(1))
	}
	if pal.At(2) != pal.Ink {
		t.Error("coverage above 1 should clamp")
	}
	if GetPalette("nope").Name != "mono" {
		t.Error("unknown palette should fall back to mono")
	}
}
