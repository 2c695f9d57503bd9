package render

import (
	"image"
	"image/color"
	"math"

	"github.com/san-kum/moire/internal/params"
)

// Sampler evaluates the pattern for fixed parameters, time and surface.
type Sampler struct {
	p      params.Parameters
	w, h   float64
	cx, cy float64

	// unit normals of the two gratings
	ax, ay float64
	bx, by float64

	periodA, periodB float64
	halfA, halfB     float64
	phaseB           float64
}

// NewSampler prepares a sampler for a w×h surface at time t (seconds).
func NewSampler(p params.Parameters, t float64, w, h int) *Sampler {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	res := p.Resolution
	if res <= 0 {
		res = params.DefaultResolution
	}
	rot := p.Angle * math.Pi / 180 / 2
	s := &Sampler{
		p:  p,
		w:  float64(w),
		h:  float64(h),
		cx: float64(w) / 2,
		cy: float64(h) / 2,
		ax: math.Cos(-rot),
		ay: math.Sin(-rot),
		bx: math.Cos(rot),
		by: math.Sin(rot),
	}
	s.periodA = s.w / math.Max(p.FrequencyA, 1e-9)
	s.periodB = s.w / math.Max(p.FrequencyB, 1e-9)
	s.halfA = p.WidthA / res / 2
	s.halfB = p.WidthB / res / 2
	s.phaseB = p.Speed * t
	return s
}

// At returns ink coverage in [0, 1] for the pixel centred at (x+0.5, y+0.5).
func (s *Sampler) At(x, y int) float64 {
	dx := float64(x) + 0.5 - s.cx
	dy := float64(y) + 0.5 - s.cy

	a := grating(dx*s.ax+dy*s.ay, s.periodA, s.halfA, 0)
	b := grating(dx*s.bx+dy*s.by, s.periodB, s.halfB, s.phaseB)
	return Blend(s.p.BlendMode, a, b)
}

// grating is the coverage of a line grid at signed distance d along its
// normal. Line edges are antialiased over one pixel.
func grating(d, period, half, phase float64) float64 {
	m := d/period + phase
	dist := math.Abs(m-math.Round(m)) * period
	return 1 - smoothstep(half-0.5, half+0.5, dist)
}

func smoothstep(e0, e1, x float64) float64 {
	t := (x - e0) / (e1 - e0)
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// Blend combines two coverages.
func Blend(mode params.BlendMode, a, b float64) float64 {
	switch mode {
	case params.BlendAlternate:
		return a + b - 2*a*b
	case params.BlendMultiply:
		return a * b
	case params.BlendDifference:
		return math.Abs(a - b)
	default:
		return (a + b) / 2
	}
}

// Sample is a convenience for a single pixel.
func Sample(p params.Parameters, t float64, w, h, x, y int) float64 {
	return NewSampler(p, t, w, h).At(x, y)
}

// Render fills dst with the pattern using pal.
func Render(dst *image.RGBA, p params.Parameters, t float64, pal Palette) {
	b := dst.Bounds()
	s := NewSampler(p, t, b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(b.Min.X+x, b.Min.Y+y, pal.At(s.At(x, y)))
		}
	}
}

// Image allocates and renders a w×h frame.
func Image(p params.Parameters, t float64, w, h int, pal Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Render(img, p, t, pal)
	return img
}

// bayer4 is a 4x4 ordered-dither threshold matrix.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// RenderCanvas dithers the pattern onto a Braille canvas.
func RenderCanvas(c *Canvas, p params.Parameters, t float64) {
	c.Clear()
	w, h := c.DotsWide(), c.DotsHigh()
	s := NewSampler(p, t, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.At(x, y) > (bayer4[y%4][x%4]+0.5)/16 {
				c.Set(x, y)
			}
		}
	}
}

// Profile samples n points along the horizontal centre line of a w×h
// surface.
func Profile(p params.Parameters, t float64, w, h, n int) []float64 {
	if n < 1 {
		return nil
	}
	s := NewSampler(p, t, w, h)
	out := make([]float64, n)
	for i := range out {
		x := i * w / n
		out[i] = s.At(x, h/2)
	}
	return out
}

// Palette maps coverage to colour.
type Palette struct {
	Name  string
	Paper color.RGBA
	Ink   color.RGBA
}

// At linearly interpolates between Paper (0) and Ink (1).
func (pal Palette) At(v float64) color.RGBA {
	v = math.Max(0, math.Min(1, v))
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*v))
	}
	return color.RGBA{
		R: lerp(pal.Paper.R, pal.Ink.R),
		G: lerp(pal.Paper.G, pal.Ink.G),
		B: lerp(pal.Paper.B, pal.Ink.B),
		A: 255,
	}
}
