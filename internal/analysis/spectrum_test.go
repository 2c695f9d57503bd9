package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/moire/internal/params"
	"github.com/san-kum/moire/internal/render"
)

func TestPowerSpectrumSine(t *testing.T) {
	n := 128
	data := make([]float64, n)
	for i := range data {
		data[i] = 3 + math.Sin(2*math.Pi*5*float64(i)/float64(n))
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2+1 {
		t.Fatalf("expected %d bins, got %d", n/2+1, len(ps))
	}
	if ps[0] != 0 {
		t.Errorf("expected mean removed, got %f", ps[0])
	}

	peaks := Peaks(ps, 1)
	if len(peaks) != 1 || peaks[0].Bin != 5 {
		t.Errorf("expected peak at bin 5, got %v", peaks)
	}
}

func TestPeaksOfRenderedGrating(t *testing.T) {
	p := params.Defaults()
	p.FrequencyA, p.FrequencyB = 8, 8
	p.WidthA, p.WidthB = 12, 12
	p.Angle = 0

	values := render.Profile(p, 0, 256, 64, 256)
	peaks := Peaks(PowerSpectrum(values), 1)
	if len(peaks) == 0 || peaks[0].Bin != 8 {
		t.Errorf("expected dominant bin 8, got %v", peaks)
	}
}

func TestPeaksFlat(t *testing.T) {
	if peaks := Peaks(PowerSpectrum([]float64{1, 1, 1, 1}), 3); len(peaks) != 0 {
		t.Errorf("expected no peaks, got %v", peaks)
	}
	if ps := PowerSpectrum(nil); ps != nil {
		t.Errorf("expected nil, got %v", ps)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{0, 0.5, 1})
	if s.Min != 0 || s.Max != 1 || s.Mean != 0.5 || s.Contrast != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
	if (Summarize(nil) != Stats{}) {
		t.Error("expected zero stats for empty input")
	}
}

func TestPeaksNonPositiveCount(t *testing.T) {
	ps := PowerSpectrum([]float64{0, 1, 0, 1, 0, 1, 0, 1})
	for _, n := range []int{0, -1} {
		if got := Peaks(ps, n); got != nil {
			t.Errorf("Peaks(ps, %d) = %v, want nil", n, got)
		}
	}
}
