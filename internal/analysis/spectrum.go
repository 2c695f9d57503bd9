package analysis

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of each non-negative frequency bin of
// data with the mean removed, so bin 0 is always zero.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centred := make([]float64, len(data))
	for i, v := range data {
		centred[i] = v - mean
	}

	spectrum := fft.FFTReal(centred)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	ps[0] = 0
	return ps
}

// Peak is one spectrum bin.
type Peak struct {
	Bin   int
	Power float64
}

// Peaks returns the n strongest local maxima of ps, strongest first.
func Peaks(ps []float64, n int) []Peak {
	if n <= 0 {
		return nil
	}
	var out []Peak
	for i := 1; i < len(ps); i++ {
		left := ps[i-1]
		right := 0.0
		if i+1 < len(ps) {
			right = ps[i+1]
		}
		if ps[i] > left && ps[i] >= right && ps[i] > 1e-9 {
			out = append(out, Peak{Bin: i, Power: ps[i]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Power > out[j].Power })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Stats summarises a cross-section.
type Stats struct {
	Min, Max, Mean float64
	Contrast       float64
}

func Summarize(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range values {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
	}
	s.Mean = sum / float64(len(values))
	s.Contrast = s.Max - s.Min
	return s
}
