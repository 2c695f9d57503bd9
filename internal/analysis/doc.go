// Package analysis measures rendered moiré cross-sections.
//
// # Spectrum
//
// A cross-section through two overlaid gratings carries energy at each
// grating's line frequency and, depending on the blend mode, at their
// sum and difference. The difference term is the visible beat.
//
//	values := render.Profile(p, 0, 800, 600, 512)
//	peaks := analysis.Peaks(analysis.PowerSpectrum(values), 3)
//
// Bin k of the spectrum is k cycles across the sampled width, matching
// the units of the frequency parameters.
package analysis
