// Package render draws moiré interference patterns.
//
// A [Sampler] evaluates the pattern for one (parameters, time) pair:
//
//   - grating A: parallel lines, FrequencyA lines across the surface width
//   - grating B: same, rotated by Angle and drifting with Speed·t
//   - the two coverages are combined by the selected blend mode
//
// Output targets are an *image.RGBA ([Render]) and a Braille [Canvas]
// ([RenderCanvas]) for terminals. Sampling is deterministic and continuous
// in every numeric parameter.
package render
