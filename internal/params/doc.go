// Package params defines the moiré simulation parameters, their domains
// and the [Store] that owns the current values.
//
// Numeric parameters are addressed by [Field]. Each field knows its
// label, control ID, display precision and valid domain:
//
//	s := params.NewStore(params.Defaults())
//	unsub := s.Subscribe(func(p params.Parameters) { ... })
//	err := s.Set(params.FrequencyA, 440)
//
// # Validation
//
// Set rejects NaN, ±Inf and out-of-domain values with a *[ValidationError]
// and leaves the store untouched. Setting a field to its current value
// notifies nobody.
package params
