package params

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite indicates a NaN or infinite input.
	ErrNonFinite = errors.New("params: value is not finite")

	// ErrOutOfDomain indicates a value outside the field's valid domain.
	ErrOutOfDomain = errors.New("params: value out of domain")

	// ErrUnparsable indicates text that is not a number.
	ErrUnparsable = errors.New("params: value is not a number")

	// ErrUnknownField indicates an unrecognised field key or control ID.
	ErrUnknownField = errors.New("params: unknown field")

	// ErrUnknownBlendMode indicates a blend mode index or name with no mode.
	ErrUnknownBlendMode = errors.New("params: unknown blend mode")
)

// ValidationError reports a rejected edit of a single field.
type ValidationError struct {
	Field   Field
	Input   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	if !e.Field.Valid() {
		return fmt.Sprintf("%s (input %q)", e.Wrapped.Error(), e.Input)
	}
	return fmt.Sprintf("%s (%s=%q)", e.Wrapped.Error(), e.Field.Key(), e.Input)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}
