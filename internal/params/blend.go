package params

import (
	"fmt"
	"strconv"
	"strings"
)

// BlendMode selects how the two gratings are combined into one pixel.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendAlternate
	BlendMultiply
	BlendDifference
)

// BlendModes lists every mode in option order.
var BlendModes = []BlendMode{BlendNormal, BlendAlternate, BlendMultiply, BlendDifference}

var blendNames = map[BlendMode]string{
	BlendNormal:     "normal",
	BlendAlternate:  "alternate",
	BlendMultiply:   "multiply",
	BlendDifference: "difference",
}

func (b BlendMode) String() string {
	if n, ok := blendNames[b]; ok {
		return n
	}
	return "unknown"
}

// Label is the option text shown in the blend selector.
func (b BlendMode) Label() string {
	switch b {
	case BlendNormal:
		return "Normal"
	case BlendAlternate:
		return "Alternate (XOR)"
	case BlendMultiply:
		return "Multiply"
	case BlendDifference:
		return "Difference"
	}
	return "Unknown"
}

// Value is the numeric option value, e.g. "1".
func (b BlendMode) Value() string { return strconv.Itoa(int(b)) }

func (b BlendMode) Valid() bool {
	_, ok := blendNames[b]
	return ok
}

// Next cycles to the following mode, wrapping around.
func (b BlendMode) Next() BlendMode {
	return BlendMode((int(b) + 1) % len(BlendModes))
}

// ParseBlendMode accepts an option value ("1") or a name ("alternate").
func ParseBlendMode(s string) (BlendMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if m := BlendMode(n); m.Valid() {
			return m, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownBlendMode, s)
	}
	for m, name := range blendNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBlendMode, s)
}

func (b BlendMode) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBlendMode, int(b))
	}
	return []byte(b.String()), nil
}

func (b *BlendMode) UnmarshalText(text []byte) error {
	m, err := ParseBlendMode(string(text))
	if err != nil {
		return err
	}
	*b = m
	return nil
}
