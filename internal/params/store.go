package params

import (
	"fmt"

	"github.com/san-kum/moire/internal/observable"
)

// Store owns the current Parameters of one simulator view.
type Store struct {
	value *observable.Value[Parameters]
}

// NewStore returns a store seeded with initial. Invalid initial values are
// replaced field by field with Defaults.
func NewStore(initial Parameters) *Store {
	return &Store{value: observable.NewComparable(sanitize(initial))}
}

func sanitize(p Parameters) Parameters {
	def := Defaults()
	for _, f := range Fields {
		if f.Validate(p.Get(f)) != nil {
			p = p.With(f, def.Get(f))
		}
	}
	if !p.BlendMode.Valid() {
		p.BlendMode = def.BlendMode
	}
	return p
}

func (s *Store) Snapshot() Parameters { return s.value.Get() }

func (s *Store) Get(f Field) float64 { return s.value.Get().Get(f) }

// Set validates v and stores it. Subscribers run before Set returns.
func (s *Store) Set(f Field, v float64) error {
	if err := f.Validate(v); err != nil {
		return err
	}
	s.value.Update(func(p Parameters) Parameters { return p.With(f, v) })
	return nil
}

func (s *Store) BlendMode() BlendMode { return s.value.Get().BlendMode }

func (s *Store) SetBlendMode(m BlendMode) error {
	if !m.Valid() {
		return &ValidationError{Input: m.Value(), Wrapped: fmt.Errorf("%w: %d", ErrUnknownBlendMode, int(m))}
	}
	s.value.Update(func(p Parameters) Parameters {
		p.BlendMode = m
		return p
	})
	return nil
}

func (s *Store) Animate() bool { return s.value.Get().Animate }

func (s *Store) SetAnimate(on bool) {
	s.value.Update(func(p Parameters) Parameters {
		p.Animate = on
		return p
	})
}

// Apply replaces every parameter at once, or nothing if p is invalid.
func (s *Store) Apply(p Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.value.Set(p)
	return nil
}

// Subscribe calls fn with the current parameters and after every change.
func (s *Store) Subscribe(fn func(Parameters)) func() {
	return s.value.Subscribe(fn)
}
