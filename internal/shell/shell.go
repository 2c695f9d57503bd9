// Package shell holds the fullscreen state of a simulator view.
package shell

import "github.com/san-kum/moire/internal/observable"

// Mode is the view shell state.
type Mode int

const (
	Normal Mode = iota
	Fullscreen
)

func (m Mode) String() string {
	if m == Fullscreen {
		return "fullscreen"
	}
	return "normal"
}

// Shell toggles between Normal and Fullscreen. In Fullscreen the control
// panel is hidden; the canvas is always shown.
type Shell struct {
	mode *observable.Value[Mode]
}

func New() *Shell {
	return &Shell{mode: observable.NewComparable(Normal)}
}

func (s *Shell) Mode() Mode { return s.mode.Get() }

func (s *Shell) Fullscreen() bool { return s.mode.Get() == Fullscreen }

// Toggle flips between Normal and Fullscreen.
func (s *Shell) Toggle() Mode {
	next := Fullscreen
	if s.Fullscreen() {
		next = Normal
	}
	s.mode.Set(next)
	return next
}

// Escape leaves Fullscreen. It reports whether the key was consumed.
func (s *Shell) Escape() bool {
	return s.mode.Set(Normal)
}

func (s *Shell) ControlsVisible() bool { return !s.Fullscreen() }

func (s *Shell) CanvasVisible() bool { return true }

// Subscribe follows mode changes.
func (s *Shell) Subscribe(fn func(Mode)) func() {
	return s.mode.Subscribe(fn)
}
