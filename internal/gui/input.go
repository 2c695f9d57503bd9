package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/moire/internal/controls"
	"github.com/san-kum/moire/pkg/logging"
)

// input is one frame's worth of key presses.
type input struct {
	up, down, left, right bool
	shift                 bool
	enter, tab, esc       bool
	backspace             bool
	fullscreen, animate   bool
	quit                  bool
	chars                 []rune
}

func pollInput() input {
	in := input{
		up:         rl.IsKeyPressed(rl.KeyUp),
		down:       rl.IsKeyPressed(rl.KeyDown),
		left:       rl.IsKeyPressed(rl.KeyLeft),
		right:      rl.IsKeyPressed(rl.KeyRight),
		shift:      rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		enter:      rl.IsKeyPressed(rl.KeyEnter),
		tab:        rl.IsKeyPressed(rl.KeyTab),
		esc:        rl.IsKeyPressed(rl.KeyEscape),
		backspace:  rl.IsKeyPressed(rl.KeyBackspace),
		fullscreen: rl.IsKeyPressed(rl.KeyF),
		animate:    rl.IsKeyPressed(rl.KeySpace),
		quit:       rl.IsKeyPressed(rl.KeyQ),
	}
	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		in.chars = append(in.chars, r)
	}
	return in
}

func isNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-'
}

// handle applies one frame of input and reports whether to quit.
func (a *App) handle(in input) bool {
	if a.editing {
		a.handleEdit(in)
		return false
	}

	if in.quit {
		return true
	}
	if in.esc {
		a.shell.Escape()
		return false
	}
	if in.fullscreen {
		a.shell.Toggle()
		return false
	}
	if !a.shell.ControlsVisible() {
		return false
	}
	if in.animate {
		a.panel.SetAnimate(!a.store.Animate())
	}

	n := len(a.panel.Pairs()) + extraFocus
	if in.down || in.tab {
		a.focus = (a.focus + 1) % n
	}
	if in.up {
		a.focus = (a.focus - 1 + n) % n
	}

	step := 1
	if in.shift {
		step = 10
	}
	pair := a.focused()
	if pair == nil {
		if in.enter || ((in.left || in.right) && a.extra() == focusBlend) {
			a.activate()
		}
		return false
	}

	switch {
	case in.right:
		a.reject(pair, pair.Step(step))
	case in.left:
		a.reject(pair, pair.Step(-step))
	case in.enter:
		a.beginEdit([]rune(pair.NumberText()))
	case len(in.chars) > 0 && isNumberRune(in.chars[0]):
		a.beginEdit(nil)
		a.handleEdit(input{chars: in.chars})
	}
	return false
}

func (a *App) reject(pair *controls.Pair, err error) {
	if err != nil {
		logging.Warn("gui", "rejected %s: %v", pair.ID(), err)
		a.setStatus("%v", err)
	}
}

func (a *App) activate() {
	switch a.extra() {
	case focusBlend:
		_ = a.store.SetBlendMode(a.store.BlendMode().Next())
	case focusAnimate:
		a.panel.SetAnimate(!a.store.Animate())
	case focusFullscreen:
		a.shell.Toggle()
	}
}

func (a *App) beginEdit(text []rune) {
	a.editing = true
	a.draft = text
	a.status = ""
	a.focused().EditNumber(string(a.draft))
}

func (a *App) handleEdit(in input) {
	pair := a.focused()
	switch {
	case in.esc:
		a.editing = false
		pair.CancelEdit()
		return
	case in.enter, in.tab:
		a.editing = false
		pair.EditNumber(string(a.draft))
		a.reject(pair, pair.CommitNumber())
		return
	case in.backspace && len(a.draft) > 0:
		a.draft = a.draft[:len(a.draft)-1]
	}
	for _, r := range in.chars {
		if isNumberRune(r) || r == 'e' || r == 'E' || r == '+' {
			a.draft = append(a.draft, r)
		}
	}
	pair.EditNumber(string(a.draft))
}
