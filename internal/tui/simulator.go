package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/moire/internal/config"
	"github.com/san-kum/moire/internal/controls"
	"github.com/san-kum/moire/internal/params"
	"github.com/san-kum/moire/internal/portfolio"
	"github.com/san-kum/moire/internal/render"
	"github.com/san-kum/moire/internal/schedule"
	"github.com/san-kum/moire/internal/shell"
	"github.com/san-kum/moire/pkg/logging"
)

// Focus targets after the numeric pairs.
const (
	focusBlend = iota
	focusAnimate
	focusFullscreen
	extraFocus
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type simulator struct {
	project portfolio.Project
	store   *params.Store
	panel   *controls.Panel
	shell   *shell.Shell
	loop    *schedule.Loop
	push    func(schedule.Frame)

	focus int
	input textinput.Model

	canvas *render.Canvas
	phase  float64
	dirty  bool
	unsub  []func()
}

func newSimulator(p portfolio.Project, cfg *config.Config, loop *schedule.Loop, push func(schedule.Frame)) (*simulator, error) {
	ranges, err := cfg.Ranges()
	if err != nil {
		return nil, err
	}
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 16
	in.Width = 10

	s := &simulator{
		project: p,
		store:   params.NewStore(cfg.Parameters),
		shell:   shell.New(),
		loop:    loop,
		push:    push,
		input:   in,
		phase:   loop.Phase(),
		dirty:   true,
	}
	s.panel = controls.NewPanel(s.store, ranges)
	s.unsub = append(s.unsub,
		s.store.Subscribe(s.onParams),
		s.shell.Subscribe(func(shell.Mode) { s.dirty = true }),
	)
	return s, nil
}

// onParams redraws on every parameter change and runs the loop only while
// animation is on.
func (s *simulator) onParams(p params.Parameters) {
	s.dirty = true
	switch {
	case p.Animate && !s.loop.Running():
		s.loop.Start(s.push)
	case !p.Animate && s.loop.Running():
		s.loop.Stop()
		s.phase = s.loop.Phase()
	}
}

func (s *simulator) onFrame(f schedule.Frame) {
	s.phase = f.Phase
	s.dirty = true
}

func (s *simulator) close() {
	for _, u := range s.unsub {
		u()
	}
	s.unsub = nil
	s.panel.Close()
	s.loop.Stop()
}

func (s *simulator) editing() bool { return s.input.Focused() }

func (s *simulator) focusCount() int { return len(s.panel.Pairs()) + extraFocus }

// focused returns the pair under the cursor, or nil when the cursor is on
// one of the trailing controls.
func (s *simulator) focused() *controls.Pair {
	pairs := s.panel.Pairs()
	if s.focus < len(pairs) {
		return pairs[s.focus]
	}
	return nil
}

func (s *simulator) extra() int { return s.focus - len(s.panel.Pairs()) }

func (s *simulator) moveFocus(delta int) {
	n := s.focusCount()
	s.focus = ((s.focus+delta)%n + n) % n
}

func (s *simulator) beginEdit(text string) {
	pair := s.focused()
	if pair == nil {
		return
	}
	s.input.SetValue(text)
	s.input.CursorEnd()
	s.input.Focus()
	pair.EditNumber(text)
}

func (s *simulator) commitEdit() error {
	pair := s.focused()
	s.input.Blur()
	if pair == nil {
		return nil
	}
	pair.EditNumber(s.input.Value())
	return pair.CommitNumber()
}

func (s *simulator) cancelEdit() {
	s.input.Blur()
	if pair := s.focused(); pair != nil {
		pair.CancelEdit()
	}
}

// activate is enter or space on a non-numeric control.
func (s *simulator) activate() {
	switch s.extra() {
	case focusBlend:
		_ = s.store.SetBlendMode(s.store.BlendMode().Next())
	case focusAnimate:
		s.panel.SetAnimate(!s.store.Animate())
	case focusFullscreen:
		s.shell.Toggle()
	}
}

// command renders the current parameters as a reproducible CLI invocation.
func (s *simulator) command() string {
	snap := s.store.Snapshot()
	parts := []string{"moire render"}
	for _, f := range params.Fields {
		parts = append(parts, fmt.Sprintf("--set %s=%s", f.ControlID(), params.Format(f, snap.Get(f))))
	}
	parts = append(parts, "--set ctrl-blend-mode="+snap.BlendMode.String())
	return strings.Join(parts, " ")
}

func isNumberKey(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

func (m *Model) simKey(msg tea.KeyMsg) tea.Cmd {
	s := m.sim

	if s.editing() {
		switch {
		case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Tab):
			if err := s.commitEdit(); err != nil {
				logging.Warn("tui", "rejected %s: %v", s.focused().ID(), err)
				return m.setStatus(err.Error())
			}
			return nil
		case key.Matches(msg, m.keys.Esc):
			s.cancelEdit()
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.focused().EditNumber(s.input.Value())
		return cmd
	}

	pair := s.focused()
	switch {
	case key.Matches(msg, m.keys.Esc):
		s.shell.Escape()
	case key.Matches(msg, m.keys.Fullscreen):
		s.shell.Toggle()
	case key.Matches(msg, m.keys.Back):
		if err := m.navigate("/?instant=1"); err != nil {
			return m.setStatus(err.Error())
		}
		return tea.ClearScreen
	case !s.shell.ControlsVisible():
		// Only the canvas is on screen.
	case key.Matches(msg, m.keys.Up):
		s.moveFocus(-1)
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Tab):
		s.moveFocus(1)
	case key.Matches(msg, m.keys.Animate):
		s.panel.SetAnimate(!s.store.Animate())
	case key.Matches(msg, m.keys.Source):
		if len(m.code.Files()) > 0 {
			m.code.SetCodeViewerOpen(true)
		}
	case key.Matches(msg, m.keys.Copy):
		cmd := s.command()
		if err := copyToClipboard(cmd); err != nil {
			logging.Warn("tui", "clipboard: %v", err)
			return m.setStatus("clipboard unavailable")
		}
		return m.setStatus("copied render command")
	case pair != nil && key.Matches(msg, m.keys.Left):
		return m.stepPair(pair, -1)
	case pair != nil && key.Matches(msg, m.keys.Right):
		return m.stepPair(pair, 1)
	case pair != nil && key.Matches(msg, m.keys.BigLeft):
		return m.stepPair(pair, -10)
	case pair != nil && key.Matches(msg, m.keys.BigRight):
		return m.stepPair(pair, 10)
	case pair != nil && key.Matches(msg, m.keys.Enter):
		s.beginEdit(pair.NumberText())
	case pair != nil && isNumberKey(msg.String()):
		s.beginEdit(msg.String())
	case pair == nil && key.Matches(msg, m.keys.Enter):
		s.activate()
	case pair == nil && (key.Matches(msg, m.keys.Left) || key.Matches(msg, m.keys.Right)):
		if s.extra() == focusBlend {
			s.activate()
		}
	}
	return nil
}

func (m *Model) stepPair(p *controls.Pair, n int) tea.Cmd {
	if err := p.Step(n); err != nil {
		return m.setStatus(err.Error())
	}
	return nil
}

// canvasSize picks the Braille canvas size in cells for the current mode.
func (m *Model) canvasSize() (int, int) {
	if m.sim.shell.Fullscreen() {
		return max(8, m.width-2), max(4, m.height-2)
	}
	rows := len(m.sim.panel.Pairs()) + extraFocus + 10
	return max(8, m.width-6), max(4, m.height-rows)
}

func (m *Model) drawCanvas() string {
	s := m.sim
	w, h := m.canvasSize()
	if s.canvas == nil || s.canvas.Width != w || s.canvas.Height != h {
		s.canvas = render.NewCanvas(w, h)
		s.dirty = true
	}
	if s.dirty {
		render.RenderCanvas(s.canvas, s.store.Snapshot(), s.phase)
		s.dirty = false
	}
	return m.theme.canvasStyle().Render(s.canvas.String())
}

func (m *Model) viewSim() string {
	s := m.sim
	if m.code.IsOpen() {
		return m.viewCode()
	}
	if s.shell.Fullscreen() {
		return m.drawCanvas() + "\n" + dimmer.Render(" esc exit fullscreen")
	}

	var b strings.Builder
	b.WriteString("\n  " + magenta.Render(s.project.Eyebrow) + dim.Render("  "+s.project.Summary) + "\n\n")
	b.WriteString(m.theme.panelStyle().Render(m.drawCanvas()) + "\n\n")

	for i, pair := range s.panel.Pairs() {
		b.WriteString(m.pairRow(i, pair) + "\n")
	}
	b.WriteString(m.extraRow(focusBlend, "Blend", yellow.Render(s.store.BlendMode().Label())) + "\n")
	check := "[ ]"
	if s.store.Animate() {
		check = green.Render("[x]")
	}
	b.WriteString(m.extraRow(focusAnimate, "Animate", check) + "\n")
	b.WriteString(m.extraRow(focusFullscreen, "Fullscreen", dim.Render("[ f ]")) + "\n\n")

	footer := m.help.ShortHelpView(m.keys.simHelp())
	if m.code.UseInlineTrigger() && len(m.code.Files()) > 0 {
		footer += dimmer.Render(fmt.Sprintf("  · %d source files", len(m.code.Files())))
	}
	b.WriteString("  " + footer + "\n")
	if m.status != "" {
		b.WriteString("  " + red.Render(m.status) + "\n")
	}
	return b.String()
}

const sliderWidth = 24

func slider(fraction float64) string {
	pos := int(fraction * float64(sliderWidth-1))
	return dimmer.Render(strings.Repeat("─", pos)) + cyan.Render("●") + dimmer.Render(strings.Repeat("─", sliderWidth-1-pos))
}

func (m *Model) pairRow(i int, p *controls.Pair) string {
	cursor := "  "
	label := dim.Render(fmt.Sprintf("%-22s", p.Label()))
	if i == m.sim.focus {
		cursor = cyan.Render("▸ ")
		label = white.Render(fmt.Sprintf("%-22s", p.Label()))
	}
	number := dim.Render(fmt.Sprintf("%10s", p.NumberText()))
	if i == m.sim.focus && m.sim.editing() {
		number = lipgloss.NewStyle().Foreground(m.theme.Accent).Render(m.sim.input.View())
	}
	return "  " + cursor + label + " " + slider(p.Bounds().Fraction(p.RangeValue())) + " " + number
}

func (m *Model) extraRow(which int, label, value string) string {
	cursor := "  "
	text := dim.Render(fmt.Sprintf("%-22s", label))
	if m.sim.extra() == which {
		cursor = cyan.Render("▸ ")
		text = white.Render(fmt.Sprintf("%-22s", label))
	}
	return "  " + cursor + text + " " + value
}
