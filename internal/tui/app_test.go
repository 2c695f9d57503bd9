package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/san-kum/moire/internal/config"
	"github.com/san-kum/moire/internal/params"
	"github.com/san-kum/moire/internal/portfolio"
	"github.com/san-kum/moire/internal/schedule"
)

func newTestModel(t *testing.T, path string) (*Model, *testingclock.FakeClock) {
	t.Helper()
	fc := testingclock.NewFakeClock(time.Unix(1700000000, 0))
	m, err := New(Options{Config: config.DefaultConfig(), Clock: fc, Path: path})
	require.NoError(t, err)
	t.Cleanup(m.close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, fc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		press(m, runes(string(r)))
	}
}

func focusField(t *testing.T, m *Model, f params.Field) {
	t.Helper()
	for i, p := range m.sim.panel.Pairs() {
		if p.Field() == f {
			m.sim.focus = i
			return
		}
	}
	t.Fatalf("no pair for %s", f)
}

func TestHomeListsProjects(t *testing.T) {
	m, _ := newTestModel(t, "/?instant=1")

	view := m.View()
	assert.Contains(t, view, portfolio.Whoami.Name)
	assert.Contains(t, view, portfolio.MoireSlug)
	assert.Contains(t, view, "/projects/moire-simulator")
	assert.Nil(t, m.sim)
}

func TestHomeIntroRevealsThenSkips(t *testing.T) {
	m, _ := newTestModel(t, "/")

	assert.NotContains(t, m.View(), "projects")
	m.Update(introTickMsg{})
	assert.Equal(t, introText[:1], m.intro.Visible())

	press(m, runes("x"))
	assert.True(t, m.intro.Done())
	assert.Contains(t, m.View(), "projects")
}

func TestOpenProjectCard(t *testing.T) {
	m, _ := newTestModel(t, "/?instant=1")

	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.sim)
	assert.Equal(t, "/projects/moire-simulator", m.Route().Path())
	assert.Equal(t, "Moiré Simulator", m.Eyebrow())
	assert.Contains(t, m.View(), "Moiré Simulator")
	assert.NotEmpty(t, m.code.Files())

	press(m, runes("b"))
	assert.Nil(t, m.sim)
	assert.Equal(t, portfolio.PageHome, m.Route().Kind)
	assert.Empty(t, m.code.Files())
}

func TestUnknownPath(t *testing.T) {
	_, err := New(Options{Config: config.DefaultConfig(), Path: "/projects/nope"})
	assert.ErrorIs(t, err, portfolio.ErrNotFound)
}

func TestRangeThenTypedFrequency(t *testing.T) {
	m, _ := newTestModel(t, "/projects/moire-simulator")
	focusField(t, m, params.FrequencyA)
	pair := m.sim.panel.Pair(params.FrequencyA)

	require.NoError(t, pair.SetRange(118))
	assert.Equal(t, "Frequency A: 118.0", pair.Label())

	typeText(m, "440")
	assert.True(t, m.sim.editing())
	assert.Equal(t, "440", pair.NumberText())

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.sim.editing())
	assert.Equal(t, "Frequency A: 440.0", pair.Label())
	assert.Equal(t, 440.0, m.sim.store.Get(params.FrequencyA))
	assert.Equal(t, 440.0, pair.RangeValue())
	assert.Contains(t, m.View(), "Frequency A: 440.0")
}

func TestTypedWidth(t *testing.T) {
	m, _ := newTestModel(t, "/projects/moire-simulator")
	focusField(t, m, params.WidthA)

	typeText(m, "5")
	press(m, tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, "Width A: 5.000", m.sim.panel.Pair(params.WidthA).Label())
	assert.Equal(t, 5.0, m.sim.store.Get(params.WidthA))
}

func TestInvalidNumberReverts(t *testing.T) {
	m, _ := newTestModel(t, "/projects/moire-simulator")
	focusField(t, m, params.FrequencyA)
	pair := m.sim.panel.Pair(params.FrequencyA)

	typeText(m, "-5")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Frequency A: 60.0", pair.Label())
	assert.Equal(t, "60.0", pair.NumberText())
	assert.NotEmpty(t, m.status)
}

func TestEscapeCancelsEdit(t *testing.T) {
	m, _ := newTestModel(t, "/projects/moire-simulator")
	focusField(t, m, params.FrequencyB)

	typeText(m, "9")
	press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.sim.editing())
	assert.Equal(t, "Frequency B: 64.0", m.sim.panel.Pair(params.FrequencyB).Label())
}

func TestArrowStep(t *testing.T) {
	m, _ := newTestModel(t, "/projects/moire-simulator")
	focusField(t, m, params.FrequencyA)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 60.5, m.sim.store.Get(params.FrequencyA))

	press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 59.5, m.sim.store.Get(params.FrequencyA))
}

func TestFullscreenToggle(t *testing.T) {
	m, _ := newTestModel(t, "/projects/moire-simulator")
	assert.Contains(t, m.View(), "Frequency A")

	press(m, runes("f"))
	assert.True(t, m.sim.shell.Fullscreen())
	assert.NotContains(t, m.View(), "Frequency A")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.sim.shell.Fullscreen())
	assert.Contains(t, m.View(), "Frequency A")

	// Esc outside fullscreen changes nothing.
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.sim.shell.Fullscreen())
}

func TestBlendAndAnimateControls(t *testing.T) {
	m, _ := newTestModel(t, "/projects/moire-simulator")
	m.sim.focus = len(m.sim.panel.Pairs()) + focusBlend

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, params.BlendAlternate, m.sim.store.BlendMode())

	assert.True(t, m.sim.loop.Running())
	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.sim.store.Animate())
	assert.False(t, m.sim.loop.Running())

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.sim.loop.Running())
}

func TestFramesAdvancePhaseAndStaleFramesDrop(t *testing.T) {
	m, fc := newTestModel(t, "/projects/moire-simulator")
	require.Eventually(t, fc.HasWaiters, time.Second, time.Millisecond)

	fc.Step(m.loop.Interval())
	var f schedule.Frame
	select {
	case f = <-m.frames:
	case <-time.After(time.Second):
		t.Fatal("no frame")
	}
	m.Update(frameMsg(f))
	assert.Greater(t, m.sim.phase, 0.0)

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	before := m.sim.phase
	stale := f
	stale.Phase = before + 10
	m.Update(frameMsg(stale))
	assert.Equal(t, before, m.sim.phase)
}

func TestCopyRenderCommand(t *testing.T) {
	m, _ := newTestModel(t, "/projects/moire-simulator")
	var got string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { got = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	press(m, runes("y"))

	assert.Contains(t, got, "moire render")
	assert.Contains(t, got, "--set ctrl-frequency-a=60.0")
	assert.Contains(t, got, "--set ctrl-blend-mode=normal")
	assert.Equal(t, "copied render command", m.status)
}

func TestCodeViewer(t *testing.T) {
	m, _ := newTestModel(t, "/projects/moire-simulator")

	press(m, runes("v"))
	assert.True(t, m.code.IsOpen())
	assert.Contains(t, m.View(), "internal/render/moire.go")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.code.IsOpen())
}
