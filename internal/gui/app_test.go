package gui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/san-kum/moire/internal/config"
	"github.com/san-kum/moire/internal/params"
	"github.com/san-kum/moire/pkg/logging"
)

func newTestApp(t *testing.T) (*App, *testingclock.FakeClock) {
	t.Helper()
	fc := testingclock.NewFakeClock(time.Unix(1700000000, 0))
	a, err := NewApp(config.DefaultConfig(), fc)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, fc
}

func typed(s string) input { return input{chars: []rune(s)} }

func TestTypedNumberCommits(t *testing.T) {
	a, _ := newTestApp(t)

	a.handle(typed("4"))
	a.handle(typed("40"))
	assert.True(t, a.editing)
	assert.Equal(t, "440", a.focused().NumberText())

	a.handle(input{enter: true})
	assert.False(t, a.editing)
	assert.Equal(t, "Frequency A: 440.0", a.focused().Label())
	assert.Equal(t, 440.0, a.store.Get(params.FrequencyA))
}

func TestBackspaceAndRejectedInput(t *testing.T) {
	a, _ := newTestApp(t)

	a.handle(typed("09"))
	a.handle(input{backspace: true})
	assert.Equal(t, "0", string(a.draft))

	a.handle(input{enter: true})
	assert.Equal(t, 60.0, a.store.Get(params.FrequencyA))
	assert.NotEmpty(t, a.status)
}

func TestRejectedCommitLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	logging.InitForCLI(logging.LevelWarn, &buf)
	t.Cleanup(func() { logging.InitForCLI(logging.LevelInfo, &bytes.Buffer{}) })

	a, _ := newTestApp(t)
	id := a.focused().ID()

	a.handle(typed("0"))
	a.handle(input{enter: true})

	assert.Equal(t, 60.0, a.store.Get(params.FrequencyA))
	assert.NotEmpty(t, a.status)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "subsystem=gui")
	assert.Contains(t, out, "rejected "+id)
}

func TestArrowStepsWithShift(t *testing.T) {
	a, _ := newTestApp(t)

	a.handle(input{right: true})
	assert.Equal(t, 60.5, a.store.Get(params.FrequencyA))

	a.handle(input{left: true, shift: true})
	assert.Equal(t, 55.5, a.store.Get(params.FrequencyA))
}

func TestFocusWrapsAndActivates(t *testing.T) {
	a, _ := newTestApp(t)

	a.handle(input{up: true})
	assert.Equal(t, focusFullscreen, a.extra())

	a.handle(input{enter: true})
	assert.True(t, a.shell.Fullscreen())

	// Only escape and toggling work while fullscreen.
	a.handle(input{up: true})
	assert.Equal(t, focusFullscreen, a.extra())

	a.handle(input{esc: true})
	assert.False(t, a.shell.Fullscreen())

	a.handle(input{up: true})
	a.handle(input{up: true})
	require.Equal(t, focusBlend, a.extra())
	a.handle(input{right: true})
	assert.Equal(t, params.BlendAlternate, a.store.BlendMode())
}

func TestAnimateStartsAndStopsLoop(t *testing.T) {
	a, _ := newTestApp(t)
	assert.True(t, a.loop.Running())

	a.handle(input{animate: true})
	assert.False(t, a.loop.Running())
	assert.False(t, a.store.Animate())
}

func TestPullFrameIgnoresStale(t *testing.T) {
	a, fc := newTestApp(t)
	require.Eventually(t, fc.HasWaiters, time.Second, time.Millisecond)

	fc.Step(a.loop.Interval())
	require.Eventually(t, func() bool { return a.latest.Load() != nil }, time.Second, time.Millisecond)
	a.dirty = false
	a.pullFrame()
	assert.True(t, a.dirty)
	assert.Greater(t, a.phase, 0.0)

	a.handle(input{animate: true})
	stale := *a.latest.Load()
	stale.Seq++
	a.latest.Store(&stale)
	phase := a.phase
	a.pullFrame()
	assert.Equal(t, phase, a.phase)
}

func TestQuitIgnoredWhileEditing(t *testing.T) {
	a, _ := newTestApp(t)

	a.handle(typed("1"))
	assert.False(t, a.handle(input{quit: true}))
	a.handle(input{esc: true})
	assert.True(t, a.handle(input{quit: true}))
}
