// Package tui is the terminal front end: a home screen listing projects
// and the interactive moiré simulator page.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"k8s.io/utils/clock"

	"github.com/san-kum/moire/internal/codeview"
	"github.com/san-kum/moire/internal/config"
	"github.com/san-kum/moire/internal/portfolio"
	"github.com/san-kum/moire/internal/schedule"
	"github.com/san-kum/moire/pkg/logging"
)

const (
	introText     = "hi, I build simulations and draw interference patterns."
	introInterval = 25 * time.Millisecond
	statusTimeout = 3 * time.Second
)

// Options configures a Model.
type Options struct {
	Config *config.Config
	// Clock drives the animation loop; nil uses the real clock.
	Clock clock.WithTicker
	// Path is the initial route, e.g. "/" or "/projects/moire-simulator".
	Path string
	// Source reads a registered source file for the code viewer.
	Source func(path string) ([]byte, error)
}

type (
	frameMsg       schedule.Frame
	introTickMsg   struct{}
	clearStatusMsg struct{ id int }
)

// Model is the root Bubble Tea model.
type Model struct {
	cfg    *config.Config
	keys   keyMap
	help   help.Model
	theme  Theme
	source func(string) ([]byte, error)

	width  int
	height int

	route  portfolio.Route
	cursor int
	intro  *portfolio.Intro
	sim    *simulator

	code      *codeview.Store
	codePanel viewport.Model

	loop   *schedule.Loop
	frames chan schedule.Frame

	status   string
	statusID int
}

// New builds a model positioned at opts.Path.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := &Model{
		cfg:       cfg,
		keys:      defaultKeyMap(),
		help:      help.New(),
		theme:     themeFor(cfg.Theme),
		source:    opts.Source,
		width:     100,
		height:    32,
		code:      codeview.NewStore(),
		codePanel: viewport.New(60, 12),
		loop:      schedule.New(opts.Clock, cfg.FPS),
		frames:    make(chan schedule.Frame, 1),
	}
	m.code.SubscribeFiles(m.refreshCodePanel)

	path := opts.Path
	if path == "" {
		path = "/"
		if cfg.Instant {
			path = "/?instant=1"
		}
	}
	if err := m.navigate(path); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitFrame()}
	if m.intro != nil && !m.intro.Done() {
		cmds = append(cmds, introTick())
	}
	return tea.Batch(cmds...)
}

// waitFrame delivers the next scheduled frame. Exactly one is pending for
// the lifetime of the program.
func (m *Model) waitFrame() tea.Cmd {
	ch := m.frames
	return func() tea.Msg {
		f, ok := <-ch
		if !ok {
			return nil
		}
		return frameMsg(f)
	}
}

// pushFrame is the loop's draw callback. It never blocks: if the UI has
// not consumed the previous frame the new one is dropped.
func (m *Model) pushFrame(f schedule.Frame) {
	select {
	case m.frames <- f:
	default:
	}
}

func introTick() tea.Cmd {
	return tea.Tick(introInterval, func(time.Time) tea.Msg { return introTickMsg{} })
}

// navigate switches pages. Leaving the simulator stops its animation and
// clears the registered source files.
func (m *Model) navigate(path string) error {
	r, err := portfolio.Resolve(path)
	if err != nil {
		return err
	}
	if m.sim != nil {
		m.sim.close()
		m.sim = nil
		m.code.ClearCodeFiles()
		m.code.SetCodeViewerOpen(false)
	}
	m.route = r
	switch r.Kind {
	case portfolio.PageHome:
		m.intro = portfolio.NewIntro(introText, r.Instant)
	case portfolio.PageProject:
		m.sim, err = newSimulator(r.Project, m.cfg, m.loop, m.pushFrame)
		if err != nil {
			return err
		}
		m.code.RegisterCodeFiles(r.Project.SourceFiles)
		m.code.SetUseInlineCodeTrigger(m.width >= 120)
	}
	logging.Debug("tui", "navigate %s", r.Path())
	return nil
}

// Route is the current page address.
func (m *Model) Route() portfolio.Route { return m.route }

// Eyebrow is the small heading above the page title.
func (m *Model) Eyebrow() string {
	if m.route.Kind == portfolio.PageProject {
		return m.route.Project.Eyebrow
	}
	return portfolio.Whoami.Name
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusID++
	m.status = msg
	id := m.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.codePanel.Width = max(20, msg.Width-8)
		m.codePanel.Height = max(4, msg.Height/2)
		m.code.SetUseInlineCodeTrigger(msg.Width >= 120)
		if m.sim != nil {
			m.sim.dirty = true
		}
		return m, nil

	case frameMsg:
		if m.sim != nil && m.loop.Current(msg.Token) {
			m.sim.onFrame(schedule.Frame(msg))
		}
		return m, m.waitFrame()

	case introTickMsg:
		if m.intro == nil || m.intro.Done() {
			return m, nil
		}
		if m.intro.Step(1) {
			return m, nil
		}
		return m, introTick()

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && (m.sim == nil || !m.sim.editing()) {
			m.close()
			return m, tea.Quit
		}
		if m.code.IsOpen() {
			return m, m.codeKey(msg)
		}
		if m.sim != nil {
			return m, m.simKey(msg)
		}
		return m, m.homeKey(msg)
	}
	return m, nil
}

func (m *Model) homeKey(msg tea.KeyMsg) tea.Cmd {
	if !m.intro.Done() {
		m.intro.Skip()
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(portfolio.Projects)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter), msg.String() == " ":
		return m.open(portfolio.Projects[m.cursor])
	}
	return nil
}

// open follows a project card's link.
func (m *Model) open(p portfolio.Project) tea.Cmd {
	if err := m.navigate(p.Href()); err != nil {
		logging.Error("tui", err, "open %s", p.Slug)
		return m.setStatus(err.Error())
	}
	return tea.ClearScreen
}

func (m *Model) codeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Source), key.Matches(msg, m.keys.Esc):
		m.code.SetCodeViewerOpen(false)
		return nil
	}
	var cmd tea.Cmd
	m.codePanel, cmd = m.codePanel.Update(msg)
	return cmd
}

func (m *Model) refreshCodePanel(files []string) {
	var b strings.Builder
	for _, f := range files {
		b.WriteString(cyan.Render(f) + "\n")
		if m.source == nil {
			continue
		}
		data, err := m.source(f)
		if err != nil {
			b.WriteString(dim.Render("  (unavailable: "+err.Error()+")") + "\n\n")
			continue
		}
		b.WriteString(dim.Render(string(data)) + "\n")
	}
	m.codePanel.SetContent(b.String())
	m.codePanel.GotoTop()
}

func (m *Model) close() {
	if m.sim != nil {
		m.sim.close()
	}
	m.loop.Stop()
}

func (m *Model) View() string {
	if m.sim != nil {
		return m.viewSim()
	}
	return m.viewHome()
}

func (m *Model) viewHome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render(portfolio.Whoami.Name) + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("      " + dim.Render(portfolio.Whoami.Tagline) + "\n\n")
	b.WriteString("      " + white.Render(m.intro.Visible()))
	if !m.intro.Done() {
		b.WriteString(cyan.Render("▋") + "\n")
		return b.String()
	}
	b.WriteString("\n\n")

	b.WriteString("      " + dim.Render("projects") + "\n")
	for i, p := range portfolio.Projects {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-18s", p.Slug)) + dim.Render(p.Summary) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-18s", p.Slug)) + dimmer.Render(p.Summary) + "\n")
		}
		b.WriteString("        " + dimmer.Render(p.Href()) + "\n")
	}

	b.WriteString("\n      " + m.help.ShortHelpView(m.keys.homeHelp()) + "\n")
	if m.status != "" {
		b.WriteString("      " + red.Render(m.status) + "\n")
	}
	return b.String()
}

// Run starts the program and blocks until it exits.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
