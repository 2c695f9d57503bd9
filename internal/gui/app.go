// Package gui is the raylib window front end for the moiré simulator.
package gui

import (
	"fmt"
	"image/color"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"k8s.io/utils/clock"

	"github.com/san-kum/moire/internal/config"
	"github.com/san-kum/moire/internal/controls"
	"github.com/san-kum/moire/internal/params"
	"github.com/san-kum/moire/internal/render"
	"github.com/san-kum/moire/internal/schedule"
	"github.com/san-kum/moire/internal/shell"
	"github.com/san-kum/moire/pkg/logging"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColError   = rl.NewColor(220, 80, 80, 255)
)

const (
	windowWidth  = 1280
	windowHeight = 720
	panelWidth   = 420
	// pixelScale is how many window pixels one rendered pixel covers.
	pixelScale = 2
)

// Focus targets after the numeric pairs.
const (
	focusBlend = iota
	focusAnimate
	focusFullscreen
	extraFocus
)

type App struct {
	store *params.Store
	panel *controls.Panel
	shell *shell.Shell
	loop  *schedule.Loop
	pal   render.Palette

	latest atomic.Pointer[schedule.Frame]
	seen   uint64
	phase  float64
	dirty  bool

	focus   int
	editing bool
	draft   []rune
	status  string

	texW, texH int
	pixels     []color.RGBA
	tex        rl.Texture2D
	font       rl.Font
	unsub      []func()
}

// NewApp builds the simulator state. It touches no window resources.
func NewApp(cfg *config.Config, clk clock.WithTicker) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ranges, err := cfg.Ranges()
	if err != nil {
		return nil, err
	}
	a := &App{
		store: params.NewStore(cfg.Parameters),
		shell: shell.New(),
		loop:  schedule.New(clk, cfg.FPS),
		pal:   render.GetPalette(cfg.Theme),
		dirty: true,
	}
	a.panel = controls.NewPanel(a.store, ranges)
	a.unsub = append(a.unsub, a.store.Subscribe(a.onParams))
	return a, nil
}

// onParams keeps the loop running only while animation is on.
func (a *App) onParams(p params.Parameters) {
	a.dirty = true
	switch {
	case p.Animate && !a.loop.Running():
		a.loop.Start(a.onFrame)
	case !p.Animate && a.loop.Running():
		a.loop.Stop()
		a.phase = a.loop.Phase()
	}
}

// onFrame runs on the loop goroutine; the window loop picks the frame up.
func (a *App) onFrame(f schedule.Frame) {
	a.latest.Store(&f)
}

// pullFrame adopts the newest frame if it belongs to the active run.
func (a *App) pullFrame() {
	f := a.latest.Load()
	if f == nil || f.Seq == a.seen || !a.loop.Current(f.Token) {
		return
	}
	a.seen = f.Seq
	a.phase = f.Phase
	a.dirty = true
}

func (a *App) Close() {
	for _, u := range a.unsub {
		u()
	}
	a.unsub = nil
	a.panel.Close()
	a.loop.Stop()
}

func initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, "moire")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	a, err := NewApp(cfg, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	initWindow()
	defer rl.CloseWindow()
	a.font = loadFont()
	defer a.unloadTexture()

	a.unsub = append(a.unsub, a.shell.Subscribe(func(m shell.Mode) {
		if rl.IsWindowFullscreen() != (m == shell.Fullscreen) {
			rl.ToggleFullscreen()
		}
		a.dirty = true
	}))
	logging.Info("gui", "window open at %dx%d", windowWidth, windowHeight)

	for !rl.WindowShouldClose() {
		if a.handle(pollInput()) {
			break
		}
		a.pullFrame()
		a.Draw()
	}
	return nil
}

// canvasRect is the window area the pattern occupies.
func (a *App) canvasRect() rl.Rectangle {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	if !a.shell.ControlsVisible() {
		return rl.NewRectangle(0, 0, w, h)
	}
	return rl.NewRectangle(panelWidth, 0, w-panelWidth, h)
}

// paint renders the pattern into a.pixels at the texture resolution.
func (a *App) paint() {
	s := render.NewSampler(a.store.Snapshot(), a.phase, a.texW, a.texH)
	for y := 0; y < a.texH; y++ {
		row := a.pixels[y*a.texW:]
		for x := 0; x < a.texW; x++ {
			row[x] = a.pal.At(s.At(x, y))
		}
	}
}

// syncTexture resizes the backing texture to the canvas and uploads the
// pattern when it changed.
func (a *App) syncTexture(r rl.Rectangle) {
	w := max(1, int(r.Width)/pixelScale)
	h := max(1, int(r.Height)/pixelScale)
	if w != a.texW || h != a.texH {
		a.unloadTexture()
		a.texW, a.texH = w, h
		a.pixels = make([]color.RGBA, w*h)
		img := rl.GenImageColor(w, h, rl.Black)
		a.tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		a.dirty = true
	}
	if a.dirty {
		a.paint()
		rl.UpdateTexture(a.tex, a.pixels)
		a.dirty = false
	}
}

func (a *App) unloadTexture() {
	if a.tex.ID != 0 {
		rl.UnloadTexture(a.tex)
		a.tex = rl.Texture2D{}
	}
}

func (a *App) focused() *controls.Pair {
	pairs := a.panel.Pairs()
	if a.focus < len(pairs) {
		return pairs[a.focus]
	}
	return nil
}

func (a *App) extra() int { return a.focus - len(a.panel.Pairs()) }

func (a *App) setStatus(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
}
