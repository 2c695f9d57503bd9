package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	r := a.canvasRect()
	a.syncTexture(r)
	src := rl.NewRectangle(0, 0, float32(a.texW), float32(a.texH))
	rl.DrawTexturePro(a.tex, src, r, rl.NewVector2(0, 0), 0, rl.White)

	if a.shell.ControlsVisible() {
		a.drawPanel()
	} else {
		a.drawText("[ESC] EXIT FULLSCREEN", 30, rl.GetScreenHeight()-40, 14, ColTextDim)
	}

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawPanel() {
	rl.DrawRectangle(0, 0, panelWidth, int32(rl.GetScreenHeight()), ColBg)
	a.drawText("moire", 30, 30, 24, ColSelect)
	a.drawText(":: simulator", 120, 34, 16, ColText)

	y := 90
	for i, pair := range a.panel.Pairs() {
		col := ColText
		prefix := "  "
		if i == a.focus {
			col, prefix = ColSelect, "> "
		}
		a.drawText(prefix+pair.Label(), 30, y, 16, col)

		number := pair.NumberText()
		if i == a.focus && a.editing {
			number = string(a.draft) + "_"
		}
		a.drawText(number, panelWidth-110, y, 16, ColAccent)

		bar := rl.NewRectangle(48, float32(y+24), panelWidth-160, 4)
		rl.DrawRectangleRec(bar, ColTextDim)
		knob := bar.X + bar.Width*float32(pair.Bounds().Fraction(pair.RangeValue()))
		rl.DrawCircle(int32(knob), int32(bar.Y+2), 6, col)
		y += 46
	}

	y += 10
	a.drawExtra(focusBlend, fmt.Sprintf("Blend: %s", a.store.BlendMode().Label()), y)
	animate := "[ ] Animate"
	if a.store.Animate() {
		animate = "[x] Animate"
	}
	a.drawExtra(focusAnimate, animate, y+28)
	a.drawExtra(focusFullscreen, "[F] Fullscreen", y+56)

	h := rl.GetScreenHeight()
	if a.status != "" {
		a.drawText(a.status, 30, h-70, 14, ColError)
	}
	a.drawText("ARROWS: ADJUST  0-9: TYPE  SPACE: ANIMATE  Q: QUIT", 30, h-40, 12, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), panelWidth-80, 30, 14, ColTextDim)
}

func (a *App) drawExtra(which int, text string, y int) {
	col, prefix := ColText, "  "
	if a.extra() == which {
		col, prefix = ColSelect, "> "
	}
	a.drawText(prefix+text, 30, y, 16, col)
}
