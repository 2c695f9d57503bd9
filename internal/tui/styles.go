package tui

import "github.com/charmbracelet/lipgloss"

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Theme defines the colours of the canvas and panel accents.
type Theme struct {
	Name   string
	Canvas lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
}

// Available themes, named after the render palettes they pair with.
var themes = map[string]Theme{
	"mono":      {Name: "mono", Canvas: lipgloss.Color("#ebebeb"), Accent: lipgloss.Color("86"), Border: lipgloss.Color("238")},
	"paper":     {Name: "paper", Canvas: lipgloss.Color("#f5f2e8"), Accent: lipgloss.Color("220"), Border: lipgloss.Color("242")},
	"cyberpunk": {Name: "cyberpunk", Canvas: lipgloss.Color("#ff00ff"), Accent: lipgloss.Color("#00ffff"), Border: lipgloss.Color("#666666")},
	"retro":     {Name: "retro", Canvas: lipgloss.Color("#00ff00"), Accent: lipgloss.Color("#88ff88"), Border: lipgloss.Color("#005500")},
	"ocean":     {Name: "ocean", Canvas: lipgloss.Color("#00d4ff"), Accent: lipgloss.Color("#00ff88"), Border: lipgloss.Color("#336699")},
}

func themeFor(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["mono"]
}

func (t Theme) canvasStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Canvas)
}

func (t Theme) panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
