package tui

import (
	"fmt"
	"strings"
)

func (m *Model) viewCode() string {
	var b strings.Builder
	files := m.code.Files()
	b.WriteString("\n  " + cyan.Render("source") + dim.Render(fmt.Sprintf("  %d files · %s", len(files), m.sim.project.Name)) + "\n")
	b.WriteString(dimmer.Render("  "+strings.Repeat("─", max(10, m.codePanel.Width))) + "\n")
	b.WriteString(m.codePanel.View() + "\n")
	b.WriteString(dimmer.Render("  "+strings.Repeat("─", max(10, m.codePanel.Width))) + "\n")
	b.WriteString(dim.Render(fmt.Sprintf("  %3.0f%%  ↑↓ scroll · v/esc close", m.codePanel.ScrollPercent()*100)) + "\n")
	return b.String()
}
