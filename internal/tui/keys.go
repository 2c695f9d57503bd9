package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	BigLeft    key.Binding
	BigRight   key.Binding
	Enter      key.Binding
	Tab        key.Binding
	Esc        key.Binding
	Fullscreen key.Binding
	Animate    key.Binding
	Source     key.Binding
	Copy       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "select")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "select")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "adjust")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←→", "adjust")),
		BigLeft:    key.NewBinding(key.WithKeys("shift+left", "H")),
		BigRight:   key.NewBinding(key.WithKeys("shift+right", "L")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Esc:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit fullscreen")),
		Fullscreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		Animate:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "animate")),
		Source:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view source")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Back:       key.NewBinding(key.WithKeys("b", "backspace"), key.WithHelp("b", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) homeHelp() []key.Binding {
	return []key.Binding{k.Up, k.Enter, k.Quit}
}

func (k keyMap) simHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Enter, k.Fullscreen, k.Animate, k.Source, k.Copy, k.Back, k.Quit}
}
