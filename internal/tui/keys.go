package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Move     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Reset    key.Binding
	Undo     key.Binding
	Redo     key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Copy     key.Binding
	Save     key.Binding
	PNG      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:    key.NewBinding(key.WithKeys("h", "left", "H", "shift+left"), key.WithHelp("h/←", "left")),
		Right:   key.NewBinding(key.WithKeys("l", "right", "L", "shift+right"), key.WithHelp("l/→", "right")),
		Up:      key.NewBinding(key.WithKeys("k", "up", "K", "shift+up"), key.WithHelp("k/↑", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down", "J", "shift+down"), key.WithHelp("j/↓", "down")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next node")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous node")),
		Move:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move node")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset node")),
		Undo:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "redo")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy arrows")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		PNG:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export png")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Move, k.Undo, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Next, k.Prev, k.Move, k.Confirm, k.Cancel, k.Reset},
		{k.Undo, k.Redo, k.ZoomIn, k.ZoomOut},
		{k.Copy, k.Save, k.PNG, k.Help, k.Quit},
	}
}

// getMoveSpeed doubles the step when shift is held.
func getMoveSpeed(k string) float64 {
	switch k {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
