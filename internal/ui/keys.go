package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"segctl/internal/ui/segmented"
)

// keyMap combines the control's bindings with the host's own
type keyMap struct {
	control segmented.KeyMap

	Grow   key.Binding
	Shrink key.Binding
	Focus  key.Binding
	Help   key.Binding
	Pager  key.Binding
	Quit   key.Binding
}

func newKeyMap(control segmented.KeyMap) keyMap {
	return keyMap{
		control: control,
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add segment"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "remove segment"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus/blur"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Pager: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "help in pager"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.control.ShortHelp(), k.Help, k.Quit)
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.control.FullHelp(),
		[]key.Binding{k.Grow, k.Shrink, k.Focus},
		[]key.Binding{k.Help, k.Pager, k.Quit},
	)
}
