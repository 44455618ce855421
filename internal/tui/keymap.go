package tui

import "github.com/charmbracelet/bubbles/key"

// keymap holds the bindings of the search viewer.
type keymap struct {
	pause   key.Binding
	step    key.Binding
	restart key.Binding
	quit    key.Binding
}

func newKeymap() keymap {
	return keymap{
		pause:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		step:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "single step")),
		restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.pause, k.step, k.restart, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
