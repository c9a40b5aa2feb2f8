package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

type keyMap struct {
	Pause key.Binding
	Speed key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", messages.TuiKeyPause)),
		Speed: key.NewBinding(key.WithKeys("1", "2", "5"), key.WithHelp("1/2/5", messages.TuiKeySpeed)),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", messages.TuiKeyReset)),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", messages.TuiKeyQuit)),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Speed, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
