package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// A key may trigger more than one action: space both flaps and confirms,
// and the engine picks whichever the active screen understands.
type KeyMap struct {
	Flap       key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑/w", "flap"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Confirm, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Confirm, k.Pause},
		{k.Screenshot, k.Quit},
	}
}

// MapKeyToFrame sets every action bound to msg on the frame.
// Returns true if any action was set.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	mapped := false
	for _, b := range []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Flap, core.ActionFlap},
		{k.Confirm, core.ActionConfirm},
		{k.Pause, core.ActionPause},
		{k.Quit, core.ActionQuit},
	} {
		if key.Matches(msg, b.binding) {
			frame.Set(b.action)
			mapped = true
		}
	}
	return mapped
}
