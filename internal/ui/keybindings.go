package ui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/spatialnav/pkg/focus"
)

// keyBindings drives the footer help. Navigation keys come from the focus
// key map; quit and help are handled by the model before the focus manager
// sees the key.
type keyBindings struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var keyGlyphs = map[string]string{
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
}

func newKeyBindings(km focus.KeyMap) keyBindings {
	nav := func(dir focus.Direction) key.Binding {
		keys := km.Keys(dir)
		labels := make([]string, len(keys))
		for i, k := range keys {
			if g, ok := keyGlyphs[k]; ok {
				k = g
			}
			labels[i] = k
		}
		b := key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(labels, "/"), dir.String()),
		)
		if len(keys) == 0 {
			b.SetEnabled(false)
		}
		return b
	}
	return keyBindings{
		Up:    nav(focus.Up),
		Down:  nav(focus.Down),
		Left:  nav(focus.Left),
		Right: nav(focus.Right),
		Enter: key.NewBinding(
			key.WithKeys(focus.KeyEnter),
			key.WithHelp("enter", "activate"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyBindings) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyBindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter},
		{k.Help, k.Quit},
	}
}

// keyEvent adapts a terminal key press to the focus dispatcher's event.
func keyEvent(msg tea.KeyPressMsg) *focus.KeyEvent {
	return &focus.KeyEvent{Key: msg.String(), Repeat: msg.IsRepeat}
}
