package multiselect

import (
	"github.com/charmbracelet/bubbles/key"

	"multiselect/internal/ui/input/types"
)

// KeyMap lists the bindings shown in the help line. Key routing itself is
// done by the input modes; these bindings only describe it.
type KeyMap struct {
	Open      key.Binding
	FocusTag  key.Binding
	RemoveTag key.Binding
	ClearAll  key.Binding
	Move      key.Binding
	Toggle    key.Binding
	Submit    key.Binding
}

// DefaultKeyMap returns the bindings matching the input modes
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:      key.NewBinding(key.WithKeys("enter", " ", "down", "j"), key.WithHelp("enter", "open")),
		FocusTag:  key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "tags")),
		RemoveTag: key.NewBinding(key.WithKeys("backspace", "delete", "x"), key.WithHelp("x", "remove tag")),
		ClearAll:  key.NewBinding(key.WithKeys("ctrl+x", "X"), key.WithHelp("ctrl+x", "clear all")),
		Move:      key.NewBinding(key.WithKeys("up", "down", "ctrl+p", "ctrl+n"), key.WithHelp("↑/↓", "move")),
		Toggle:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Submit:    key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "done")),
	}
}

// bindingsFor returns the bindings relevant in a mode
func (k KeyMap) bindingsFor(mode types.Mode, tags int, single bool) []key.Binding {
	switch mode {
	case types.ModeList, types.ModeSearch:
		toggle := k.Toggle
		if mode == types.ModeSearch {
			toggle = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle"))
		}
		if single {
			toggle.SetHelp("enter", "choose")
		}
		return []key.Binding{k.Move, toggle, k.Submit, k.ClearAll}
	default:
		bindings := []key.Binding{k.Open}
		if tags > 0 {
			bindings = append(bindings, k.FocusTag, k.RemoveTag)
		}
		return append(bindings, k.ClearAll)
	}
}
