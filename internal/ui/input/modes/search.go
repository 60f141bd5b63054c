package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/input/types"
)

// SearchMode handles keys while the dropdown is open with an editable
// search input. Printable keys edit the search text.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := navigate(msg); ok {
		return actions, true
	}
	if msg.Type == tea.KeyEnter {
		return activate(ctx), true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
