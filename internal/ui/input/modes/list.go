package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/input/types"
)

// ListMode handles keys while the dropdown is open and the search input is
// not editable
type ListMode struct{}

func NewListMode() *ListMode {
	return &ListMode{}
}

func (m *ListMode) Name() string {
	return "list"
}

func (m *ListMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := navigate(msg); ok {
		return actions, true
	}

	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace:
		return activate(ctx), true
	case tea.KeyEsc, tea.KeyTab:
		return []types.Action{
			types.SubmitAction{},
			types.ChangeModeAction{Mode: types.ModeClosed},
		}, true
	case tea.KeyCtrlX:
		return []types.Action{
			types.ClearAllAction{},
			types.ChangeModeAction{Mode: types.ModeClosed},
		}, true
	}

	switch msg.String() {
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "X":
		return []types.Action{
			types.ClearAllAction{},
			types.ChangeModeAction{Mode: types.ModeClosed},
		}, true
	}

	return nil, false
}

// navigate maps cursor keys shared by the list and search modes
func navigate(msg tea.KeyMsg) ([]types.Action, bool) {
	var direction string
	switch msg.Type {
	case tea.KeyUp, tea.KeyCtrlP:
		direction = "up"
	case tea.KeyDown, tea.KeyCtrlN:
		direction = "down"
	case tea.KeyPgUp:
		direction = "pageup"
	case tea.KeyPgDown:
		direction = "pagedown"
	case tea.KeyHome:
		direction = "home"
	case tea.KeyEnd:
		direction = "end"
	default:
		return nil, false
	}
	return []types.Action{types.NavigateAction{Direction: direction}}, true
}

// activate presses the row under the cursor
func activate(ctx types.Context) []types.Action {
	switch {
	case ctx.CursorOnSubmit():
		return []types.Action{
			types.SubmitAction{},
			types.ChangeModeAction{Mode: types.ModeClosed},
		}
	case ctx.CursorOnAddRow():
		return []types.Action{types.AddItemAction{}}
	case ctx.VisibleCount() > 0:
		// In single mode the widget closes itself after the pick
		return []types.Action{types.ToggleItemAction{Index: -1}}
	}
	return nil
}
