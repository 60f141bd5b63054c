package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/input/types"
)

// ClosedMode handles keys while the dropdown is collapsed
type ClosedMode struct{}

func NewClosedMode() *ClosedMode {
	return &ClosedMode{}
}

func (m *ClosedMode) Name() string {
	return "closed"
}

func (m *ClosedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace, tea.KeyDown:
		return m.open(ctx), true
	case tea.KeyLeft:
		return m.focusTag(ctx, -1)
	case tea.KeyRight:
		return m.focusTag(ctx, 1)
	case tea.KeyBackspace, tea.KeyDelete:
		return m.removeTag(ctx)
	case tea.KeyCtrlX:
		return []types.Action{types.ClearAllAction{}}, true
	}

	switch msg.String() {
	case "j":
		return m.open(ctx), true
	case "h":
		return m.focusTag(ctx, -1)
	case "l":
		return m.focusTag(ctx, 1)
	case "x":
		return m.removeTag(ctx)
	case "X":
		return []types.Action{types.ClearAllAction{}}, true
	}

	return nil, false
}

func (m *ClosedMode) open(ctx types.Context) []types.Action {
	next := types.ModeList
	if ctx.SearchEditable() {
		next = types.ModeSearch
	}
	return []types.Action{
		types.ToggleListAction{},
		types.ChangeModeAction{Mode: next},
	}
}

func (m *ClosedMode) focusTag(ctx types.Context, delta int) ([]types.Action, bool) {
	if ctx.TagCount() == 0 {
		return nil, false
	}
	return []types.Action{types.FocusTagAction{Delta: delta}}, true
}

func (m *ClosedMode) removeTag(ctx types.Context) ([]types.Action, bool) {
	if ctx.TagCount() == 0 {
		return nil, false
	}
	return []types.Action{types.RemoveTagAction{Index: -1}}, true
}
