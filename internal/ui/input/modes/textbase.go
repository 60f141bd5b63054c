package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

// HandleKey covers keys shared by every text mode. Anything it does not
// consume is typed into the input by the handler.
func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
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
	return nil, false
}
