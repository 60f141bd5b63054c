package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/input/modes"
	"multiselect/internal/ui/input/types"
)

// Handler routes key presses to the handler of the current input mode and
// owns the search input the modes share.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // search input shared with the renderer
}

// New creates a handler in closed mode. placeholder is shown in the empty
// search input.
func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeClosed,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.RegisterMode(types.ModeClosed, modes.NewClosedMode())
	h.RegisterMode(types.ModeList, modes.NewListMode())
	h.RegisterMode(types.ModeSearch, modes.NewSearchMode(h.textInput))

	return h
}

// HandleKey routes a key to the current mode and returns the resulting
// actions. Mode changes are applied here and do not reach the caller.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unconsumed keys in a text mode edit the search input
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
		}
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// Mode returns the current input mode
func (h *Handler) Mode() types.Mode {
	if h == nil {
		return types.ModeClosed
	}
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return h.currentMode.String()
}

// TextInput returns the search input model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SearchText returns the current search text
func (h *Handler) SearchText() string {
	return h.textInput.Value()
}

// ClearSearch empties the search input without leaving the current mode
func (h *Handler) ClearSearch() {
	h.textInput.Reset()
}

// IsTyping reports whether printable keys currently edit the search input
func (h *Handler) IsTyping() bool {
	return h.isTextMode(h.currentMode)
}

// ChangeMode switches mode outside of key handling, e.g. when the widget
// closes itself after a single-select pick
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) tea.Cmd {
	if mode == h.currentMode {
		return nil
	}
	h.switchMode(mode, ctx)
	if h.isTextMode(mode) {
		return textinput.Blink
	}
	return nil
}

// Update handles non-keyboard messages for the search input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// RegisterMode installs or replaces the handler for mode
func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}
