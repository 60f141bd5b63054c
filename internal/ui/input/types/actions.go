package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Dropdown actions
type ToggleListAction struct{}

func (a ToggleListAction) Type() string { return "toggle_list" }

// SubmitAction closes the list and clears the search text
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// Selection actions
type ToggleItemAction struct {
	Index int // -1 for the row under the cursor
}

func (a ToggleItemAction) Type() string { return "toggle_item" }

type AddItemAction struct{}

func (a AddItemAction) Type() string { return "add_item" }

type ClearAllAction struct{}

func (a ClearAllAction) Type() string { return "clear_all" }

// Tag actions
type FocusTagAction struct {
	Delta int
}

func (a FocusTagAction) Type() string { return "focus_tag" }

type RemoveTagAction struct {
	Index int // -1 for the focused tag
}

func (a RemoveTagAction) Type() string { return "remove_tag" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }
