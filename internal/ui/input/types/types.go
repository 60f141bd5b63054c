package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeClosed Mode = iota // collapsed: label and tags
	ModeList               // open, list keys only
	ModeSearch             // open, keys go to the search input
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeSearch:
		return "search"
	default:
		return "closed"
	}
}

// Action represents a command the widget should execute
type Action interface {
	Type() string
}

// Context provides read-only access to widget state needed for input handling
type Context interface {
	TagCount() int
	VisibleCount() int
	CursorOnAddRow() bool
	CursorOnSubmit() bool
	SearchEditable() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
