package multiselect

import (
	"multiselect/internal/domain"
	"multiselect/internal/ui/logic"
	"multiselect/internal/ui/views"
)

// Options configures a widget. It is copied at construction and never
// changes afterwards.
type Options struct {
	Single bool
	Fields domain.Fields

	SelectText        string
	SearchPlaceholder string
	SearchIcon        string
	SubmitButtonText  string
	NoItemsText       string

	FilterMethod logic.FilterMethod

	HideTags          bool
	HideDropdown      bool
	HideSubmitButton  bool
	HideHelp          bool
	CanAddItems       bool
	RemoveSelected    bool
	FixedHeight       bool
	TextInputEditable bool

	// ListHeight is the number of item rows shown before scrolling
	ListHeight int
	Width      int

	// Styles overrides the default look; nil keeps the defaults
	Styles *views.Styles
}

// DefaultOptions returns the defaults used for unset fields
func DefaultOptions() Options {
	return Options{
		Fields:            domain.DefaultFields(),
		SelectText:        "Select",
		SearchPlaceholder: "Search",
		SearchIcon:        "⌕",
		SubmitButtonText:  "Done",
		NoItemsText:       "No items to display.",
		FilterMethod:      logic.FilterPartial,
		ListHeight:        5,
		Width:             40,
	}
}

// withDefaults fills the zero-valued text and size fields
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	o.Fields = o.Fields.WithDefaults()
	if o.SelectText == "" {
		o.SelectText = d.SelectText
	}
	if o.SearchPlaceholder == "" {
		o.SearchPlaceholder = d.SearchPlaceholder
	}
	if o.SearchIcon == "" {
		o.SearchIcon = d.SearchIcon
	}
	if o.SubmitButtonText == "" {
		o.SubmitButtonText = d.SubmitButtonText
	}
	if o.NoItemsText == "" {
		o.NoItemsText = d.NoItemsText
	}
	if o.ListHeight <= 0 {
		o.ListHeight = d.ListHeight
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Styles == nil {
		o.Styles = views.NewStyles()
	}
	return o
}

// Callbacks receive the widget's change requests. Every field is optional;
// nil callbacks are replaced with no-ops.
type Callbacks struct {
	// OnSelectionChange receives the complete selection after each change
	OnSelectionChange func(selected []domain.Key)
	// OnAddItem receives the complete item list including a new item
	OnAddItem       func(items []domain.Item)
	OnChangeInput   func(text string)
	OnToggleList    func()
	OnClearSelector func()
}

func (c Callbacks) withDefaults() Callbacks {
	if c.OnSelectionChange == nil {
		c.OnSelectionChange = func([]domain.Key) {}
	}
	if c.OnAddItem == nil {
		c.OnAddItem = func([]domain.Item) {}
	}
	if c.OnChangeInput == nil {
		c.OnChangeInput = func(string) {}
	}
	if c.OnToggleList == nil {
		c.OnToggleList = func() {}
	}
	if c.OnClearSelector == nil {
		c.OnClearSelector = func() {}
	}
	return c
}

// Props is the host-owned data supplied on every update and render
type Props struct {
	Items    []domain.Item
	Selected []domain.Key
}
