// Package multiselect implements a dropdown list for picking one or more
// items. The host owns the item list and the selection and passes both in
// on every Update and View; the widget only keeps transient UI state (open
// or closed, search text, cursor) and reports requested changes through
// Callbacks.
package multiselect

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/domain"
	"multiselect/internal/ui/input"
	"multiselect/internal/ui/input/types"
	"multiselect/internal/ui/logic"
	"multiselect/internal/ui/views"
)

// Model is the widget state. Copies share the search input.
type Model struct {
	opts     Options
	cb       Callbacks
	input    *input.Handler
	renderer *views.Renderer
	help     help.Model
	keys     KeyMap

	open      bool
	cursor    logic.ListCursor
	tagCursor int // -1 when no tag is focused
}

// New creates a closed widget
func New(opts Options, cb Callbacks) Model {
	opts = opts.withDefaults()
	return Model{
		opts:      opts,
		cb:        cb.withDefaults(),
		input:     input.New(opts.SearchPlaceholder),
		renderer:  views.NewRenderer(opts.Styles),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		cursor:    logic.NewListCursor(opts.ListHeight),
		tagCursor: -1,
	}
}

// Options returns the configuration the widget was built with
func (m Model) Options() Options {
	return m.opts
}

// IsOpen reports whether the list is shown
func (m Model) IsOpen() bool {
	return m.open
}

// SearchText returns the current search text
func (m Model) SearchText() string {
	return m.input.SearchText()
}

// IsTyping reports whether printable keys go to the search input. Hosts
// should not intercept letter shortcuts while this is true.
func (m Model) IsTyping() bool {
	return m.input.IsTyping()
}

// Mode returns the current input mode
func (m Model) Mode() types.Mode {
	return m.input.Mode()
}

// Cursor returns the highlighted row of the open list
func (m Model) Cursor() int {
	return m.cursor.Index()
}

// Init implements the Bubble Tea component contract
func (m Model) Init() tea.Cmd {
	return nil
}

// snapshot is the derived list state for one update or render
type snapshot struct {
	search   string
	visible  []domain.Item
	addRow   bool
	submit   bool
	tagKeys  []domain.Key
	tagNames []string
}

func (s snapshot) rowCount() int {
	n := len(s.visible)
	if s.addRow {
		n++
	}
	if s.submit {
		n++
	}
	return n
}

func (m Model) snapshot(props Props) snapshot {
	s := snapshot{search: m.input.SearchText()}
	s.visible = logic.VisibleItems(props.Items, props.Selected, m.opts.Fields, s.search, m.opts.FilterMethod, m.opts.RemoveSelected)
	s.addRow = m.opts.CanAddItems && s.search != "" && !logic.HasExactMatch(s.visible, m.opts.Fields, s.search)
	s.submit = !m.opts.Single && !m.opts.HideSubmitButton

	if m.showTags(props) {
		for _, key := range props.Selected {
			item, ok := m.opts.Fields.FindItem(props.Items, key)
			if !ok {
				continue
			}
			display, ok := m.opts.Fields.Display(item)
			if !ok {
				continue
			}
			s.tagKeys = append(s.tagKeys, key)
			s.tagNames = append(s.tagNames, display)
		}
	}
	return s
}

func (m Model) showTags(props Props) bool {
	return !m.opts.Single && !m.opts.HideTags && len(props.Selected) > 0
}

func (m Model) context(s snapshot) input.ModelContext {
	idx := m.cursor.Index()
	n := len(s.visible)
	ctx := input.ModelContext{
		Editable: m.opts.TextInputEditable,
		Tags:     len(s.tagKeys),
		Visible:  n,
	}
	if s.addRow && idx == n {
		ctx.OnAddRow = true
	}
	if s.submit && idx == s.rowCount()-1 {
		ctx.OnSubmitRow = true
	}
	return ctx
}

// windowHeight keeps the add row and the submit button on screen when the
// items fit
func (m Model) windowHeight(s snapshot) int {
	return m.opts.ListHeight + s.rowCount() - len(s.visible)
}

// fixedBodyRows is the tallest the open body can get: a full page of items,
// the add and submit rows, and both scroll markers
func (m Model) fixedBodyRows() int {
	rows := m.opts.ListHeight + 2
	if m.opts.CanAddItems {
		rows++
	}
	if !m.opts.Single && !m.opts.HideSubmitButton {
		rows++
	}
	return rows
}

// Update handles a message against the host's current props
func (m Model) Update(msg tea.Msg, props Props) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.input.Update(msg)
	}

	// Actions resolve against the list as it was when the key arrived
	snap := m.snapshot(props)
	m.cursor = m.cursor.SetHeight(m.windowHeight(snap)).Clamp(snap.rowCount())
	actions, cmd := m.input.HandleKey(keyMsg, m.context(snap))

	for _, action := range actions {
		m = m.apply(action, snap, props)
	}

	after := m.snapshot(props)
	m.cursor = m.cursor.SetHeight(m.windowHeight(after)).Clamp(after.rowCount())
	m.tagCursor = clampTag(m.tagCursor, len(after.tagKeys))

	return m, cmd
}

func (m Model) apply(action types.Action, snap snapshot, props Props) Model {
	switch a := action.(type) {
	case types.ToggleListAction:
		return m.ToggleList()
	case types.SubmitAction:
		return m.Submit()
	case types.NavigateAction:
		m.cursor = m.navigate(a.Direction)
	case types.ToggleItemAction:
		index := a.Index
		if index < 0 {
			index = m.cursor.Index()
		}
		if index < len(snap.visible) {
			return m.ToggleItem(snap.visible[index], props)
		}
	case types.AddItemAction:
		return m.addItem(snap, props)
	case types.ClearAllAction:
		return m.ClearAll()
	case types.FocusTagAction:
		m.tagCursor = focusTag(m.tagCursor, a.Delta, len(snap.tagKeys))
	case types.RemoveTagAction:
		index := a.Index
		if index < 0 {
			index = m.tagCursor
		}
		if index < 0 {
			index = len(snap.tagKeys) - 1
		}
		if index >= 0 && index < len(snap.tagKeys) {
			return m.RemoveTag(snap.tagKeys[index], props)
		}
	case types.UpdateTextAction:
		m.cursor = m.cursor.Reset()
		m.cb.OnChangeInput(a.Text)
	}
	return m
}

func (m Model) navigate(direction string) logic.ListCursor {
	switch direction {
	case "up":
		return m.cursor.Move(-1)
	case "down":
		return m.cursor.Move(1)
	case "pageup":
		return m.cursor.PageUp()
	case "pagedown":
		return m.cursor.PageDown()
	case "home":
		return m.cursor.Home()
	case "end":
		return m.cursor.End()
	}
	return m.cursor
}

func (m Model) openMode() types.Mode {
	if m.opts.TextInputEditable {
		return types.ModeSearch
	}
	return types.ModeList
}

// syncMode aligns the input mode with the open flag after changes made
// outside of key handling
func (m Model) syncMode() {
	mode := types.ModeClosed
	if m.open {
		mode = m.openMode()
	}
	m.input.ChangeMode(mode, input.ModelContext{Editable: m.opts.TextInputEditable})
}

// ToggleList opens or closes the list
func (m Model) ToggleList() Model {
	m.open = !m.open
	m.cursor = m.cursor.Reset()
	m.syncMode()
	m.cb.OnToggleList()
	return m
}

// Submit closes the list and clears the search text
func (m Model) Submit() Model {
	if m.open {
		m = m.ToggleList()
	}
	m.input.ClearSearch()
	m.cursor = m.cursor.Reset()
	return m
}

// ToggleItem selects or deselects item. Disabled items and items without a
// key are ignored. In single mode the list closes and the selection becomes
// exactly the item's key.
func (m Model) ToggleItem(item domain.Item, props Props) Model {
	if item.Disabled() {
		return m
	}
	key := m.opts.Fields.Key(item)
	if key == nil {
		return m
	}

	if m.opts.Single {
		m = m.Submit()
		m.cb.OnSelectionChange(logic.Toggle(props.Selected, key, true))
		return m
	}

	m.cb.OnSelectionChange(logic.Toggle(props.Selected, key, false))
	return m
}

// RemoveTag drops key from the selection
func (m Model) RemoveTag(key domain.Key, props Props) Model {
	m.cb.OnSelectionChange(logic.Remove(props.Selected, key))
	return m
}

// ClearAll empties the selection and closes the list
func (m Model) ClearAll() Model {
	m.cb.OnSelectionChange(logic.Clear())
	if m.open {
		m = m.ToggleList()
	}
	m.tagCursor = -1
	m.input.ClearSearch()
	m.cursor = m.cursor.Reset()
	m.cb.OnClearSelector()
	return m
}

// SetSearch replaces the search text as if the user had typed it
func (m Model) SetSearch(text string) Model {
	m.input.TextInput().SetValue(text)
	m.cursor = m.cursor.Reset()
	m.cb.OnChangeInput(text)
	return m
}

// AddItem creates an item from the search text when the widget offers one
func (m Model) AddItem(props Props) Model {
	return m.addItem(m.snapshot(props), props)
}

func (m Model) addItem(snap snapshot, props Props) Model {
	if !snap.addRow {
		return m
	}
	items, selected, ok := logic.AddItem(props.Items, props.Selected, m.opts.Fields, snap.search)
	if !ok {
		return m
	}
	log.Printf("multiselect: adding item %q", logic.NewItemKey(snap.search))

	m.cb.OnAddItem(items)
	m.cb.OnSelectionChange(selected)
	m.input.ClearSearch()
	m.cursor = m.cursor.Reset()
	return m
}

// SelectLabel returns the text of the dropdown header
func (m Model) SelectLabel(props Props) string {
	if len(props.Selected) == 0 {
		return m.opts.SelectText
	}
	if m.opts.Single {
		item, ok := m.opts.Fields.FindItem(props.Items, props.Selected[0])
		if !ok {
			return m.opts.SelectText
		}
		if display, ok := m.opts.Fields.Display(item); ok {
			return display
		}
		return m.opts.SelectText
	}
	return fmt.Sprintf("%s (%d selected)", m.opts.SelectText, len(props.Selected))
}

// VisibleItems returns the rows the open list shows for props
func (m Model) VisibleItems(props Props) []domain.Item {
	return m.snapshot(props).visible
}

// OffersAddItem reports whether the add row is shown for props
func (m Model) OffersAddItem(props Props) bool {
	return m.snapshot(props).addRow
}

// View renders the widget for props
func (m Model) View(props Props) string {
	snap := m.snapshot(props)
	cursor := m.cursor.SetHeight(m.windowHeight(snap)).Clamp(snap.rowCount())

	state := views.ViewState{
		Width:        m.opts.Width,
		Open:         m.open,
		Label:        m.SelectLabel(props),
		HasSelection: len(props.Selected) > 0,
		Tags:         snap.tagNames,
		TagCursor:    m.tagCursor,
	}

	if m.open {
		state.Editable = m.opts.TextInputEditable
		state.SearchIcon = m.opts.SearchIcon
		state.SearchView = m.input.TextInput().View()
		state.ShowIndicator = !m.opts.HideDropdown
		state.Rows, state.HiddenAbove, state.HiddenBelow = m.rows(snap, cursor, props)
		if len(snap.visible) == 0 && !m.opts.CanAddItems {
			state.NoItemsText = m.opts.NoItemsText
		}
		if m.opts.FixedHeight {
			state.MinRows = m.fixedBodyRows()
		}
	}

	if !m.opts.HideHelp {
		tags := len(snap.tagKeys)
		state.HelpView = m.help.ShortHelpView(m.keys.bindingsFor(m.input.Mode(), tags, m.opts.Single))
	}

	return m.renderer.Render(state)
}

func (m Model) rows(snap snapshot, cursor logic.ListCursor, props Props) ([]views.Row, bool, bool) {
	start, end := cursor.Window()
	n := len(snap.visible)
	rows := make([]views.Row, 0, end-start)

	for i := start; i < end; i++ {
		row := views.Row{Cursor: i == cursor.Index()}
		switch {
		case i < n:
			item := snap.visible[i]
			row.Kind = views.RowItem
			row.Label, _ = m.opts.Fields.Display(item)
			row.Selected = logic.Contains(props.Selected, m.opts.Fields.Key(item))
			row.Disabled = item.Disabled()
		case snap.addRow && i == n:
			row.Kind = views.RowAdd
			row.Label = snap.search
		default:
			row.Kind = views.RowSubmit
			row.Label = m.opts.SubmitButtonText
		}
		rows = append(rows, row)
	}

	return rows, cursor.HasAbove(), cursor.HasBelow()
}

func focusTag(current, delta, count int) int {
	if count == 0 {
		return -1
	}
	if current < 0 {
		if delta < 0 {
			return count - 1
		}
		return 0
	}
	return clampTag(current+delta, count)
}

func clampTag(index, count int) int {
	if count == 0 || index < 0 {
		return -1
	}
	if index >= count {
		return count - 1
	}
	return index
}
