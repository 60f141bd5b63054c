package input

// ModelContext implements the Context interface from a snapshot of widget
// state taken at the start of an update
type ModelContext struct {
	Editable    bool
	Tags        int
	Visible     int
	OnAddRow    bool
	OnSubmitRow bool
}

// TagCount returns the number of rendered tags
func (c ModelContext) TagCount() int {
	return c.Tags
}

// VisibleCount returns the number of item rows after filtering
func (c ModelContext) VisibleCount() int {
	return c.Visible
}

// CursorOnAddRow reports whether the cursor is on the "add item" row
func (c ModelContext) CursorOnAddRow() bool {
	return c.OnAddRow
}

// CursorOnSubmit reports whether the cursor is on the submit button
func (c ModelContext) CursorOnSubmit() bool {
	return c.OnSubmitRow
}

// SearchEditable reports whether opening the list focuses the search input
func (c ModelContext) SearchEditable() bool {
	return c.Editable
}
