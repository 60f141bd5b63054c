package logic

// ListCursor tracks the highlighted row and the scroll offset of a list
// shown through a window of fixed height
type ListCursor struct {
	index  int
	offset int
	height int
	total  int
}

// NewListCursor creates a cursor for a window of the given height
func NewListCursor(height int) ListCursor {
	if height < 1 {
		height = 1
	}
	return ListCursor{height: height}
}

// Index returns the highlighted row
func (c ListCursor) Index() int {
	return c.index
}

// Offset returns the first row inside the window
func (c ListCursor) Offset() int {
	return c.offset
}

// Height returns the window height
func (c ListCursor) Height() int {
	return c.height
}

// SetHeight changes the window height and keeps the cursor visible
func (c ListCursor) SetHeight(height int) ListCursor {
	if height < 1 {
		height = 1
	}
	c.height = height
	return c.ensureVisible()
}

// Clamp adapts the cursor to a list of total rows, e.g. after filtering
func (c ListCursor) Clamp(total int) ListCursor {
	if total < 0 {
		total = 0
	}
	c.total = total
	if c.index >= total {
		c.index = total - 1
	}
	if c.index < 0 {
		c.index = 0
	}
	return c.ensureVisible()
}

// Move shifts the cursor by delta rows, stopping at both ends
func (c ListCursor) Move(delta int) ListCursor {
	c.index += delta
	return c.Clamp(c.total)
}

// PageUp moves one window up
func (c ListCursor) PageUp() ListCursor {
	return c.Move(-c.height)
}

// PageDown moves one window down
func (c ListCursor) PageDown() ListCursor {
	return c.Move(c.height)
}

// Home moves to the first row
func (c ListCursor) Home() ListCursor {
	c.index = 0
	return c.Clamp(c.total)
}

// End moves to the last row
func (c ListCursor) End() ListCursor {
	c.index = c.total - 1
	return c.Clamp(c.total)
}

// Reset moves back to the top
func (c ListCursor) Reset() ListCursor {
	c.index = 0
	c.offset = 0
	return c
}

// Window returns the half-open row range [start, end) inside the window
func (c ListCursor) Window() (start, end int) {
	start = c.offset
	end = c.offset + c.height
	if end > c.total {
		end = c.total
	}
	if start > end {
		start = end
	}
	return start, end
}

// HasAbove reports whether rows are hidden above the window
func (c ListCursor) HasAbove() bool {
	return c.offset > 0
}

// HasBelow reports whether rows are hidden below the window
func (c ListCursor) HasBelow() bool {
	return c.offset+c.height < c.total
}

func (c ListCursor) ensureVisible() ListCursor {
	if c.index < c.offset {
		c.offset = c.index
	}
	if c.index >= c.offset+c.height {
		c.offset = c.index - c.height + 1
	}
	maxOffset := c.total - c.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
	return c
}
