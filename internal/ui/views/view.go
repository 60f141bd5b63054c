package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RowKind tells the renderer what a list row represents
type RowKind int

const (
	RowItem RowKind = iota
	RowAdd
	RowSubmit
)

// Row is one line of the open list
type Row struct {
	Kind     RowKind
	Label    string // display text; empty renders nothing for item rows
	Selected bool
	Disabled bool
	Cursor   bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width int

	Open         bool
	Label        string
	HasSelection bool

	// Closed view
	Tags      []string
	TagCursor int // -1 when no tag is focused

	// Open view header
	Editable      bool
	SearchIcon    string
	SearchView    string
	ShowIndicator bool

	// Open view body
	Rows        []Row
	HiddenAbove bool
	HiddenBelow bool
	MinRows     int    // pad the body to this many lines
	NoItemsText string // shown instead of rows when set

	HelpView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Styles returns the styles in use
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Open {
		return r.renderOpen(state)
	}
	return r.renderClosed(state)
}

func (r *Renderer) renderClosed(state ViewState) string {
	content := &strings.Builder{}
	content.WriteString(r.labelLine(state, "▾"))

	if len(state.Tags) > 0 {
		content.WriteString("\n")
		content.WriteString(r.renderTags(state))
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return content.String()
}

func (r *Renderer) renderOpen(state ViewState) string {
	var lines []string

	if state.Editable {
		header := r.styles.SearchIcon.Render(state.SearchIcon) + state.SearchView
		if state.ShowIndicator {
			header = r.padBetween(header, r.styles.Indicator.Render("▴"), r.innerWidth(state))
		}
		lines = append(lines, header)
	} else {
		lines = append(lines, r.labelLine(state, "▴"))
	}

	body := r.renderRows(state)
	for len(body) < state.MinRows {
		body = append(body, "")
	}
	lines = append(lines, body...)

	box := r.styles.Container
	if state.Width > 0 {
		box = box.Width(r.innerWidth(state) + box.GetHorizontalPadding())
	}
	out := box.Render(strings.Join(lines, "\n"))

	if state.HelpView != "" {
		out += "\n" + r.styles.Help.Render(state.HelpView)
	}
	return out
}

func (r *Renderer) renderRows(state ViewState) []string {
	var lines []string

	if state.HiddenAbove {
		lines = append(lines, r.styles.Scroll.Render("  ↑ more"))
	}

	if state.NoItemsText != "" {
		lines = append(lines, r.styles.NoItems.Render(state.NoItemsText))
	}

	width := r.innerWidth(state)
	for _, row := range state.Rows {
		lines = append(lines, r.renderRow(row, width))
	}

	if state.HiddenBelow {
		lines = append(lines, r.styles.Scroll.Render("  ↓ more"))
	}

	return lines
}

func (r *Renderer) renderRow(row Row, width int) string {
	prefix := "  "
	if row.Cursor {
		prefix = "› "
	}

	var line string
	switch row.Kind {
	case RowAdd:
		line = prefix + r.styles.AddRow.Render(fmt.Sprintf("Add %s (press enter)", row.Label))
	case RowSubmit:
		style := r.styles.Button
		if row.Cursor {
			style = r.styles.ButtonFocused
		}
		line = prefix + style.Render("[ "+row.Label+" ]")
	default:
		if row.Label == "" {
			line = prefix
			break
		}
		style := r.styles.Item
		switch {
		case row.Disabled:
			style = r.styles.ItemDisabled
		case row.Selected:
			style = r.styles.ItemSelected
		}
		left := prefix + style.Render(row.Label)
		if row.Selected {
			line = r.padBetween(left, r.styles.Check.Render("✓"), width)
		} else {
			line = left
		}
	}

	if row.Cursor {
		line = r.styles.CursorBg.Render(r.padRight(line, width))
	}
	return line
}

// renderTags lays tags out left to right, wrapping at the view width
func (r *Renderer) renderTags(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}

	var rows []string
	var current []string
	currentWidth := 0

	for i, label := range state.Tags {
		style := r.styles.Tag
		if i == state.TagCursor {
			style = r.styles.TagFocused
		}
		tag := style.Render(label + " " + r.styles.TagRemove.Render("✕"))
		tagWidth := lipgloss.Width(tag)

		if currentWidth > 0 && currentWidth+tagWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			currentWidth = 0
		}
		current = append(current, tag)
		currentWidth += tagWidth
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) labelLine(state ViewState, indicator string) string {
	style := r.styles.LabelPlaceholder
	if state.HasSelection {
		style = r.styles.Label
	}
	label := style.Render(state.Label)
	if indicator == "" {
		return label
	}
	return r.padBetween(label, r.styles.Indicator.Render(indicator), r.innerWidth(state))
}

// innerWidth is the usable width inside the open container
func (r *Renderer) innerWidth(state ViewState) int {
	width := state.Width
	if width <= 0 {
		width = 40
	}
	inner := width - r.styles.Container.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	return inner
}

// padBetween puts left and right at opposite ends of a line
func (r *Renderer) padBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
