package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	muted   lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func helpSections(editable, single bool) []helpSection {
	pick := "Toggle item"
	if single {
		pick = "Choose item and close"
	}
	typing := "Search input is read-only"
	if editable {
		typing = "Type to filter the list"
	}

	return []helpSection{
		{"Closed", []helpEntry{
			{"Enter, Space, ↓, j", "Open the list"},
			{"←/→, h/l", "Focus previous/next tag"},
			{"Backspace, x", "Remove focused (or last) tag"},
			{"Ctrl+X, X", "Clear all selected items"},
		}},
		{"Open list", []helpEntry{
			{"↑/↓, Ctrl+P/N", "Move"},
			{"j/k, g/G", "Move, top/bottom (list without search)"},
			{"PgUp/PgDn", "Page up/down"},
			{"Enter, Space", pick},
			{"Tab, Esc", "Done: close and clear search"},
			{"Ctrl+X", "Clear all and close"},
		}},
		{"Search", []helpEntry{
			{"letters", typing},
			{"Enter on Add row", "Add the typed text as a new item"},
		}},
		{"Other", []helpEntry{
			{"Ctrl+S", "Accept and print the selection"},
			{"?", "Show this help"},
			{"q, Ctrl+C", "Quit without accepting"},
		}},
	}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(editable, single bool) string {
	var help strings.Builder

	help.WriteString(r.title.Render("multiselect Help"))
	help.WriteString("\n")

	sections := helpSections(editable, single)
	width := 0
	for _, s := range sections {
		for _, e := range s.entries {
			width = max(width, lipgloss.Width(e.keys))
		}
	}

	for i, s := range sections {
		help.WriteString(r.section.Render(s.title))
		help.WriteString("\n")
		for _, e := range s.entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(e.keys)+2)
			help.WriteString(fmt.Sprintf("  %s%s%s\n", r.key.Render(e.keys), pad, r.desc.Render(e.desc)))
		}
		if i < len(sections)-1 {
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(r.muted.Italic(true).Render("  Filter: words match anywhere (partial) or the whole text as typed (full)"))

	return help.String()
}

// renderHelpContent renders a scrolled window of the help for the inline
// fallback shown when the pager cannot run
func (r *HelpRenderer) renderHelpContent(content string, height int, scrollOffset int) string {
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Account for popup border and padding
	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines <= visibleHeight {
		return content
	}

	maxOffset := totalLines - visibleHeight
	scrollOffset = min(max(scrollOffset, 0), maxOffset)

	endLine := scrollOffset + visibleHeight
	visibleLines := append([]string(nil), lines[scrollOffset:endLine]...)

	if scrollOffset > 0 {
		visibleLines[0] = r.muted.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visibleLines[len(visibleLines)-1] = r.muted.Render("↓ (more below)")
	}

	return strings.Join(visibleLines, "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps() *HelpOps {
	return &HelpOps{}
}

// SetProgram sets the program reference for terminal management
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to fully exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Leave nothing behind on our screen when ov exits
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
