package ui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui/multiselect"
)

// Model is the full-screen host around the selector. It owns the item list
// and the selection and feeds both to the widget on every update.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	widget multiselect.Model

	items    []domain.Item
	selected []domain.Key
	source   string

	// UI-specific state
	width       int
	height      int
	listOpen    bool
	accepted    bool
	pickedOne   bool // single mode: a choice was made during this update
	inPagerMode bool
	showHelp    bool
	helpOffset  int

	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	titleStyle   lipgloss.Style
	hintStyle    lipgloss.Style

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the host model. bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, items []domain.Item, selected []domain.Key) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		items:        items,
		selected:     append([]domain.Key{}, selected...),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(),
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		hintStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
	m.widget = multiselect.New(cfg.ToOptions(), m.callbacks())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// SetSource names where the items came from, for the title line
func (m *Model) SetSource(name string) {
	m.source = name
}

// Result returns the final selection and whether the user accepted it
func (m *Model) Result() ([]domain.Key, bool) {
	return m.selected, m.accepted
}

// Items returns the current item list, including added items
func (m *Model) Items() []domain.Item {
	return m.items
}

func (m *Model) props() multiselect.Props {
	return multiselect.Props{Items: m.items, Selected: m.selected}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// callbacks wires the widget's change requests to the host state. They run
// synchronously inside widget.Update.
func (m *Model) callbacks() multiselect.Callbacks {
	return multiselect.Callbacks{
		OnSelectionChange: func(selected []domain.Key) {
			m.selected = selected
			if m.config.Behavior.Single && len(selected) > 0 {
				m.pickedOne = true
			}
			m.publish(eventbus.SelectionChangedEvent{Selected: selected})
		},
		OnAddItem: func(items []domain.Item) {
			m.items = items
			if len(items) == 0 {
				return
			}
			fields := m.widget.Options().Fields
			added := items[len(items)-1]
			label, _ := fields.Display(added)
			m.publish(eventbus.ItemAddedEvent{Key: fields.Key(added), Label: label, Total: len(items)})
		},
		OnChangeInput: func(text string) {
			m.publish(eventbus.SearchChangedEvent{Text: text})
		},
		OnToggleList: func() {
			m.listOpen = !m.listOpen
			m.publish(eventbus.ListToggledEvent{Open: m.listOpen})
		},
		OnClearSelector: func() {
			m.publish(eventbus.SelectorClearedEvent{})
		},
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.widget.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			return m.handleHelpKey(msg)
		}

		switch msg.Type {
		case tea.KeyCtrlC:
			return m, m.quit(false)
		case tea.KeyCtrlS:
			return m, m.quit(true)
		}

		// Letter shortcuts only while the widget is not taking text
		if !m.widget.IsTyping() {
			switch msg.String() {
			case "q":
				return m, m.quit(false)
			case "?":
				return m, m.openHelp()
			}
		}

		var cmd tea.Cmd
		m.pickedOne = false
		m.widget, cmd = m.widget.Update(msg, m.props())
		if m.pickedOne {
			m.pickedOne = false
			return m, tea.Batch(cmd, m.quit(true))
		}
		return m, cmd

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the inline help
			log.Printf("Help pager failed: %v", msg.err)
			m.showHelp = true
			m.helpOffset = 0
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Cursor blink and other textinput messages
		var cmd tea.Cmd
		m.widget, cmd = m.widget.Update(msg, m.props())
		return m, cmd
	}
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, m.quit(false)
	case "j", "down":
		m.helpOffset++
	case "k", "up":
		if m.helpOffset > 0 {
			m.helpOffset--
		}
	default:
		m.showHelp = false
	}
	return m, nil
}

// openHelp shows the key help in the ov pager, or inline when no program
// is attached
func (m *Model) openHelp() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent(m.config.Behavior.Editable, m.config.Behavior.Single)
	if m.program == nil {
		m.showHelp = true
		m.helpOffset = 0
		return nil
	}
	return m.fetchHelpPager(content)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) quit(accept bool) tea.Cmd {
	if accept {
		m.accepted = true
		m.publish(eventbus.SelectionAcceptedEvent{Selected: m.selected})
	}
	return tea.Quit
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	if m.showHelp {
		content := m.helpRenderer.RenderHelpContent(m.config.Behavior.Editable, m.config.Behavior.Single)
		height := m.height
		if height == 0 {
			height = 24
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1)
		return box.Render(m.helpRenderer.renderHelpContent(content, height, m.helpOffset))
	}

	var b strings.Builder
	title := "multiselect"
	if m.source != "" {
		title = fmt.Sprintf("multiselect · %s", m.source)
	}
	b.WriteString(m.titleStyle.Render(title))
	b.WriteString(m.hintStyle.Render(fmt.Sprintf("  %d items", len(m.items))))
	b.WriteString("\n\n")

	b.WriteString(m.widget.View(m.props()))
	b.WriteString("\n\n")
	b.WriteString(m.hintStyle.Render("ctrl+s accept • ? help • q quit"))

	return b.String()
}
