package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris-wars/internal/core"
	"github.com/vovakirdan/tetris-wars/internal/games/tetris"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the shape picker.
type MenuModel struct {
	shapes      []tetromino.Shape
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keys        ListKeyMap
	help        help.Model
	quitting    bool
	selected    *tetromino.Shape // Set when user picks a shape
	openJournal bool             // True if user pressed Tab for the journal
}

// NewMenuModel creates a new menu model with the cursor on initial.
func NewMenuModel(cfg core.RuntimeConfig, initial tetromino.Shape) MenuModel {
	shapes := tetromino.Shapes()
	cursor := 0
	for i, s := range shapes {
		if s == initial {
			cursor = i
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		shapes: shapes,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultListKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.shapes)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		selected := m.shapes[m.cursor]
		m.selected = &selected

	case key.Matches(msg, m.keys.Journal):
		m.openJournal = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  T E T R I S   W A R S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a shape", m.width))
	b.WriteString("\n\n")

	for i, s := range m.shapes {
		line := fmt.Sprintf("  %s", s)
		if i == m.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %s", s))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Preview of the highlighted shape
	b.WriteString("\n")
	style := styleFor(tetris.ShapeColor(m.shapes[m.cursor]))
	for _, row := range tetromino.Diagram(m.shapes[m.cursor]) {
		b.WriteString(centerText(style.Render(row), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked shape, or nil if none was picked yet.
func (m MenuModel) Selected() *tetromino.Shape {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsJournal returns true if user requested the journal.
func (m MenuModel) WantsJournal() bool {
	return m.openJournal
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
