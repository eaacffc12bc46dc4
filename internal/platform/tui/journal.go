package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris-wars/internal/storage"
)

// Journal layout constants
const (
	maxSessions = 100 // Max sessions to load
	maxMoves    = 500 // Max moves to load per session
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// JournalModel browses journaled sessions and, after Select, the moves of
// one session.
type JournalModel struct {
	store     *storage.Store
	sessions  []storage.SessionEntry
	moves     []storage.MoveEntry
	counts    map[string]int
	viewing   string // Session whose moves are shown, empty for the list
	table     table.Model
	help      help.Model
	keys      ListKeyMap
	width     int
	height    int
	err       error
	quitting  bool
	goingBack bool
}

// NewJournalModel creates a journal browser. A nil store shows an empty list.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	keys := DefaultListKeyMap()
	keys.Journal.SetEnabled(false)

	h := help.New()
	h.Width = width

	m := JournalModel{
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.loadSessions()
	return m
}

func tableHeight(height int) int {
	return max(height-8, 3) // Leave room for header, help, and margins
}

// newTable creates a table with the journal styles.
func (m *JournalModel) newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(m.height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions shows the recent sessions list.
func (m *JournalModel) loadSessions() {
	m.viewing = ""
	m.moves = nil
	m.counts = nil
	m.sessions = nil
	m.err = nil

	if m.store != nil {
		m.sessions, m.err = m.store.RecentSessions(maxSessions)
	}

	m.table = m.newTable([]table.Column{
		{Title: "Session", Width: 10},
		{Title: "Shape", Width: 6},
		{Title: "Direction", Width: 14},
		{Title: "Moves", Width: 6},
		{Title: "Started", Width: 14},
	})
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			shortID(s.ID),
			s.Shape,
			s.Direction,
			fmt.Sprintf("%d", s.MoveCount),
			s.StartedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// loadMoves shows the moves of one session.
func (m *JournalModel) loadMoves(id string) {
	m.viewing = id
	m.moves, m.err = m.store.Moves(id, maxMoves)
	if m.err == nil {
		m.counts, m.err = m.store.ClassificationCounts(id)
	}

	m.table = m.newTable([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Action", Width: 12},
		{Title: "Result", Width: 15},
		{Title: "Pose", Width: 22},
	})
	rows := make([]table.Row, len(m.moves))
	for i, mv := range m.moves {
		rows[i] = table.Row{
			fmt.Sprintf("%d", mv.Seq),
			mv.Action,
			mv.Classification,
			fmt.Sprintf("(%g, %g) %.0f°", mv.PoseX, mv.PoseY, mv.PoseAngle*180/math.Pi),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shortID keeps the journal table narrow; full ids are printed by the CLI.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.viewing != "" {
				m.loadSessions()
				return m, nil
			}
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if m.viewing == "" && len(m.sessions) > 0 {
				m.loadMoves(m.sessions[m.table.Cursor()].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(tableHeight(m.height))
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "JOURNAL"
	if m.viewing != "" {
		title = fmt.Sprintf("JOURNAL - session %s", m.viewing)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(centerText(emptyStyle.Render(fmt.Sprintf("Cannot read journal: %v", m.err)), m.width))
	case m.viewing == "" && len(m.sessions) == 0:
		b.WriteString(centerText(emptyStyle.Render("No sessions recorded yet.\nPlay a piece to start one!"), m.width))
	case m.viewing != "" && len(m.moves) == 0:
		b.WriteString(centerText(emptyStyle.Render("No moves in this session."), m.width))
	default:
		b.WriteString(centerText(frameStyle.Render(m.table.View()), m.width))
	}
	b.WriteString("\n")

	if m.viewing != "" && len(m.counts) > 0 {
		b.WriteString(centerText(m.countsLine(), m.width))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m JournalModel) countsLine() string {
	parts := make([]string, 0, 3)
	for _, c := range []string{"unobstructed", "overrun_top", "overrun_bottom"} {
		parts = append(parts, fmt.Sprintf("%s %d", c, m.counts[c]))
	}
	return strings.Join(parts, "  ")
}

// Viewing returns the session whose moves are shown, or empty for the list.
func (m JournalModel) Viewing() string {
	return m.viewing
}

// IsGoingBack returns true if user wants to go back to menu.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal browser on its own.
func RunJournal(store *storage.Store, width, height int) error {
	m := NewJournalModel(store, width, height)
	m.keys.Back.SetHelp("esc/b", "back/quit")

	p := tea.NewProgram(journalProgram{m}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// journalProgram quits when the standalone journal is backed out of.
type journalProgram struct {
	JournalModel
}

func (p journalProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.JournalModel.Update(msg)
	if jm, ok := next.(JournalModel); ok {
		p.JournalModel = jm
	}
	if p.IsGoingBack() {
		return p, tea.Quit
	}
	return p, cmd
}
