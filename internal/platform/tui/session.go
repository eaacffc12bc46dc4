package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris-wars/internal/core"
	"github.com/vovakirdan/tetris-wars/internal/storage"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

// GameFactory creates a fresh game that spawns the given shape.
type GameFactory func(shape tetromino.Shape) Game

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenJournal
)

// SessionModel manages the full session flow: menu -> game -> menu, with the
// journal one key away from the menu. It is the top-level model for SSH
// sessions and for local play without a shape.
type SessionModel struct {
	newGame  GameFactory
	store    *storage.Store
	config   core.RuntimeConfig
	current  sessionScreen
	menu     MenuModel
	game     Model
	journal  JournalModel
	quitting bool
}

// NewSessionModel creates a new session model. store may be nil.
func NewSessionModel(newGame GameFactory, store *storage.Store, cfg core.RuntimeConfig, initial tetromino.Shape) SessionModel {
	return SessionModel{
		newGame: newGame,
		store:   store,
		config:  cfg,
		menu:    NewMenuModel(cfg, initial),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenJournal:
		return m.updateJournal(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.Selected() != nil:
		shape := *m.menu.Selected()
		m.game = NewModel(m.newGame(shape), m.config).WithBackToMenu()
		m.current = screenGame
		m.menu = NewMenuModel(m.config, shape)
		return m, m.game.Init()

	case m.menu.WantsJournal():
		m.journal = NewJournalModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.current = screenJournal
		m.menu = NewMenuModel(m.config, m.menu.shapes[m.menu.cursor])
		return m, m.journal.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.current = screenMenu
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.journal.Update(msg)
	if journal, ok := next.(JournalModel); ok {
		m.journal = journal
	}

	if m.journal.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.journal.IsGoingBack() {
		m.current = screenMenu
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenJournal:
		return m.journal.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session locally.
func RunSession(newGame GameFactory, store *storage.Store, cfg core.RuntimeConfig, initial tetromino.Shape) error {
	p := tea.NewProgram(NewSessionModel(newGame, store, cfg, initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
