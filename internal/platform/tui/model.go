package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ScoreSaver records finished games. *storage.Store satisfies it.
type ScoreSaver interface {
	SaveResult(r storage.GameResult) (int64, error)
	HighScore(size int) (int, error)
}

// Options configures a Model.
type Options struct {
	Store    ScoreSaver  // nil disables score recording
	Logger   *log.Logger // nil discards log output
	ShowHelp bool        // start with the full key help open
}

// session is the per-game bookkeeping shared by the model and the engine
// listeners. Bubble Tea copies the model on every update, so it lives
// behind a pointer.
type session struct {
	gameID string
	best   int
}

// Model is the Bubble Tea model for playing 2048.
type Model struct {
	engine  *t2048.Engine
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	store   ScoreSaver
	logger  *log.Logger
	session *session
	width   int
	height  int

	quitting bool
}

// NewModel creates a model around engine and registers the engine
// listeners that log moves and record results.
func NewModel(engine *t2048.Engine, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = opts.ShowHelp

	m := Model{
		engine:  engine,
		keys:    DefaultKeyMap(),
		help:    h,
		store:   opts.Store,
		logger:  logger,
		session: &session{gameID: uuid.NewString()},
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.width, m.boardHeight())

	if m.store != nil {
		best, err := m.store.HighScore(engine.Size())
		if err != nil {
			logger.Warn("cannot load high score", "err", err)
		}
		m.session.best = best
	}

	engine.OnMove(func(s *t2048.GameState) {
		logger.Debug("move", "game", m.session.gameID, "score", s.Score, "max", t2048.MaxTile(s.Grid))
	})
	engine.OnWin(func(s *t2048.GameState) {
		logger.Info("game won", "game", m.session.gameID, "score", s.Score)
		m.record(s)
	})
	engine.OnLose(func(s *t2048.GameState) {
		logger.Info("game over", "game", m.session.gameID, "score", s.Score, "max", t2048.MaxTile(s.Grid))
		m.record(s)
	})

	return m
}

// record saves the current game. Repeated calls for the same game update
// the stored row.
func (m Model) record(s *t2048.GameState) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.GameResult{
		GameID:  m.session.gameID,
		Size:    m.engine.Size(),
		Score:   s.Score,
		MaxTile: t2048.MaxTile(s.Grid),
		Moves:   m.engine.Moves(),
		Won:     s.Won,
	})
	if err != nil {
		m.logger.Error("cannot save result", "game", m.session.gameID, "err", err)
	}
}

// Init implements tea.Model. The engine is already playable.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.boardHeight())
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		// A won game still in progress keeps its latest score
		if s := m.engine.GameState(); s.Won && !s.Over {
			m.record(s)
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.updateBest()
		m.engine.Reset()
		m.session.gameID = uuid.NewString()
		m.logger.Debug("new game", "game", m.session.gameID, "size", m.engine.Size())

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.boardHeight())

	default:
		if dir, ok := t2048.DirectionFor(action); ok {
			if _, err := m.engine.Move(dir); err != nil {
				m.logger.Error("move failed", "dir", dir, "err", err)
			}
			m.updateBest()
		}
	}

	return m, nil
}

// updateBest raises the best score to the current score if needed.
func (m Model) updateBest() {
	if score := m.engine.GameState().Score; score > m.session.best {
		m.session.best = score
	}
}

// Engine returns the engine the model drives.
func (m Model) Engine() *t2048.Engine {
	return m.engine
}

// GameID returns the identifier of the game in progress.
func (m Model) GameID() string {
	return m.session.gameID
}

// Best returns the best score seen for this board size.
func (m Model) Best() int {
	return m.session.best
}

// boardHeight is the screen height left after the status and help lines.
func (m Model) boardHeight() int {
	return core.Max(1, m.height-1-lipgloss.Height(m.help.View(m.keys)))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen)

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	status := fmt.Sprintf("Best: %d  Board: %dx%d", m.session.best, m.engine.Size(), m.engine.Size())

	return RenderScreen(m.screen) + "\n" +
		statusStyle.Render(status) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for engine.
func Run(engine *t2048.Engine, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(engine, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
