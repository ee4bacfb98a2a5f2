package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateGoals
	stateGame
	stateScores
)

// SessionModel manages the full session flow: menu -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store     *storage.Store
	logger    *log.Logger
	settings  core.GameSettings
	config    core.RuntimeConfig
	username  string
	sessionID string
	state     sessionState
	menu      MenuModel
	goals     GoalModel
	scores    ScoreboardModel
	game      *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model. store may be nil.
func NewSessionModel(store *storage.Store, settings core.GameSettings, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	sessionID := uuid.NewString()

	return SessionModel{
		store:     store,
		logger:    logger.With("session", sessionID),
		settings:  settings,
		config:    cfg,
		username:  username,
		sessionID: sessionID,
		state:     stateMenu,
		menu:      NewMenuModel(store, cfg),
	}
}

// SessionID returns the session's unique ID.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateGoals:
		return m.updateGoals(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	// Sub-models quit their own program when they finish; the session swallows that.
	switch result := m.menu.Result(); {
	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.state = stateScores
		return m, m.scores.Init()
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case result.ChooseGoal:
		m.goals = NewGoalModel(m.config.ScreenW, m.config.ScreenH)
		m.state = stateGoals
		return m, m.goals.Init()
	case result.GameID != "":
		return m.startGame(result.GameID, m.settings)
	}

	return m, cmd
}

// updateGoals handles updates when picking a goal.
func (m SessionModel) updateGoals(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGoals, cmd := m.goals.Update(msg)
	if goalModel, ok := newGoals.(GoalModel); ok {
		m.goals = goalModel
	}

	switch {
	case m.goals.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.goals.WantsBack():
		return m.toMenu()
	case m.goals.Selected() != nil:
		sel := m.goals.Selected()
		return m.startGame(sel.GameID(), sel.Apply(m.settings))
	}

	return m, cmd
}

// updateScores handles updates when viewing the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scoreModel, ok := newScores.(ScoreboardModel); ok {
		m.scores = scoreModel
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	// Check if user quit game (back to menu)
	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}

	// Check if user quit entirely
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// startGame creates the game and switches to it.
func (m SessionModel) startGame(gameID string, settings core.GameSettings) (tea.Model, tea.Cmd) {
	gameID = t2048.ResolveID(gameID, settings)
	if m.store != nil {
		settings.HighScores = storage.NewHighScoreKeeper(m.store, gameID, m.logger)
	}

	game, err := registry.Create(gameID, settings)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		m.logger.Error("could not create game", "game", gameID, "error", err)
		return m.toMenu()
	}

	m.logger.Info("game started", "user", m.username, "game", gameID, "target", max(settings.Target, 0))

	gameModel := NewGameModel(game, StoreRecorder(m.store), m.config, m.sessionID, m.logger)
	m.game = &gameModel
	m.state = stateGame

	return m, m.game.Init()
}

// toMenu rebuilds the menu so best scores are fresh.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config)
	m.state = stateMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.game.View()
	case stateGoals:
		return m.goals.View()
	case stateScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// StoreRecorder returns store as a ScoreRecorder, or nil when there is no store.
func StoreRecorder(store *storage.Store) ScoreRecorder {
	if store == nil {
		return nil
	}
	return store
}
