package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

// ScoreRecorder stores finished games. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(rec storage.GameRecord) (int64, error)
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	recorder   ScoreRecorder
	logger     *log.Logger
	sessionID  string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	showHelp   bool
	quitting   bool
	backToMenu bool
	recorded   bool // current game already written to the recorder
}

// NewGameModel creates a model for game. recorder may be nil.
func NewGameModel(game registry.Game, recorder ScoreRecorder, cfg core.RuntimeConfig, sessionID string, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.ShowAll = true

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   recorder,
		logger:     logger,
		sessionID:  sessionID,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.recordGame()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.recordGame()
		m.backToMenu = true
		return m, tea.Quit // a hosting session swallows this
	case action == core.ActionRestart && m.gameState.Paused:
		// Restart is ignored while paused
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The game keeps its board; only the layout changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	restart := m.inputFrame.Has(core.ActionRestart)
	if restart {
		// The finished or abandoned game is recorded before the board is cleared.
		m.recordGame()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if restart {
		m.recorded = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver {
		m.recordGame()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordGame writes the current game to the recorder once.
// Games that never scored are not recorded.
func (m *GameModel) recordGame() {
	if m.recorded || m.recorder == nil || m.gameState.Score <= 0 {
		return
	}
	m.recorded = true

	rec := storage.GameRecord{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		MaxTile:   m.gameState.MaxTile,
		Moves:     m.gameState.Moves,
		Won:       m.gameState.Won,
	}
	if _, err := m.recorder.SaveScore(rec); err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save score", "game", rec.GameID, "score", rec.Score, "error", err)
		return
	}
	m.logger.Debug("score saved", "game", rec.GameID, "score", rec.Score, "session", m.sessionID)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".term2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.viewHelp()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// viewHelp renders the full key reference.
func (m GameModel) viewHelp() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Render(m.game.Title() + " - Controls")

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(m.help.View(m.keyMapper.Keys()))

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", body)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, recorder ScoreRecorder, cfg core.RuntimeConfig, sessionID string, logger *log.Logger) error {
	model := NewGameModel(game, recorder, cfg, sessionID, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
