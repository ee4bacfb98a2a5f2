package t2048

import (
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Registry IDs for the two modes.
const (
	IDClassic = "2048"
	IDEndless = "2048_endless"
)

// Game adapts a Session to the platform's tick-driven Game interface.
type Game struct {
	mode     Mode
	settings core.GameSettings
	session  *Session
	last     MoveResult
	tick     uint64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	showWin  bool // win banner, dismissed by the next move
}

// New creates a classic 2048 game.
func New(settings core.GameSettings) *Game {
	return &Game{mode: ModeClassic, settings: settings}
}

// NewEndless creates a game without a target tile.
func NewEndless(settings core.GameSettings) *Game {
	return &Game{mode: ModeEndless, settings: settings}
}

func init() {
	registry.Register(IDClassic, func(s core.GameSettings) registry.Game {
		return New(s)
	})
	registry.Register(IDEndless, func(s core.GameSettings) registry.Game {
		return NewEndless(s)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// ResolveID returns the mode a game ID plays under settings.
// Classic without a target is endless, so its scores land on the endless board.
func ResolveID(id string, s core.GameSettings) string {
	if id == IDClassic && s.Target < 0 {
		return IDEndless
	}
	return id
}

// RulesFromSettings fills unset settings with the classic defaults.
func RulesFromSettings(s core.GameSettings, mode Mode) Rules {
	rules := DefaultRules()
	if s.BoardSize != 0 {
		rules.Size = s.BoardSize
	}
	switch {
	case s.Target < 0:
		rules.Target = 0
	case s.Target > 0:
		rules.Target = s.Target
	}
	switch {
	case s.Spawn4Prob < 0:
		rules.Spawn4Prob = 0
	case s.Spawn4Prob > 0:
		rules.Spawn4Prob = s.Spawn4Prob
	}
	switch {
	case s.InitialTiles < 0:
		rules.InitialTiles = 0
	case s.InitialTiles > 0:
		rules.InitialTiles = s.InitialTiles
	}
	if mode == ModeEndless {
		rules.Target = 0
	}
	return rules
}

// Reset starts a new session. A window resize keeps the running session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	if g.session != nil {
		return
	}

	g.tick = 0
	g.paused = false
	g.showWin = false
	g.last = MoveResult{}

	rules := RulesFromSettings(g.settings, g.mode)
	opts := []Option{WithSeed(cfg.Seed)}
	if g.settings.HighScores != nil {
		opts = append(opts, WithHighScoreStore(g.settings.HighScores))
	}

	session, err := Init(rules, opts...)
	if err != nil {
		// Settings are validated by the config layer; fall back to the classic rules.
		fallback := DefaultRules()
		if g.mode == ModeEndless {
			fallback.Target = 0
		}
		session, _ = Init(fallback, opts...)
	}
	g.session = session
	g.checkScreenSize()
}

// Session exposes the underlying engine session.
func (g *Game) Session() *Session {
	return g.session
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	size := BoardSize
	if g.session != nil {
		size = g.session.Grid().Size()
	} else if g.settings.BoardSize != 0 {
		size = g.settings.BoardSize
	}
	minW := size*cellWidth + 1
	minH := size*cellHeight + 1 + hudHeight + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step processes one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.session.Restart()
		g.last = MoveResult{}
		g.showWin = false
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	g.last = g.session.Move(dir)
	if g.last.Changed {
		g.showWin = g.last.JustWon
	}

	return core.StepResult{State: g.State(), Moved: g.last.Changed}
}

// directionFor maps the first directional action in the frame to a Direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.session.CurrentScore(),
		HighScore: g.session.HighScore(),
		MaxTile:   g.session.Grid().MaxTile(),
		Moves:     g.session.Moves(),
		GameOver:  g.session.IsGameOver(),
		Won:       g.session.IsWon(),
		Paused:    g.paused || g.tooSmall,
	}
}
