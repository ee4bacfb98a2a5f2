package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score including this game
	MaxTile   int  // Largest tile on the board
	Moves     int  // Moves that changed the board
	GameOver  bool // Whether the game has ended
	Won       bool // Whether the goal was reached (play may continue)
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the input changed the board this tick
}

// HighScoreStore persists a game's best score between runs.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// GameSettings are the rule parameters a game is created with.
// Zero values mean "use the game's defaults"; a negative value asks for an
// explicit zero.
type GameSettings struct {
	BoardSize    int
	Target       int     // negative plays without a target
	Spawn4Prob   float64 // negative disables 4s
	InitialTiles int     // negative starts on an empty board
	HighScores   HighScoreStore // nil keeps the high score in memory
}
