package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateWon      GameStateType = "won"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Size      int
	Target    int
	Score     int
	HighScore int
	Moves     int
	Board     [][]int
	MaxTile   int
	Won       bool
	State     GameStateType
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.IsGameOver():
		state = StateGameOver
	case s.won:
		state = StateWon
	}

	return Snapshot{
		Size:      s.grid.Size(),
		Target:    s.rules.Target,
		Score:     s.score.Current(),
		HighScore: s.score.High(),
		Moves:     s.moves,
		Board:     s.grid.Values(),
		MaxTile:   s.grid.MaxTile(),
		Won:       s.won,
		State:     state,
	}
}
