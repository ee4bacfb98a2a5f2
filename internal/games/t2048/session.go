package t2048

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Rule defaults for a classic game.
const (
	BoardSize           = 4
	DefaultTarget       = 2048
	DefaultInitialTiles = 2
)

var (
	ErrInvalidTarget    = errors.New("t2048: target must be 0 or a power of two >= 4")
	ErrInvalidSpawnProb = errors.New("t2048: spawn probability must be within [0, 1]")
	ErrInvalidInitial   = errors.New("t2048: initial tile count out of range")
)

// Rules configures a session. Target 0 means endless play.
type Rules struct {
	Size         int
	Target       int
	Spawn4Prob   float64
	InitialTiles int
}

// DefaultRules returns the classic 4x4, 2048-target rules.
func DefaultRules() Rules {
	return Rules{
		Size:         BoardSize,
		Target:       DefaultTarget,
		Spawn4Prob:   DefaultSpawn4Prob,
		InitialTiles: DefaultInitialTiles,
	}
}

// Validate checks the rules for consistency.
func (r Rules) Validate() error {
	if r.Size < MinBoardSize || r.Size > MaxBoardSize {
		return fmt.Errorf("%w: %d", ErrInvalidSize, r.Size)
	}
	if r.Target != 0 && (r.Target < 4 || !IsPowerOfTwo(r.Target)) {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, r.Target)
	}
	if r.Spawn4Prob < 0 || r.Spawn4Prob > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSpawnProb, r.Spawn4Prob)
	}
	if r.InitialTiles < 0 || r.InitialTiles > r.Size*r.Size {
		return fmt.Errorf("%w: %d", ErrInvalidInitial, r.InitialTiles)
	}
	return nil
}

// MoveResult is the outcome of Session.Move.
type MoveResult struct {
	Changed     bool
	ScoreGained int
	Merges      []Merge
	Moves       []TileMove
	Spawned     *Tile
	JustWon     bool // the target was reached for the first time on this move
	NewHigh     bool
	GameOver    bool
}

// Option customizes a Session.
type Option func(*Session)

// WithRand sets the random source used for spawning.
func WithRand(rng RandomSource) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSeed seeds a private math/rand source.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithHighScoreStore sets where the high score is loaded from and saved to.
func WithHighScoreStore(store HighScoreStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// Session is one game: the grid, the score and the won latch.
// A Session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	rules   Rules
	grid    *Grid
	score   *ScoreTracker
	spawner *Spawner
	rng     RandomSource
	store   HighScoreStore
	moves   int
	won     bool
}

// Init creates a session and spawns the initial tiles.
func Init(rules Rules, opts ...Option) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	s := &Session{rules: rules}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid, err := NewGrid(rules.Size)
	if err != nil {
		return nil, err
	}
	s.grid = grid
	s.score = NewScoreTracker(s.store)
	s.spawner = NewSpawner(s.rng, rules.Spawn4Prob)
	s.spawnInitial()

	return s, nil
}

// NewSessionFromGrid creates a session over an existing grid without spawning.
func NewSessionFromGrid(rules Rules, grid *Grid, opts ...Option) (*Session, error) {
	rules.Size = grid.Size()
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	s := &Session{rules: rules, grid: grid}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.score = NewScoreTracker(s.store)
	s.spawner = NewSpawner(s.rng, rules.Spawn4Prob)
	s.won = IsWon(grid, rules.Target)

	return s, nil
}

func (s *Session) spawnInitial() {
	for range s.rules.InitialTiles {
		s.spawner.Spawn(s.grid)
	}
}

// Move slides the grid in dir. If anything changed, a tile is spawned and the
// score updated; a move that changes nothing is not counted and spawns nothing.
func (s *Session) Move(dir Direction) MoveResult {
	slid := Slide(s.grid, dir)
	res := MoveResult{
		Changed:     slid.Changed,
		ScoreGained: slid.Score,
		Merges:      slid.Merges,
		Moves:       slid.Moves,
	}

	if slid.Changed {
		s.moves++
		res.NewHigh = s.score.AddScore(slid.Score)
		if t, ok := s.spawner.Spawn(s.grid); ok {
			res.Spawned = &t
		}
		if !s.won && IsWon(s.grid, s.rules.Target) {
			s.won = true
			res.JustWon = true
		}
	}

	res.GameOver = IsGameOver(s.grid)
	return res
}

// Restart clears the board, the running score and the won latch,
// then spawns fresh initial tiles. The high score is kept.
func (s *Session) Restart() {
	s.grid.reset()
	s.score.Reset()
	s.moves = 0
	s.won = false
	s.spawnInitial()
}

// IsGameOver reports whether no move can change the grid.
func (s *Session) IsGameOver() bool {
	return IsGameOver(s.grid)
}

// IsWon reports whether the target has been reached in this session.
func (s *Session) IsWon() bool {
	return s.won
}

// CurrentScore returns the running score.
func (s *Session) CurrentScore() int {
	return s.score.Current()
}

// HighScore returns the best score, including the current one.
func (s *Session) HighScore() int {
	return s.score.High()
}

// Moves returns how many moves changed the grid.
func (s *Session) Moves() int {
	return s.moves
}

// Rules returns the session rules.
func (s *Session) Rules() Rules {
	return s.rules
}

// Grid returns the live grid. Callers must not mutate it.
func (s *Session) Grid() *Grid {
	return s.grid
}
