package t2048

// HighScoreStore persists the best score across sessions.
// Implementations own their I/O failures; from the engine's side both calls are total.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// MemoryHighScores is a HighScoreStore that lives only as long as the process.
type MemoryHighScores struct {
	best int
}

// LoadHighScore returns the stored best.
func (m *MemoryHighScores) LoadHighScore() int {
	return m.best
}

// SaveHighScore stores score.
func (m *MemoryHighScores) SaveHighScore(score int) {
	m.best = score
}

// ScoreTracker accumulates merge gains and keeps the high score current.
type ScoreTracker struct {
	current int
	high    int
	store   HighScoreStore
}

// NewScoreTracker loads the high score from store. A nil store keeps scores in memory.
func NewScoreTracker(store HighScoreStore) *ScoreTracker {
	if store == nil {
		store = &MemoryHighScores{}
	}
	return &ScoreTracker{
		high:  store.LoadHighScore(),
		store: store,
	}
}

// AddScore adds delta to the current score. When the current score passes the
// high score, the high score follows and is saved.
// Returns true if the high score changed.
func (s *ScoreTracker) AddScore(delta int) bool {
	if delta <= 0 {
		return false
	}
	s.current += delta
	if s.current <= s.high {
		return false
	}
	s.high = s.current
	s.store.SaveHighScore(s.high)
	return true
}

// Current returns the running score.
func (s *ScoreTracker) Current() int {
	return s.current
}

// High returns the best score seen.
func (s *ScoreTracker) High() int {
	return s.high
}

// Reset zeroes the running score. The high score is kept.
func (s *ScoreTracker) Reset() {
	s.current = 0
}
