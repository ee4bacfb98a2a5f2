package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
)

// HighScoreKeeper adapts a Store to a single game's high score.
// The engine treats high score persistence as infallible, so failures are
// logged here and otherwise ignored.
type HighScoreKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

var _ core.HighScoreStore = (*HighScoreKeeper)(nil)

// NewHighScoreKeeper creates a keeper for gameID. A nil logger uses the default logger.
func NewHighScoreKeeper(store *Store, gameID string, logger *log.Logger) *HighScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScoreKeeper{store: store, gameID: gameID, logger: logger}
}

// LoadHighScore returns the stored best, or 0 if it cannot be read.
func (k *HighScoreKeeper) LoadHighScore() int {
	score, err := k.store.HighScore(k.gameID)
	if err != nil {
		k.logger.Warn("could not load high score", "game", k.gameID, "error", err)
		return 0
	}
	return score
}

// SaveHighScore stores score as the new best.
func (k *HighScoreKeeper) SaveHighScore(score int) {
	if err := k.store.StoreHighScore(k.gameID, score); err != nil {
		k.logger.Warn("could not save high score", "game", k.gameID, "score", score, "error", err)
		return
	}
	k.logger.Debug("high score saved", "game", k.gameID, "score", score)
}
