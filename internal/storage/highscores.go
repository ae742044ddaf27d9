package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// HighScores adapts a Backend to the game's infallible high score hooks.
// Errors are logged and the game carries on with the in-memory value.
type HighScores struct {
	backend Backend
	logger  *log.Logger
}

// NewHighScores creates the adapter. A nil logger discards warnings.
func NewHighScores(backend Backend, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScores{backend: backend, logger: logger}
}

// LoadHighScore returns the persisted high score, or 0 on any failure.
func (h *HighScores) LoadHighScore() int {
	score, err := h.backend.HighScore()
	if err != nil {
		h.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return max(score, 0)
}

// SaveHighScore persists score, logging failures.
func (h *HighScores) SaveHighScore(score int) {
	if err := h.backend.SetHighScore(score); err != nil {
		h.logger.Warn("could not save high score", "score", score, "error", err)
	}
}

// OpenOrMemory opens the database at dbPath, falling back to a Memory
// backend when that fails.
func OpenOrMemory(dbPath string, logger *log.Logger) Backend {
	store, err := Open(dbPath)
	if err != nil {
		if logger != nil {
			logger.Warn("could not open scores database, scores will not be saved", "path", dbPath, "error", err)
		}
		return NewMemory()
	}
	return store
}
