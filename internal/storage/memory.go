package storage

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Backend used when the database cannot be opened.
// Nothing survives the process.
type Memory struct {
	mu    sync.Mutex
	high  int
	runs  []Run
	clock func() time.Time
}

var _ Backend = (*Memory)(nil)

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{clock: time.Now}
}

func (m *Memory) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high, nil
}

func (m *Memory) SetHighScore(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.high = score
	return nil
}

func (m *Memory) RecordRun(score int) (uuid.UUID, error) {
	if score < 0 {
		return uuid.Nil, ErrNegativeScore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r := Run{ID: uuid.New(), Score: score, CreatedAt: m.clock()}
	m.runs = append(m.runs, r)
	return r.ID, nil
}

func (m *Memory) TopRuns(limit int) ([]Run, error) {
	m.mu.Lock()
	runs := slices.Clone(m.runs)
	m.mu.Unlock()

	// Stable sort keeps earlier runs first among equal scores
	slices.SortStableFunc(runs, func(a, b Run) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return truncate(runs, limit), nil
}

func (m *Memory) RecentRuns(limit int) ([]Run, error) {
	m.mu.Lock()
	runs := slices.Clone(m.runs)
	m.mu.Unlock()

	slices.Reverse(runs)
	return truncate(runs, limit), nil
}

func (m *Memory) Stats() (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := Stats{Runs: len(m.runs), HighScore: m.high}
	for _, r := range m.runs {
		stats.TotalScore += int64(r.Score)
		stats.BestRun = max(stats.BestRun, r.Score)
		if r.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = r.CreatedAt
		}
	}
	if stats.Runs > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.Runs)
	}
	return stats, nil
}

func (m *Memory) ClearRuns() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = nil
	return nil
}

func (m *Memory) Close() error { return nil }

func truncate(runs []Run, limit int) []Run {
	limit = normalizeLimit(limit)
	if len(runs) > limit {
		return runs[:limit]
	}
	return runs
}
