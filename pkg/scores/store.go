// Package scores persists the per-mode high-score lists.
package scores

import (
	"errors"
	"slices"
	"sync"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
)

// ErrUnavailable is returned when the backing storage cannot be used
var ErrUnavailable = errors.New("score storage unavailable")

// Store keeps the best scores of each mode. Load never fails: missing or
// corrupt storage reads as an empty list.
type Store interface {
	Load(mode game.Mode) []int
	Save(mode game.Mode, score int) error
}

// IsHighScore reports whether score would enter a top list
func IsHighScore(top []int, score int) bool {
	if score <= 0 {
		return false
	}
	if len(top) < config.TopScores {
		return true
	}
	return score > top[len(top)-1]
}

// MemoryStore is a Store that lives for the process only
type MemoryStore struct {
	mu     sync.Mutex
	scores map[game.Mode][]int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[game.Mode][]int)}
}

// Load returns the scores of mode, best first
func (s *MemoryStore) Load(mode game.Mode) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.scores[mode])
}

// Save inserts score and keeps only the best entries
func (s *MemoryStore) Save(mode game.Mode, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[mode] = insertTop(s.scores[mode], score)
	return nil
}

func insertTop(top []int, score int) []int {
	out := append(slices.Clone(top), score)
	slices.SortFunc(out, func(a, b int) int { return b - a })
	if len(out) > config.TopScores {
		out = out[:config.TopScores]
	}
	return out
}
