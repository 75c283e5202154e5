package scores

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "game.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// exerciseStore runs the shared Store contract
func exerciseStore(t *testing.T, s Store) {
	if got := s.Load(game.ModeClassic); len(got) != 0 {
		t.Errorf("Expected an empty list, got %v", got)
	}

	for _, score := range []int{30, 120, 10, 50, 50} {
		if err := s.Save(game.ModeClassic, score); err != nil {
			t.Fatalf("Save(%d): %v", score, err)
		}
	}
	want := []int{120, 50, 50, 30, 10}
	if got := s.Load(game.ModeClassic); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if got := s.Load(game.ModeSurvival); len(got) != 0 {
		t.Errorf("Modes must not share lists, got %v", got)
	}

	for i := 1; i <= 20; i++ {
		if err := s.Save(game.ModeTimeAttack, i*10); err != nil {
			t.Fatal(err)
		}
	}
	top := s.Load(game.ModeTimeAttack)
	if len(top) != config.TopScores {
		t.Fatalf("Expected %d entries, got %d", config.TopScores, len(top))
	}
	if top[0] != 200 || top[len(top)-1] != 110 {
		t.Errorf("Expected 200..110, got %v", top)
	}
}

// TestMemoryStore checks ordering and truncation in memory
func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

// TestSQLiteStore checks ordering and truncation on disk
func TestSQLiteStore(t *testing.T) {
	exerciseStore(t, openTestStore(t))
}

// TestSQLiteStorePersists reopens the database file
func TestSQLiteStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(game.ModeSurvival, 90); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if got := s.Load(game.ModeSurvival); !slices.Equal(got, []int{90}) {
		t.Errorf("Expected [90] after reopen, got %v", got)
	}
}

// TestSQLiteStoreUnavailable degrades to an empty list
func TestSQLiteStoreUnavailable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenSQLite(filepath.Join(blocker, "game.db")); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}

	s := openTestStore(t)
	s.Close()
	if got := s.Load(game.ModeClassic); got == nil || len(got) != 0 {
		t.Errorf("Closed store should read as an empty list, got %v", got)
	}
	if err := s.Save(game.ModeClassic, 10); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable from a closed store, got %v", err)
	}
}

// TestIsHighScore checks the qualifying rule
func TestIsHighScore(t *testing.T) {
	full := make([]int, config.TopScores)
	for i := range full {
		full[i] = 100 - i*5
	}
	tests := []struct {
		name  string
		top   []int
		score int
		want  bool
	}{
		{"empty list", nil, 10, true},
		{"zero score", nil, 0, false},
		{"beats last", full, 60, true},
		{"ties last", full, 55, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHighScore(tt.top, tt.score); got != tt.want {
				t.Errorf("IsHighScore(%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}
