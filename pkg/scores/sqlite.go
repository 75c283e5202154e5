package scores

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
)

// SQLiteStore keeps high scores in a SQLite database
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// OpenSQLite opens (or creates) the database at path and its table
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: create data directory: %v", ErrUnavailable, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrUnavailable, err)
	}

	s := &SQLiteStore{db: db, logger: log.New(io.Discard, "", 0)}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// SetLogger routes read failures to l
func (s *SQLiteStore) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

func (s *SQLiteStore) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_high_scores_mode ON high_scores (mode, score DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("%w: create table: %v", ErrUnavailable, err)
		}
	}
	return nil
}

// Load returns the best scores of mode, best first. Errors read as an
// empty list.
func (s *SQLiteStore) Load(mode game.Mode) []int {
	rows, err := s.db.Query(
		`SELECT score FROM high_scores WHERE mode = ? ORDER BY score DESC, id ASC LIMIT ?`,
		mode.String(), config.TopScores,
	)
	if err != nil {
		s.logger.Printf("load %s scores: %v", mode, err)
		return []int{}
	}
	defer rows.Close()

	top := make([]int, 0, config.TopScores)
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			s.logger.Printf("scan %s score: %v", mode, err)
			return []int{}
		}
		top = append(top, score)
	}
	if err := rows.Err(); err != nil {
		s.logger.Printf("read %s scores: %v", mode, err)
		return []int{}
	}
	return top
}

// Save records score and truncates the mode's list to the top entries
func (s *SQLiteStore) Save(mode game.Mode, score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO high_scores (mode, score) VALUES (?, ?)`,
		mode.String(), score,
	); err != nil {
		return fmt.Errorf("%w: insert score: %v", ErrUnavailable, err)
	}
	if _, err := tx.Exec(
		`DELETE FROM high_scores WHERE mode = ? AND id NOT IN (
			SELECT id FROM high_scores WHERE mode = ? ORDER BY score DESC, id ASC LIMIT ?
		)`,
		mode.String(), mode.String(), config.TopScores,
	); err != nil {
		return fmt.Errorf("%w: truncate scores: %v", ErrUnavailable, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrUnavailable, err)
	}
	return nil
}

// Close releases the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
