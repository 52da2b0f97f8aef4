// Package historian records session snapshots to SQLite so finished and
// in-progress games can be inspected or replayed later. It persists only the
// engine's data model, via the snapshot codec.
package historian

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ruinedsnowyday/reinforcing-mars/engine"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id     TEXT    NOT NULL,
	generation  INTEGER NOT NULL,
	phase       TEXT    NOT NULL,
	state       BLOB    NOT NULL,
	recorded_at TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_game ON snapshots (game_id, id);
`

// Store is a SQLite-backed snapshot archive.
type Store struct {
	db *sql.DB
}

// Open creates or opens the archive at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open historian db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect historian db: %w", err)
	}
	// SQLite allows one writer; keep a single connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply historian schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record archives the session's current state. A stalled session is refused:
// its front deferred effect is owed a decision and the archive should only
// hold quiescent states.
func (s *Store) Record(g *engine.Game) error {
	if g.Stalled() {
		return fmt.Errorf("refusing to record a stalled session (%w)", engine.ErrAwaitingInput)
	}
	data, err := g.MarshalSnapshot()
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (game_id, generation, phase, state, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		g.ID.String(), g.Generation, g.Phase.String(), data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	return nil
}

// Latest restores the most recent snapshot of the given session.
func (s *Store) Latest(gameID string) (*engine.Game, error) {
	var data []byte
	err := s.db.QueryRow(
		`SELECT state FROM snapshots WHERE game_id = ? ORDER BY id DESC LIMIT 1`, gameID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no snapshots for game %s (%w)", gameID, engine.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return engine.UnmarshalSnapshot(data)
}

// History lists the (generation, phase) progression recorded for a session.
type HistoryEntry struct {
	Generation uint32
	Phase      string
	RecordedAt string
}

// History returns the recorded progression, oldest first.
func (s *Store) History(gameID string) ([]HistoryEntry, error) {
	rows, err := s.db.Query(
		`SELECT generation, phase, recorded_at FROM snapshots WHERE game_id = ? ORDER BY id`, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.Generation, &e.Phase, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
