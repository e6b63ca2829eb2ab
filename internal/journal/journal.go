// Package journal provides SQLite-based storage of resolved matches.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/samdwyer/hexlink/internal/board"
)

// Entry is one resolved match.
type Entry struct {
	ID          string
	SessionID   string
	Color       board.Color
	Length      int
	EffectLevel int
	CreatedAt   time.Time
}

// row is the stored form of an Entry.
type row struct {
	ID          string `db:"id"`
	SessionID   string `db:"session_id"`
	Color       int    `db:"color"`
	Length      int    `db:"length"`
	EffectLevel int    `db:"effect_level"`
	CreatedAt   int64  `db:"created_at"` // Unix milliseconds
}

func (r row) entry() Entry {
	return Entry{
		ID:          r.ID,
		SessionID:   r.SessionID,
		Color:       board.Color(r.Color),
		Length:      r.Length,
		EffectLevel: r.EffectLevel,
		CreatedAt:   time.UnixMilli(r.CreatedAt),
	}
}

// Journal wraps a SQLite connection holding match history.
type Journal struct {
	conn *sqlx.DB
}

// Open opens or creates a journal database at the given path.
func Open(path string) (*Journal, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		color INTEGER NOT NULL,
		length INTEGER NOT NULL,
		effect_level INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at);
	CREATE INDEX IF NOT EXISTS idx_matches_length ON matches(length);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// Record stores e. A missing ID or timestamp is filled in, and the stored
// entry is returned.
func (j *Journal) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := j.conn.NamedExecContext(ctx,
		`INSERT INTO matches (id, session_id, color, length, effect_level, created_at)
		 VALUES (:id, :session_id, :color, :length, :effect_level, :created_at)`,
		row{
			ID:          e.ID,
			SessionID:   e.SessionID,
			Color:       int(e.Color),
			Length:      e.Length,
			EffectLevel: e.EffectLevel,
			CreatedAt:   e.CreatedAt.UnixMilli(),
		},
	)
	if err != nil {
		return e, fmt.Errorf("record match: %w", err)
	}

	slog.Debug("match recorded", "id", e.ID, "length", e.Length, "level", e.EffectLevel)
	return e, nil
}

// Recent returns the most recent n entries, newest first.
func (j *Journal) Recent(ctx context.Context, n int) ([]Entry, error) {
	var rows []row
	err := j.conn.SelectContext(ctx, &rows,
		`SELECT id, session_id, color, length, effect_level, created_at
		 FROM matches ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("recent matches: %w", err)
	}

	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = r.entry()
	}
	return entries, nil
}

// Best returns the longest chain ever recorded; ties go to the earliest.
// The bool is false when the journal is empty.
func (j *Journal) Best(ctx context.Context) (Entry, bool, error) {
	var r row
	err := j.conn.GetContext(ctx, &r,
		`SELECT id, session_id, color, length, effect_level, created_at
		 FROM matches ORDER BY length DESC, created_at ASC, rowid ASC LIMIT 1`,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("best match: %w", err)
	}
	return r.entry(), true, nil
}

// Count returns how many matches a session has recorded. An empty session
// ID counts every match.
func (j *Journal) Count(ctx context.Context, sessionID string) (int, error) {
	var n int
	var err error
	if sessionID == "" {
		err = j.conn.GetContext(ctx, &n, "SELECT COUNT(*) FROM matches")
	} else {
		err = j.conn.GetContext(ctx, &n, "SELECT COUNT(*) FROM matches WHERE session_id = ?", sessionID)
	}
	if err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return n, nil
}
