package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

const clipLogFileName = "log.sqlite"

// ClipLog is an optional append-only audit log of store mutations, kept in a
// sqlite file next to items.json. It exists purely for inspection ("what did
// the watcher capture and when"); items.json stays the source of truth.
type ClipLog struct {
	db *sql.DB
}

// ClipLogEntry is one logged mutation.
type ClipLogEntry struct {
	EventID   string `json:"eventId"`
	Op        string `json:"op"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAtUnixMs"`
}

// Mutation ops recorded in the log.
const (
	ClipLogOpAdd    = "add"
	ClipLogOpDelete = "delete"
	ClipLogOpClear  = "clear"
	ClipLogOpJoin   = "join"
)

// OpenClipLog opens (creating if needed) the log database under dir.
func OpenClipLog(ctx context.Context, dir string) (*ClipLog, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, clipLogFileName))
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage. WAL enables one writer + many
	// readers; busy_timeout avoids "database is locked" flakiness when the
	// watcher and a picker append at the same time.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS clips (
		event_id TEXT PRIMARY KEY,
		op TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_clips_created ON clips(created_at_unixms);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &ClipLog{db: db}, nil
}

func (c *ClipLog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *ClipLog) Append(op, text string) error {
	_, err := c.db.ExecContext(context.Background(),
		`INSERT INTO clips(event_id, op, text, created_at_unixms) VALUES(?, ?, ?, ?)`,
		uuid.New().String(), op, text, time.Now().UnixMilli())
	return err
}

// Recent returns up to limit entries, newest first.
func (c *ClipLog) Recent(ctx context.Context, limit int) ([]ClipLogEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := c.db.QueryContext(ctx,
		`SELECT event_id, op, text, created_at_unixms FROM clips ORDER BY created_at_unixms DESC, event_id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ClipLogEntry, 0, limit)
	for rows.Next() {
		var e ClipLogEntry
		if err := rows.Scan(&e.EventID, &e.Op, &e.Text, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
