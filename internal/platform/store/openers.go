package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// register the pure Go sqlite driver as "sqlite"
	_ "modernc.org/sqlite"
)

// openSQLite opens the database file and wraps it with our sql adapter
func openSQLite(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	if p := cfg.SQLite.Path; p != "" && p != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite dir: %w", err)
		}
	}

	dsn := sqliteDSN(cfg.SQLite)

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// a single writer connection sidesteps SQLITE_BUSY under concurrent writes
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	a := newSQLiteAdapter(db, s.Log, cfg.SQLite.SlowQueryMs, cfg.SQLite.LogSQL)
	return a, nil
}

// sqliteDSN builds a DSN with the pragmas the app relies on:
// WAL for concurrent reads, busy_timeout for writer contention,
// foreign_keys for referential integrity
func sqliteDSN(c SQLiteConfig) string {
	path := c.Path
	if path == "" {
		path = ":memory:"
	}
	busy := c.BusyTimeoutMs
	if busy <= 0 {
		busy = 5000
	}
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")
	q.Add("_pragma", "foreign_keys(1)")
	return "file:" + path + "?" + q.Encode()
}
