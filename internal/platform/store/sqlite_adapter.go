package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sitekit/internal/platform/logger"

	"github.com/jmoiron/sqlx"
)

// sqliteAdapter wraps *sqlx.DB and implements RowQuerier + TxRunner
// it also emits per-query debug logs when LogSQL is on
type sqliteAdapter struct {
	db     *sqlx.DB
	log    logger.Logger
	slowMs int
	logSQL bool
}

func newSQLiteAdapter(db *sqlx.DB, log logger.Logger, slowMs int, logSQL bool) *sqliteAdapter {
	return &sqliteAdapter{db: db, log: log, slowMs: slowMs, logSQL: logSQL}
}

// Ping reports backend readiness
func (a *sqliteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.db == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.db.PingContext(ctx)
}

// Close releases the underlying pool
func (a *sqliteAdapter) Close() error { return a.db.Close() }

func (a *sqliteAdapter) Exec(ctx context.Context, query string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := a.db.ExecContext(ctx, query, args...)
	a.emit(ctx, query, start, err)
	return tag{res}, err
}

func (a *sqliteAdapter) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.db.QueryxContext(ctx, query, args...)
	a.emit(ctx, query, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (a *sqliteAdapter) QueryRow(ctx context.Context, query string, args ...any) Row {
	start := time.Now()
	r := a.db.QueryRowxContext(ctx, query, args...)
	return row{
		r: r,
		after: func(scanErr error) {
			a.emit(ctx, query, start, scanErr)
		},
	}
}

// Tx runs fn inside a transaction, rolling back on error
func (a *sqliteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	q := txQuerier{tx: tx, parent: a}
	if err := fn(q); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// emit writes a debug line per statement and flags slow queries
func (a *sqliteAdapter) emit(ctx context.Context, query string, start time.Time, err error) {
	if a == nil || !a.logSQL {
		return
	}
	elapsed := time.Since(start)
	slow := a.slowMs >= 0 && elapsed >= time.Duration(a.slowMs)*time.Millisecond
	evt := a.log.Debug()
	if slow {
		evt = a.log.Warn().Bool("slow", true)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		evt = evt.Err(err)
	}
	evt.Str("sql", query).Dur("elapsed", elapsed).Msg("query")
}

// txQuerier adapts *sqlx.Tx to RowQuerier for use inside Tx callbacks
type txQuerier struct {
	tx     *sqlx.Tx
	parent *sqliteAdapter
}

func (q txQuerier) Exec(ctx context.Context, query string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := q.tx.ExecContext(ctx, query, args...)
	q.parent.emit(ctx, query, start, err)
	return tag{res}, err
}

func (q txQuerier) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := q.tx.QueryxContext(ctx, query, args...)
	q.parent.emit(ctx, query, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (q txQuerier) QueryRow(ctx context.Context, query string, args ...any) Row {
	start := time.Now()
	r := q.tx.QueryRowxContext(ctx, query, args...)
	return row{
		r: r,
		after: func(scanErr error) {
			q.parent.emit(ctx, query, start, scanErr)
		},
	}
}

// adapters for database/sql results to our tiny Row/Rows/CommandTag

type row struct {
	r     *sqlx.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rows struct{ r *sqlx.Rows }

func (x rows) Next() bool            { return x.r.Next() }
func (x rows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rows) Err() error            { return x.r.Err() }
func (x rows) Close()                { _ = x.r.Close() }
func (x rows) Columns() []string {
	cols, err := x.r.Columns()
	if err != nil {
		return nil
	}
	return cols
}

type tag struct{ res sql.Result }

func (t tag) RowsAffected() int64 {
	if t.res == nil {
		return 0
	}
	n, err := t.res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

func (t tag) String() string { return fmt.Sprintf("rows affected %d", t.RowsAffected()) }
