package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

func newTestAdapter(t *testing.T) (*sqliteAdapter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	a := newSQLiteAdapter(sqlx.NewDb(db, "sqlmock"), zerolog.Nop(), 200, false)
	t.Cleanup(func() { _ = a.Close() })
	return a, mock
}

func TestAdapterExecReportsRowsAffected(t *testing.T) {
	a, mock := newTestAdapter(t)
	mock.ExpectExec("update users set is_active = 0 where id = ?").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tag, err := a.Exec(context.Background(), "update users set is_active = 0 where id = ?", int64(7))
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	if tag.RowsAffected() != 1 {
		t.Fatalf("rows affected = %d, want 1", tag.RowsAffected())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAdapterQueryIteratesRows(t *testing.T) {
	a, mock := newTestAdapter(t)
	mock.ExpectQuery("select id, username from users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(int64(1), "alice").
			AddRow(int64(2), "bob"))

	rs, err := a.Query(context.Background(), "select id, username from users")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rs.Close()

	var names []string
	for rs.Next() {
		var id int64
		var name string
		if err := rs.Scan(&id, &name); err != nil {
			t.Fatalf("scan: %v", err)
		}
		names = append(names, name)
	}
	if err := rs.Err(); err != nil {
		t.Fatalf("rows err: %v", err)
	}
	if len(names) != 2 || names[0] != "alice" || names[1] != "bob" {
		t.Fatalf("names = %v", names)
	}
	if cols := rs.Columns(); len(cols) != 2 || cols[0] != "id" {
		t.Fatalf("columns = %v", cols)
	}
}

func TestAdapterQueryRowScans(t *testing.T) {
	a, mock := newTestAdapter(t)
	mock.ExpectQuery("select count(*) from posts").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	var n int64
	if err := a.QueryRow(context.Background(), "select count(*) from posts").Scan(&n); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}

func TestAdapterTxCommitsOnSuccess(t *testing.T) {
	a, mock := newTestAdapter(t)
	mock.ExpectBegin()
	mock.ExpectExec("insert into posts (title) values (?)").
		WithArgs("hello").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := a.Tx(context.Background(), func(q RowQuerier) error {
		_, err := q.Exec(context.Background(), "insert into posts (title) values (?)", "hello")
		return err
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAdapterTxRollsBackOnError(t *testing.T) {
	a, mock := newTestAdapter(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := a.Tx(context.Background(), func(RowQuerier) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("tx err = %v, want boom", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAdapterPingNilGuard(t *testing.T) {
	var a *sqliteAdapter
	if err := a.Ping(context.Background()); err == nil {
		t.Fatalf("nil adapter ping should fail")
	}
}
