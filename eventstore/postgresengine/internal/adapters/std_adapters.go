package adapters

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

var readCommitted = &sql.TxOptions{Isolation: sql.LevelReadCommitted}

// SQLAdapter runs the engine on a *sql.DB.
type SQLAdapter struct {
	db *sql.DB
}

func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

func (a *SQLAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (a *SQLAdapter) BeginTx(ctx context.Context) (DBTx, error) {
	tx, err := a.db.BeginTx(ctx, readCommitted)
	if err != nil {
		return nil, err
	}

	return stdTx{tx}, nil
}

// SQLXAdapter runs the engine on a *sqlx.DB.
type SQLXAdapter struct {
	db *sqlx.DB
}

func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{db: db}
}

func (a *SQLXAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	rows, err := a.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return rows.Rows, nil
}

func (a *SQLXAdapter) BeginTx(ctx context.Context) (DBTx, error) {
	tx, err := a.db.BeginTxx(ctx, readCommitted)
	if err != nil {
		return nil, err
	}

	return stdTx{tx}, nil
}

// stdTx adapts *sql.Tx and *sqlx.Tx. database/sql binds a transaction to the context given to BeginTx,
// so Commit and Rollback ignore theirs.
type stdTx struct {
	tx interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		Commit() error
		Rollback() error
	}
}

func (t stdTx) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	return t.tx.ExecContext(ctx, query, args...)
}

func (t stdTx) Commit(context.Context) error { return t.tx.Commit() }

func (t stdTx) Rollback(context.Context) error { return t.tx.Rollback() }
