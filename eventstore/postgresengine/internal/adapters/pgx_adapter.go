package adapters

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGXAdapter runs the engine on a pgx connection pool.
type PGXAdapter struct {
	pool *pgxpool.Pool
}

func NewPGXAdapter(pool *pgxpool.Pool) *PGXAdapter {
	return &PGXAdapter{pool: pool}
}

func (a *PGXAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgxRows{rows}, nil
}

func (a *PGXAdapter) BeginTx(ctx context.Context) (DBTx, error) {
	tx, err := a.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}

	return pgxTx{tx}, nil
}

type pgxTx struct {
	pgx.Tx
}

// Exec shadows pgx.Tx.Exec to return a DBResult.
func (t pgxTx) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	tag, err := t.Tx.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgxResult{tag}, nil
}

// pgxRows adds the error return to pgx.Rows.Close.
type pgxRows struct {
	pgx.Rows
}

func (r pgxRows) Close() error {
	r.Rows.Close()
	return nil
}

type pgxResult struct {
	tag pgconn.CommandTag
}

func (r pgxResult) RowsAffected() (int64, error) {
	return r.tag.RowsAffected(), nil
}
