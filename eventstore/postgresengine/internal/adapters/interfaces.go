package adapters

import "context"

// DBAdapter is what the engine needs from a connection: reads outside and writes inside a transaction.
type DBAdapter interface {
	Query(ctx context.Context, query string, args ...any) (DBRows, error)
	BeginTx(ctx context.Context) (DBTx, error)
}

// DBTx is a running read-committed transaction.
type DBTx interface {
	Exec(ctx context.Context, query string, args ...any) (DBResult, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DBRows is satisfied by *sql.Rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult is satisfied by sql.Result.
type DBResult interface {
	RowsAffected() (int64, error)
}
