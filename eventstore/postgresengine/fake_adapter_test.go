package postgresengine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/AntonStoeckl/catalog-uow-go/eventstore/postgresengine/internal/adapters"
)

var errFakeDB = errors.New("fake database failure")

// fakeDB is an in-memory adapters.DBAdapter that records what the engine asks of it.
type fakeDB struct {
	mu          sync.Mutex
	beginErr    error
	commitErr   error
	rollbackErr error
	failExecAt  int
	queryErr    error
	queryRows   [][]any
	queries     []Statement
	executed    []Statement
	begun       int
	committed   int
	rolledBack  int
}

func newFakeDB() *fakeDB {
	return &fakeDB{failExecAt: -1}
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (adapters.DBRows, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries = append(f.queries, Statement{SQL: query, Args: args})

	if f.queryErr != nil {
		return nil, f.queryErr
	}

	return &fakeRows{values: f.queryRows, cursor: -1}, nil
}

func (f *fakeDB) BeginTx(_ context.Context) (adapters.DBTx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.beginErr != nil {
		return nil, f.beginErr
	}

	f.begun++

	return &fakeTx{db: f}, nil
}

type fakeTx struct {
	db    *fakeDB
	execs int
}

func (t *fakeTx) Exec(_ context.Context, query string, args ...any) (adapters.DBResult, error) {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	defer func() { t.execs++ }()

	if t.execs == t.db.failExecAt {
		return nil, errFakeDB
	}

	t.db.executed = append(t.db.executed, Statement{SQL: query, Args: args})

	return fakeResult(1), nil
}

func (t *fakeTx) Commit(_ context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	if t.db.commitErr != nil {
		return t.db.commitErr
	}

	t.db.committed++

	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	t.db.rolledBack++

	return t.db.rollbackErr
}

type fakeResult int64

func (r fakeResult) RowsAffected() (int64, error) {
	return int64(r), nil
}

type fakeRows struct {
	values [][]any
	cursor int
	closed bool
}

func (r *fakeRows) Next() bool {
	r.cursor++
	return r.cursor < len(r.values)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.values[r.cursor]
	if len(row) != len(dest) {
		return fmt.Errorf("expected %d destinations, got %d", len(row), len(dest))
	}

	for i, d := range dest {
		switch target := d.(type) {
		case *int64:
			v, ok := row[i].(int64)
			if !ok {
				return fmt.Errorf("column %d is not an int64", i)
			}
			*target = v
		case *string:
			v, ok := row[i].(string)
			if !ok {
				return fmt.Errorf("column %d is not a string", i)
			}
			*target = v
		default:
			return fmt.Errorf("unsupported destination %T", d)
		}
	}

	return nil
}

func (r *fakeRows) Err() error {
	return nil
}

func (r *fakeRows) Close() error {
	r.closed = true
	return nil
}
