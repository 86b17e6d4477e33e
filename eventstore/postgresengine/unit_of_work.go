package postgresengine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

// UnitOfWork buffers the writes of one use case and flushes them in a single transaction.
//
// A UnitOfWork is single-use: after Commit, successful or not, it is completed and
// rejects further statements. Abandoning it without Commit discards the buffer.
type UnitOfWork struct {
	engine     *Engine
	id         uuid.UUID
	mu         sync.RWMutex
	statements []Statement
	completed  bool
}

func newUnitOfWork(engine *Engine) *UnitOfWork {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return &UnitOfWork{
		engine:     engine,
		id:         id,
		statements: make([]Statement, 0),
	}
}

// ID identifies the Unit of Work in logs and spans.
func (uow *UnitOfWork) ID() uuid.UUID {
	return uow.id
}

// EventStore returns the event store bound to this Unit of Work.
func (uow *UnitOfWork) EventStore() EventStore {
	return EventStore{uow: uow}
}

// Engine returns the engine this Unit of Work was opened on.
func (uow *UnitOfWork) Engine() *Engine {
	return uow.engine
}

// Add appends a statement to the buffer.
func (uow *UnitOfWork) Add(stmt Statement) error {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if uow.completed {
		return eventstore.ErrUnitOfWorkCompleted
	}

	uow.statements = append(uow.statements, stmt)

	return nil
}

// Pending returns a copy of the buffered statements in queue order.
func (uow *UnitOfWork) Pending() []Statement {
	uow.mu.RLock()
	defer uow.mu.RUnlock()

	pending := make([]Statement, len(uow.statements))
	copy(pending, uow.statements)

	return pending
}

// Completed reports whether Commit was already called.
func (uow *UnitOfWork) Completed() bool {
	uow.mu.RLock()
	defer uow.mu.RUnlock()

	return uow.completed
}

// Commit executes all buffered statements in queue order inside one database transaction.
//
// The first failing statement rolls the transaction back and nothing becomes durable.
// The buffer is cleared before the transaction starts, so a failed batch is never replayed.
// An empty buffer completes the Unit of Work without touching the database.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	statements, takeErr := uow.take()
	if takeErr != nil {
		return takeErr
	}

	e := uow.engine

	if len(statements) == 0 {
		e.logOperation(ctx, logMsgEmptyCommit, logAttrUnitOfWorkID, uow.id.String())
		return nil
	}

	tracer, ctx := e.startCommitTracing(ctx, uow.id, len(statements))
	metrics := e.startCommitMetrics(ctx)
	start := time.Now()

	if err := uow.flush(ctx, statements); err != nil {
		duration := time.Since(start)
		errorType := classifyCommitError(err)
		tracer.finishError(errorType, duration)
		metrics.recordError(errorType, duration)

		return err
	}

	duration := time.Since(start)
	tracer.finishSuccess(duration)
	metrics.recordSuccess(len(statements), duration)

	e.logOperation(
		ctx,
		logMsgUnitOfWorkCommitted,
		logAttrUnitOfWorkID, uow.id.String(),
		logAttrStatementCount, len(statements),
		logAttrDurationMS, toMilliseconds(duration),
	)

	return nil
}

// take marks the Unit of Work as completed and hands over the buffer.
func (uow *UnitOfWork) take() ([]Statement, error) {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if uow.completed {
		return nil, eventstore.ErrUnitOfWorkCompleted
	}

	statements := uow.statements
	uow.statements = nil
	uow.completed = true

	return statements, nil
}

func (uow *UnitOfWork) flush(ctx context.Context, statements []Statement) error {
	e := uow.engine

	tx, beginErr := e.db.BeginTx(ctx)
	if beginErr != nil {
		e.logError(ctx, logMsgBeginTxFailed, beginErr, logAttrUnitOfWorkID, uow.id.String())
		return errors.Join(eventstore.ErrCommitFailed, eventstore.ErrBeginTransactionFailed, beginErr)
	}

	for i, stmt := range statements {
		start := time.Now()
		_, execErr := tx.Exec(ctx, stmt.SQL, stmt.Args...)
		e.logQueryWithDuration(ctx, stmt.SQL, logActionExec, time.Since(start))

		if execErr != nil {
			e.logError(
				ctx,
				logMsgDBExecFailed,
				execErr,
				logAttrUnitOfWorkID, uow.id.String(),
				logAttrStatementIndex, i,
				logAttrQuery, stmt.SQL,
			)
			uow.rollback(ctx, tx)

			return errors.Join(eventstore.ErrCommitFailed, eventstore.ErrExecutingStatementFailed, execErr)
		}
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		e.logError(ctx, logMsgCommitFailed, commitErr, logAttrUnitOfWorkID, uow.id.String())
		uow.rollback(ctx, tx)

		return errors.Join(eventstore.ErrCommitFailed, commitErr)
	}

	return nil
}

// rollback aborts the transaction even when ctx was canceled, so the connection goes back to the pool clean.
func (uow *UnitOfWork) rollback(ctx context.Context, tx interface{ Rollback(context.Context) error }) {
	if rollbackErr := tx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
		uow.engine.logWarn(logMsgRollbackFailed, logAttrError, rollbackErr.Error(), logAttrUnitOfWorkID, uow.id.String())
	}
}

func classifyCommitError(err error) string {
	switch {
	case errors.Is(err, eventstore.ErrBeginTransactionFailed):
		return errorTypeBeginTx
	case errors.Is(err, eventstore.ErrExecutingStatementFailed):
		return errorTypeExec
	default:
		return errorTypeCommit
	}
}
