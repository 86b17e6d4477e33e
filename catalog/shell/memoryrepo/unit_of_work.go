package memoryrepo

import (
	"context"
	"errors"
	"sync"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

const (
	logMsgUnitOfWorkCommitted = "unit of work committed"
	logMsgCommitFailed        = "unit of work commit failed"
	logAttrOperationCount     = "operation_count"
	logAttrError              = "error"
)

// UnitOfWork buffers operations until Commit.
type UnitOfWork struct {
	db         *Database
	mu         sync.RWMutex
	operations []operation
	completed  bool
}

func newUnitOfWork(db *Database) *UnitOfWork {
	return &UnitOfWork{db: db, operations: make([]operation, 0)}
}

// EventStore returns the event store bound to this Unit of Work.
func (uow *UnitOfWork) EventStore() shell.EventStore {
	return EventStore{uow: uow}
}

// Books returns the book repository bound to this Unit of Work.
func (uow *UnitOfWork) Books() core.BookRepository {
	return BookRepository{uow: uow}
}

// Authors returns the author repository bound to this Unit of Work.
func (uow *UnitOfWork) Authors() core.AuthorRepository {
	return AuthorRepository{uow: uow}
}

// PendingCount returns the number of buffered operations.
func (uow *UnitOfWork) PendingCount() int {
	uow.mu.RLock()
	defer uow.mu.RUnlock()

	return len(uow.operations)
}

// Commit applies all buffered operations atomically.
// The Unit of Work is completed afterwards, whatever the outcome.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	operations, takeErr := uow.take()
	if takeErr != nil {
		return takeErr
	}

	if len(operations) == 0 {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		uow.db.logError(logMsgCommitFailed, logAttrError, ctxErr.Error())
		return errors.Join(eventstore.ErrCommitFailed, eventstore.ErrBeginTransactionFailed, ctxErr)
	}

	if applyErr := uow.db.apply(operations); applyErr != nil {
		uow.db.logError(logMsgCommitFailed, logAttrError, applyErr.Error())
		return errors.Join(eventstore.ErrCommitFailed, eventstore.ErrExecutingStatementFailed, applyErr)
	}

	uow.db.logInfo(logMsgUnitOfWorkCommitted, logAttrOperationCount, len(operations))

	return nil
}

func (uow *UnitOfWork) add(ops ...operation) error {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if uow.completed {
		return eventstore.ErrUnitOfWorkCompleted
	}

	uow.operations = append(uow.operations, ops...)

	return nil
}

func (uow *UnitOfWork) take() ([]operation, error) {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if uow.completed {
		return nil, eventstore.ErrUnitOfWorkCompleted
	}

	operations := uow.operations
	uow.operations = nil
	uow.completed = true

	return operations, nil
}
