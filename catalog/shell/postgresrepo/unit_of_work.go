package postgresrepo

import (
	"context"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore/postgresengine"
)

const (
	dialectPostgres = "postgres"

	tableBook       = "book"
	tableAuthor     = "author"
	tableAuthorBook = "author_book"

	colID         = "id"
	colName       = "name"
	colPagesCount = "pages_count"
	colFirstName  = "first_name"
	colLastName   = "last_name"
	colFullName   = "full_name"
	colAuthorID   = "author_id"
	colBookID     = "book_id"
)

// UnitOfWorkFactory opens catalog Units of Work on a postgresengine.Engine.
type UnitOfWorkFactory struct {
	engine *postgresengine.Engine
}

// NewUnitOfWorkFactory creates a UnitOfWorkFactory.
func NewUnitOfWorkFactory(engine *postgresengine.Engine) (*UnitOfWorkFactory, error) {
	if engine == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return &UnitOfWorkFactory{engine: engine}, nil
}

// Begin opens a fresh Unit of Work.
func (f *UnitOfWorkFactory) Begin() shell.UnitOfWork {
	return &UnitOfWork{engine: f.engine, uow: f.engine.BeginUnitOfWork()}
}

// StoredEvents reads back the complete stored event log.
func (f *UnitOfWorkFactory) StoredEvents(ctx context.Context) (eventstore.StoredEvents, error) {
	return f.engine.StoredEvents(ctx)
}

// ReadAll reads back and decodes the complete stored event log.
func (f *UnitOfWorkFactory) ReadAll(ctx context.Context) (core.DomainEvents, error) {
	return f.ReadMatching(ctx, eventstore.Filter{})
}

// ReadMatching reads back and decodes the stored events whose name passes the filter.
// The filter is applied by the database.
func (f *UnitOfWorkFactory) ReadMatching(ctx context.Context, filter eventstore.Filter) (core.DomainEvents, error) {
	storedEvents, err := f.engine.StoredEventsMatching(ctx, filter)
	if err != nil {
		return nil, err
	}

	return shell.DomainEventsFrom(storedEvents)
}

// UnitOfWork binds the catalog repositories and the event store to one engine Unit of Work.
type UnitOfWork struct {
	engine *postgresengine.Engine
	uow    *postgresengine.UnitOfWork
}

// EventStore returns the event store bound to this Unit of Work.
func (u *UnitOfWork) EventStore() shell.EventStore {
	return EventStore{target: u.uow.EventStore()}
}

// Books returns the book repository bound to this Unit of Work.
func (u *UnitOfWork) Books() core.BookRepository {
	return BookRepository{engine: u.engine, uow: u.uow}
}

// Authors returns the author repository bound to this Unit of Work.
func (u *UnitOfWork) Authors() core.AuthorRepository {
	return AuthorRepository{engine: u.engine, uow: u.uow}
}

// Commit flushes all queued statements in one transaction.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	return u.uow.Commit(ctx)
}

// Pending exposes the queued statements, mainly for tests and debugging.
func (u *UnitOfWork) Pending() []postgresengine.Statement {
	return u.uow.Pending()
}

// EventStore serializes domain events and appends them to the engine's event store.
type EventStore struct {
	target postgresengine.EventStore
}

// Append converts the event into a stored event and queues its insert.
func (es EventStore) Append(event core.DomainEvent) error {
	storedEvent, err := shell.StoredEventFrom(event)
	if err != nil {
		return err
	}

	return es.target.Append(storedEvent)
}

// queue builds every statement before adding any of them, so a build failure queues nothing.
func queue(uow *postgresengine.UnitOfWork, builders ...postgresengine.SQLBuilder) error {
	statements := make([]postgresengine.Statement, 0, len(builders))

	for _, builder := range builders {
		stmt, err := postgresengine.BuildStatement(builder)
		if err != nil {
			return err
		}

		statements = append(statements, stmt)
	}

	for _, stmt := range statements {
		if err := uow.Add(stmt); err != nil {
			return err
		}
	}

	return nil
}
