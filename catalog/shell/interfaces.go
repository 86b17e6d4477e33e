package shell

import (
	"context"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

// EventStore serializes domain events into the stored event log of its Unit of Work.
// Append either queues the event or returns an error; it never drops an event silently.
type EventStore interface {
	Append(event core.DomainEvent) error
}

// UnitOfWork bundles everything one use case writes: entity changes through the repositories
// and domain events through the event store. Nothing is durable before Commit.
//
// A UnitOfWork is single-use. After Commit, successful or not, all further writes fail.
type UnitOfWork interface {
	EventStore() EventStore
	Books() core.BookRepository
	Authors() core.AuthorRepository
	Commit(ctx context.Context) error
}

// UnitOfWorkFactory opens a fresh UnitOfWork per use case.
type UnitOfWorkFactory interface {
	Begin() UnitOfWork
}

// ReadsStoredEvents exposes the complete stored event log, mainly for verification and tooling.
type ReadsStoredEvents interface {
	StoredEvents(ctx context.Context) (eventstore.StoredEvents, error)
}

// Command represents the contract for all command types of the catalog.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Implementations should focus on the use case without observability concerns; wrap them with
// observable.CommandWrapper for instrumentation.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}
