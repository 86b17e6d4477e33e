package shell

import "errors"

var (
	// ErrMappingToStoredEventFailed is returned when a domain event cannot be serialized.
	ErrMappingToStoredEventFailed = errors.New("mapping to stored event failed")

	// ErrMappingToDomainEventFailed is returned when a stored event cannot be deserialized.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrUnknownDomainEvent is returned for event types and names outside the closed event set.
	ErrUnknownDomainEvent = errors.New("unknown domain event")

	// ErrBookWithoutAuthors is returned when a persisted book has no author rows.
	ErrBookWithoutAuthors = errors.New("data integrity violated: book has no authors")

	// ErrBookNotFound is returned by use cases that require an existing book.
	ErrBookNotFound = errors.New("book not found")

	// ErrAuthorNotFound is returned by use cases that require an existing author.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrNilAggregate is returned when a repository is asked to write a nil aggregate.
	ErrNilAggregate = errors.New("aggregate must not be nil")

	// ErrNilUnitOfWorkFactory is returned when a command handler is built without a factory.
	ErrNilUnitOfWorkFactory = errors.New("unit of work factory must not be nil")
)
