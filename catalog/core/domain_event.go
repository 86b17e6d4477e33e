package core

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent is a fact about one aggregate mutation.
//
// The set of events is closed: only BookCreated, BookRenamed, AuthorCreated and AuthorRenamed
// implement it. Consumers switch over those four types and treat anything else as an error.
type DomainEvent interface {
	// EventName returns the stable name used to classify the stored event.
	EventName() string

	isDomainEvent()
}

// EventHandler reacts to a published domain event.
type EventHandler func(event DomainEvent) error
