package core

import (
	"errors"
)

// BookID identifies a Book. Values come from the backend's sequence.
type BookID = int64

// AuthorID identifies an Author. Values come from the backend's sequence.
type AuthorID = int64

// AuthorIDs is an ordered list of author identities.
type AuthorIDs = []AuthorID

var (
	// ErrInvariantViolated is returned when an aggregate would end up in an invalid state.
	ErrInvariantViolated = errors.New("invariant violated")

	// ErrNilPublisher is returned when an aggregate operation is called without a publisher.
	ErrNilPublisher = errors.New("publisher must not be nil")

	// ErrNilEventHandler is returned when a nil handler is subscribed.
	ErrNilEventHandler = errors.New("event handler must not be nil")

	// ErrPublisherSealed is returned when a handler is subscribed after the first publish.
	ErrPublisherSealed = errors.New("publisher is sealed, subscribing after the first publish is not allowed")

	// ErrPublishingFailed is returned when at least one subscribed handler failed.
	ErrPublishingFailed = errors.New("publishing domain event failed")
)

func invariantViolated(rule string) error {
	return errors.Join(ErrInvariantViolated, errors.New(rule))
}
