package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

// DomainEventsFrom converts multiple StoredEvents to DomainEvents.
func DomainEventsFrom(storedEvents eventstore.StoredEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storedEvents))

	for _, storedEvent := range storedEvents {
		domainEvent, err := DomainEventFrom(storedEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StoredEvent to its corresponding DomainEvent.
func DomainEventFrom(storedEvent eventstore.StoredEvent) (core.DomainEvent, error) {
	switch storedEvent.Name {
	case core.BookCreatedEventName:
		return unmarshalPayload[core.BookCreated](storedEvent.Payload)

	case core.BookRenamedEventName:
		return unmarshalPayload[core.BookRenamed](storedEvent.Payload)

	case core.AuthorCreatedEventName:
		return unmarshalPayload[core.AuthorCreated](storedEvent.Payload)

	case core.AuthorRenamedEventName:
		return unmarshalPayload[core.AuthorRenamed](storedEvent.Payload)

	default:
		return nil, errors.Join(ErrMappingToDomainEventFailed, ErrUnknownDomainEvent)
	}
}

func unmarshalPayload[E core.DomainEvent](payloadJSON string) (core.DomainEvent, error) {
	var event E

	if err := jsoniter.ConfigFastest.UnmarshalFromString(payloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
