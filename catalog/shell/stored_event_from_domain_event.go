package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

// StoredEventFrom converts a DomainEvent to a StoredEvent: its stable name plus the JSON of its fields.
func StoredEventFrom(event core.DomainEvent) (eventstore.StoredEvent, error) {
	switch event.(type) {
	case core.BookCreated, core.BookRenamed, core.AuthorCreated, core.AuthorRenamed:
	default:
		return eventstore.StoredEvent{}, errors.Join(ErrMappingToStoredEventFailed, ErrUnknownDomainEvent)
	}

	payloadJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		return eventstore.StoredEvent{}, errors.Join(ErrMappingToStoredEventFailed, err)
	}

	storedEvent, err := eventstore.BuildStoredEvent(event.EventName(), payloadJSON)
	if err != nil {
		return eventstore.StoredEvent{}, errors.Join(ErrMappingToStoredEventFailed, err)
	}

	return storedEvent, nil
}
