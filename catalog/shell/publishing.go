package shell

import (
	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
)

// WirePublisher creates the Publisher for one use case.
//
// The event store is subscribed first, so every published event is queued in the Unit of Work
// before any additional subscriber (a projector, for example) sees it.
func WirePublisher(eventStore EventStore, subscribers ...core.EventHandler) (*core.Publisher, error) {
	if eventStore == nil {
		return nil, core.ErrNilEventHandler
	}

	publisher := core.NewPublisher()

	if err := publisher.Subscribe(eventStore.Append); err != nil {
		return nil, err
	}

	for _, subscriber := range subscribers {
		if err := publisher.Subscribe(subscriber); err != nil {
			return nil, err
		}
	}

	return publisher, nil
}
