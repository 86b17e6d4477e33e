package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
)

// recordingPublisher returns a Publisher whose only handler collects all published events.
func recordingPublisher(t *testing.T) (*core.Publisher, *core.DomainEvents) {
	t.Helper()

	publisher := core.NewPublisher()
	events := make(core.DomainEvents, 0)
	require.NoError(t, publisher.Subscribe(func(event core.DomainEvent) error {
		events = append(events, event)
		return nil
	}))

	return publisher, &events
}

// failingPublisher returns a Publisher whose only handler rejects every event.
func failingPublisher(t *testing.T) *core.Publisher {
	t.Helper()

	publisher := core.NewPublisher()
	require.NoError(t, publisher.Subscribe(func(core.DomainEvent) error {
		return errors.New("handler rejected the event")
	}))

	return publisher
}
