package shell_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
)

type eventStoreSpy struct {
	appended core.DomainEvents
	err      error
	trace    *[]string
}

func (s *eventStoreSpy) Append(event core.DomainEvent) error {
	if s.trace != nil {
		*s.trace = append(*s.trace, "eventstore")
	}

	if s.err != nil {
		return s.err
	}

	s.appended = append(s.appended, event)

	return nil
}

func Test_WirePublisher_Subscribes_EventStore_Before_Other_Subscribers(t *testing.T) {
	// arrange
	trace := make([]string, 0)
	eventStore := &eventStoreSpy{trace: &trace}
	projector := func(core.DomainEvent) error {
		trace = append(trace, "projector")
		return nil
	}

	publisher, err := shell.WirePublisher(eventStore, projector)
	require.NoError(t, err)

	// act
	publishErr := publisher.Publish(core.BuildBookRenamed(1, "Dune"))

	// assert
	require.NoError(t, publishErr)
	assert.Equal(t, []string{"eventstore", "projector"}, trace)
	assert.Equal(t, core.DomainEvents{core.BuildBookRenamed(1, "Dune")}, eventStore.appended)
	assert.Equal(t, 2, publisher.HandlerCount())
}

func Test_WirePublisher_Surfaces_EventStore_Failure(t *testing.T) {
	// arrange
	appendErr := errors.New("unit of work completed")
	publisher, err := shell.WirePublisher(&eventStoreSpy{err: appendErr})
	require.NoError(t, err)

	// act
	publishErr := publisher.Publish(core.BuildBookRenamed(1, "Dune"))

	// assert
	assert.ErrorIs(t, publishErr, core.ErrPublishingFailed)
	assert.ErrorIs(t, publishErr, appendErr)
}

func Test_WirePublisher_Rejects_Nil_Arguments(t *testing.T) {
	// act
	_, nilStoreErr := shell.WirePublisher(nil)
	_, nilSubscriberErr := shell.WirePublisher(&eventStoreSpy{}, nil)

	// assert
	assert.ErrorIs(t, nilStoreErr, core.ErrNilEventHandler)
	assert.ErrorIs(t, nilSubscriberErr, core.ErrNilEventHandler)
}
