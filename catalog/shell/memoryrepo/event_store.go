package memoryrepo

import (
	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
)

// EventStore queues stored events into its Unit of Work.
type EventStore struct {
	uow *UnitOfWork
}

// Append serializes the event and queues it. Nothing is stored before Commit.
func (es EventStore) Append(event core.DomainEvent) error {
	storedEvent, err := shell.StoredEventFrom(event)
	if err != nil {
		return err
	}

	return es.uow.add(appendStoredEvent(storedEvent))
}
