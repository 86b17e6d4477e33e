package postgresengine

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

// EventStore appends stored events to the event table through its Unit of Work.
// It is meaningless once the Unit of Work is committed: Append then fails with eventstore.ErrUnitOfWorkCompleted.
type EventStore struct {
	uow *UnitOfWork
}

// Append queues the insert of one stored event. Nothing is written until the Unit of Work commits.
func (es EventStore) Append(event eventstore.StoredEvent) error {
	e := es.uow.engine

	stmt, buildErr := BuildStatement(
		goqu.Dialect(dialectPostgres).
			Insert(e.eventTableName).
			Prepared(true).
			Rows(goqu.Record{colName: event.Name, colPayload: event.Payload}),
	)
	if buildErr != nil {
		e.logError(context.Background(), logMsgBuildInsertQueryFailed, buildErr, logAttrEventName, event.Name)
		return buildErr
	}

	return es.uow.Add(stmt)
}
