// Package eventstore provides the core abstractions shared by the catalog's persistence engines.
//
// It defines the StoredEvent DTO that every engine appends to the append-only event log,
// the sentinel errors reported by the engines, and the dependency-free observability ports
// (Logger, ContextualLogger, MetricsCollector, TracingCollector) that engines and command
// wrappers accept as options.
//
// The event log holds one row per domain event: the event's stable name and its JSON payload.
// Rows are never updated.
//
// Common usage pattern:
//
//	storedEvent, err := eventstore.BuildStoredEvent("book_created", payloadJSON)
//	if err != nil {
//		// handle error
//	}
//
//	uow := engine.BeginUnitOfWork()
//	err = uow.EventStore().Append(storedEvent)
//	err = uow.Commit(ctx)
package eventstore
