// Package postgresengine provides the PostgreSQL Unit of Work and event log engine.
//
// The engine owns a database handle (pgx pool, sql.DB or sqlx.DB) and hands out Units of Work.
// A Unit of Work buffers parameterized statements in order and flushes them inside one
// database transaction when it is committed. The buffer is cleared after every commit attempt,
// successful or not, and a committed Unit of Work refuses further statements.
//
// The EventStore bound to a Unit of Work turns an eventstore.StoredEvent into an insert
// statement for the configured event table and queues it, so events become durable only
// together with the entity writes of the same Unit of Work.
//
// Key features:
//   - Multiple database adapter support (PGX, SQL, SQLX)
//   - All-or-nothing commit with rollback on the first failing statement
//   - Parameterized statements built with goqu in prepared mode
//   - Identity allocation from per-table serial sequences
//   - Optional logging, metrics and tracing through dependency-free interfaces
//
// Usage examples:
//
//	db, _ := pgxpool.New(context.Background(), dsn)
//	engine, _ := postgresengine.NewEngineFromPGXPool(
//		db,
//		postgresengine.WithEventTableName("stored_event"),
//		postgresengine.WithLogger(slog.Default()),
//	)
//
//	uow := engine.BeginUnitOfWork()
//	_ = uow.EventStore().Append(storedEvent)
//	err := uow.Commit(ctx)
package postgresengine
