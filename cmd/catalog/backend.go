package main

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell/config"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell/memoryrepo"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell/postgresrepo"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore/postgresengine"
)

// catalog is what the commands need from a storage backend.
type catalog interface {
	shell.UnitOfWorkFactory
	ReadMatching(ctx context.Context, filter eventstore.Filter) (core.DomainEvents, error)
}

// openCatalog connects the backend selected by cfg.AdapterType. The returned close func releases the connection.
func openCatalog(ctx context.Context, cfg config.PostgresConfig, obs *instruments) (catalog, func(), error) {
	if cfg.AdapterType == config.AdapterTypeMemory {
		return memoryrepo.NewDatabase(memoryrepo.WithLogger(obs.logger)), func() {}, nil
	}

	options := []postgresengine.Option{
		postgresengine.WithEventTableName(cfg.EventTable),
		postgresengine.WithLogger(obs.logger),
		postgresengine.WithContextualLogger(obs.contextualLogger),
		postgresengine.WithMetrics(obs.metrics),
		postgresengine.WithTracing(obs.tracing),
	}

	var (
		engine  *postgresengine.Engine
		closeDB func()
		err     error
	)

	switch cfg.AdapterType {
	case config.AdapterTypePGXPool:
		pool, connErr := config.PostgresPGXPool(ctx, cfg)
		if connErr != nil {
			return nil, nil, connErr
		}
		closeDB = pool.Close
		engine, err = postgresengine.NewEngineFromPGXPool(pool, options...)

	case config.AdapterTypeSQLDB:
		db, connErr := config.PostgresSQLDB(ctx, cfg)
		if connErr != nil {
			return nil, nil, connErr
		}
		closeDB = func() { _ = db.Close() }
		engine, err = postgresengine.NewEngineFromSQLDB(db, options...)

	case config.AdapterTypeSQLX:
		db, connErr := config.PostgresSQLX(ctx, cfg)
		if connErr != nil {
			return nil, nil, connErr
		}
		closeDB = func() { _ = db.Close() }
		engine, err = postgresengine.NewEngineFromSQLX(db, options...)

	default:
		return nil, nil, errors.Join(config.ErrUnknownAdapterType, errors.New(cfg.AdapterType))
	}

	if err != nil {
		closeDB()
		return nil, nil, err
	}

	factory, err := postgresrepo.NewUnitOfWorkFactory(engine)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	return factory, closeDB, nil
}
