package postgrescontainer

import (
	"context"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image      = "postgres:16-alpine"
	dbName     = "catalog"
	dbUser     = "test"
	dbPassword = "test"

	truncateAllTables = "TRUNCATE author_book, book, author, stored_event RESTART IDENTITY"
)

// Container is a running PostgreSQL with the catalog schema applied.
type Container struct {
	container *postgres.PostgresContainer
	DSN       string
}

// Start runs the container and waits until PostgreSQL accepts connections.
func Start(ctx context.Context) (*Container, error) {
	_, thisFile, _, _ := runtime.Caller(0)
	schemaPath := filepath.Join(filepath.Dir(thisFile), "schema.sql")

	pgContainer, err := postgres.Run(ctx,
		image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.WithInitScripts(schemaPath),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	return &Container{container: pgContainer, DSN: dsn}, nil
}

// Terminate stops and removes the container.
func (c *Container) Terminate(ctx context.Context) error {
	return c.container.Terminate(ctx)
}

// Reset empties all catalog tables and restarts their id sequences.
func (c *Container) Reset(ctx context.Context) error {
	pool, err := pgxpool.New(ctx, c.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	_, err = pool.Exec(ctx, truncateAllTables)

	return err
}
