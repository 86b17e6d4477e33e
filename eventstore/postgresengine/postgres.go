package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore/postgresengine/internal/adapters"
)

const (
	defaultEventTableName = "stored_event"
	dialectPostgres       = "postgres"
	colName               = "name"
	colPayload            = "payload"
	colID                 = "id"
	funcNextval           = "nextval"
	funcSerialSequence    = "pg_get_serial_sequence"
)

// Rows is the cursor returned by Engine.Query. Callers must close it.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Engine owns the database handle and the observability collaborators shared by all Units of Work.
type Engine struct {
	db               adapters.DBAdapter
	eventTableName   string
	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
	tracingCollector eventstore.TracingCollector
}

// NewEngineFromPGXPool creates a new Engine using a pgx Pool with optional configuration.
func NewEngineFromPGXPool(db *pgxpool.Pool, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewPGXAdapter(db), options...)
}

// NewEngineFromSQLDB creates a new Engine using a sql.DB with optional configuration.
func NewEngineFromSQLDB(db *sql.DB, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewSQLAdapter(db), options...)
}

// NewEngineFromSQLX creates a new Engine using a sqlx.DB with optional configuration.
func NewEngineFromSQLX(db *sqlx.DB, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewSQLXAdapter(db), options...)
}

func newEngine(db adapters.DBAdapter, options ...Option) (*Engine, error) {
	e := &Engine{
		db:             db,
		eventTableName: defaultEventTableName,
	}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// EventTableName returns the name of the stored event table.
func (e *Engine) EventTableName() string {
	return e.eventTableName
}

// BeginUnitOfWork opens a fresh Unit of Work. It holds no database resources until Commit.
func (e *Engine) BeginUnitOfWork() *UnitOfWork {
	return newUnitOfWork(e)
}

// Query runs a read statement outside any Unit of Work.
func (e *Engine) Query(ctx context.Context, stmt Statement) (Rows, error) {
	start := time.Now()
	rows, queryErr := e.db.Query(ctx, stmt.SQL, stmt.Args...)
	duration := time.Since(start)
	e.logQueryWithDuration(ctx, stmt.SQL, logActionQuery, duration)

	if queryErr != nil {
		e.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, stmt.SQL)

		return nil, errors.Join(eventstore.ErrQueryingFailed, queryErr)
	}

	return rows, nil
}

// CloseRows closes the rows and logs a warning if that fails.
func (e *Engine) CloseRows(rows Rows) {
	if closeErr := rows.Close(); closeErr != nil {
		e.logWarn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// NextIdentity allocates the next value of the serial sequence behind the id column of the given table.
func (e *Engine) NextIdentity(ctx context.Context, tableName string) (int64, error) {
	if tableName == "" {
		return 0, eventstore.ErrEmptyTableNameSupplied
	}

	stmt, buildErr := BuildStatement(
		goqu.Dialect(dialectPostgres).
			Select(goqu.Func(funcNextval, goqu.Func(funcSerialSequence, tableName, colID))).
			Prepared(true),
	)
	if buildErr != nil {
		e.logError(ctx, logMsgBuildQueryFailed, buildErr, logAttrTable, tableName)
		return 0, errors.Join(eventstore.ErrNextIdentityFailed, buildErr)
	}

	rows, queryErr := e.Query(ctx, stmt)
	if queryErr != nil {
		return 0, errors.Join(eventstore.ErrNextIdentityFailed, queryErr)
	}
	defer e.CloseRows(rows)

	var id int64
	if !rows.Next() {
		rowsErr := rows.Err()
		if rowsErr == nil {
			rowsErr = sql.ErrNoRows
		}

		e.logError(ctx, logMsgNextIdentityFailed, rowsErr, logAttrTable, tableName)

		return 0, errors.Join(eventstore.ErrNextIdentityFailed, rowsErr)
	}

	if scanErr := rows.Scan(&id); scanErr != nil {
		e.logError(ctx, logMsgScanRowFailed, scanErr, logAttrTable, tableName)
		return 0, errors.Join(eventstore.ErrNextIdentityFailed, eventstore.ErrScanningDBRowFailed, scanErr)
	}

	return id, nil
}

// StoredEvents reads back the complete stored event log.
// The log has no ordering column, so the order of the result is the physical order of the table.
func (e *Engine) StoredEvents(ctx context.Context) (eventstore.StoredEvents, error) {
	return e.StoredEventsMatching(ctx, eventstore.Filter{})
}

// StoredEventsMatching reads back the stored events whose name passes the filter.
func (e *Engine) StoredEventsMatching(ctx context.Context, filter eventstore.Filter) (eventstore.StoredEvents, error) {
	query := goqu.Dialect(dialectPostgres).
		From(e.eventTableName).
		Select(colName, colPayload)

	if !filter.IsEmpty() {
		query = query.Where(goqu.C(colName).In(filter.Names()))
	}

	stmt, buildErr := BuildStatement(query.Prepared(true))
	if buildErr != nil {
		e.logError(ctx, logMsgBuildQueryFailed, buildErr, logAttrTable, e.eventTableName)
		return nil, buildErr
	}

	rows, queryErr := e.Query(ctx, stmt)
	if queryErr != nil {
		return nil, queryErr
	}
	defer e.CloseRows(rows)

	storedEvents := make(eventstore.StoredEvents, 0)

	for rows.Next() {
		var name, payload string

		if scanErr := rows.Scan(&name, &payload); scanErr != nil {
			e.logError(ctx, logMsgScanRowFailed, scanErr, logAttrTable, e.eventTableName)
			return nil, errors.Join(eventstore.ErrScanningDBRowFailed, scanErr)
		}

		storedEvents = append(storedEvents, eventstore.StoredEvent{Name: name, Payload: payload})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		e.logError(ctx, logMsgDBQueryFailed, rowsErr, logAttrTable, e.eventTableName)
		return nil, errors.Join(eventstore.ErrQueryingFailed, rowsErr)
	}

	return storedEvents, nil
}
