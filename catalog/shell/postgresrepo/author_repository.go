package postgresrepo

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore/postgresengine"
)

// AuthorRepository implements core.AuthorRepository.
type AuthorRepository struct {
	engine *postgresengine.Engine
	uow    *postgresengine.UnitOfWork
}

// NextIdentity allocates the next value of the author id sequence.
func (r AuthorRepository) NextIdentity(ctx context.Context) (core.AuthorID, error) {
	return r.engine.NextIdentity(ctx, tableAuthor)
}

// Create queues the author insert.
func (r AuthorRepository) Create(author *core.Author) error {
	if author == nil {
		return shell.ErrNilAggregate
	}

	return queue(r.uow, goqu.Dialect(dialectPostgres).
		Insert(tableAuthor).
		Prepared(true).
		Rows(goqu.Record{
			colID:        author.ID(),
			colFirstName: author.FirstName(),
			colLastName:  author.LastName(),
			colFullName:  author.FullName(),
		}))
}

// Update queues the author update.
func (r AuthorRepository) Update(author *core.Author) error {
	if author == nil {
		return shell.ErrNilAggregate
	}

	return queue(r.uow, goqu.Dialect(dialectPostgres).
		Update(tableAuthor).
		Prepared(true).
		Set(goqu.Record{
			colFirstName: author.FirstName(),
			colLastName:  author.LastName(),
			colFullName:  author.FullName(),
		}).
		Where(goqu.C(colID).Eq(author.ID())))
}

// ByID loads a committed author.
func (r AuthorRepository) ByID(ctx context.Context, id core.AuthorID) (*core.Author, bool, error) {
	stmt, buildErr := postgresengine.BuildStatement(
		goqu.Dialect(dialectPostgres).
			From(tableAuthor).
			Select(colFirstName, colLastName).
			Where(goqu.C(colID).Eq(id)).
			Prepared(true),
	)
	if buildErr != nil {
		return nil, false, buildErr
	}

	rows, queryErr := r.engine.Query(ctx, stmt)
	if queryErr != nil {
		return nil, false, queryErr
	}
	defer r.engine.CloseRows(rows)

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			return nil, false, errors.Join(eventstore.ErrQueryingFailed, rowsErr)
		}

		return nil, false, nil
	}

	var firstName, lastName string
	if scanErr := rows.Scan(&firstName, &lastName); scanErr != nil {
		return nil, false, errors.Join(eventstore.ErrScanningDBRowFailed, scanErr)
	}

	return core.MaterializeAuthor(id, firstName, lastName), true, nil
}
