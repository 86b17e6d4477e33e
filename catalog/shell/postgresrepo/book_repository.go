package postgresrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore/postgresengine"
)

// BookRepository implements core.BookRepository.
type BookRepository struct {
	engine *postgresengine.Engine
	uow    *postgresengine.UnitOfWork
}

// NextIdentity allocates the next value of the book id sequence.
func (r BookRepository) NextIdentity(ctx context.Context) (core.BookID, error) {
	return r.engine.NextIdentity(ctx, tableBook)
}

// Create queues the book insert followed by one author_book insert per author.
func (r BookRepository) Create(book *core.Book) error {
	if book == nil {
		return shell.ErrNilAggregate
	}

	builders := []postgresengine.SQLBuilder{
		goqu.Dialect(dialectPostgres).
			Insert(tableBook).
			Prepared(true).
			Rows(goqu.Record{colID: book.ID(), colName: book.Name(), colPagesCount: book.PagesCount()}),
	}

	return queue(r.uow, append(builders, authorBookInserts(book)...)...)
}

// Update queues the book update and replaces all author_book rows of the book.
func (r BookRepository) Update(book *core.Book) error {
	if book == nil {
		return shell.ErrNilAggregate
	}

	dialect := goqu.Dialect(dialectPostgres)
	builders := []postgresengine.SQLBuilder{
		dialect.
			Update(tableBook).
			Prepared(true).
			Set(goqu.Record{colName: book.Name(), colPagesCount: book.PagesCount()}).
			Where(goqu.C(colID).Eq(book.ID())),
		dialect.
			Delete(tableAuthorBook).
			Prepared(true).
			Where(goqu.C(colBookID).Eq(book.ID())),
	}

	return queue(r.uow, append(builders, authorBookInserts(book)...)...)
}

func authorBookInserts(book *core.Book) []postgresengine.SQLBuilder {
	authorIDs := book.AuthorIDs()
	builders := make([]postgresengine.SQLBuilder, 0, len(authorIDs))

	for _, authorID := range authorIDs {
		builders = append(builders, goqu.Dialect(dialectPostgres).
			Insert(tableAuthorBook).
			Prepared(true).
			Rows(goqu.Record{colAuthorID: authorID, colBookID: book.ID()}))
	}

	return builders
}

// ByID loads a committed book. The author ids come back in ascending order.
func (r BookRepository) ByID(ctx context.Context, id core.BookID) (*core.Book, bool, error) {
	stmt, buildErr := postgresengine.BuildStatement(
		goqu.Dialect(dialectPostgres).
			From(goqu.T(tableBook).As("b")).
			LeftJoin(
				goqu.T(tableAuthorBook).As("ab"),
				goqu.On(goqu.I("ab."+colBookID).Eq(goqu.I("b."+colID))),
			).
			Select(goqu.I("b."+colName), goqu.I("b."+colPagesCount), goqu.I("ab."+colAuthorID)).
			Where(goqu.I("b." + colID).Eq(id)).
			Order(goqu.I("ab." + colAuthorID).Asc()).
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

	var (
		name       string
		pagesCount int
		rowCount   int
	)

	authorIDs := make(core.AuthorIDs, 0)

	for rows.Next() {
		var authorID sql.NullInt64

		if scanErr := rows.Scan(&name, &pagesCount, &authorID); scanErr != nil {
			return nil, false, errors.Join(eventstore.ErrScanningDBRowFailed, scanErr)
		}

		rowCount++

		if authorID.Valid {
			authorIDs = append(authorIDs, authorID.Int64)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, false, errors.Join(eventstore.ErrQueryingFailed, rowsErr)
	}

	if rowCount == 0 {
		return nil, false, nil
	}

	if len(authorIDs) == 0 {
		return nil, false, shell.ErrBookWithoutAuthors
	}

	return core.MaterializeBook(id, name, pagesCount, authorIDs), true, nil
}
