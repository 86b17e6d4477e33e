package memoryrepo

import (
	"context"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
)

// BookRepository implements core.BookRepository on a Database.
type BookRepository struct {
	uow *UnitOfWork
}

// NextIdentity allocates the next book id. Allocated ids are never handed out twice.
func (r BookRepository) NextIdentity(_ context.Context) (core.BookID, error) {
	return r.uow.db.nextBookID(), nil
}

// Create queues the book row followed by one author_book row per author.
func (r BookRepository) Create(book *core.Book) error {
	if book == nil {
		return shell.ErrNilAggregate
	}

	ops := []operation{insertBook(book.ID(), book.Name(), book.PagesCount())}
	for _, authorID := range book.AuthorIDs() {
		ops = append(ops, insertAuthorBook(authorID, book.ID()))
	}

	return r.uow.add(ops...)
}

// Update queues the book row update and replaces all of its author_book rows.
func (r BookRepository) Update(book *core.Book) error {
	if book == nil {
		return shell.ErrNilAggregate
	}

	ops := []operation{
		updateBook(book.ID(), book.Name(), book.PagesCount()),
		deleteAuthorBooks(book.ID()),
	}
	for _, authorID := range book.AuthorIDs() {
		ops = append(ops, insertAuthorBook(authorID, book.ID()))
	}

	return r.uow.add(ops...)
}

// ByID loads a committed book with its author ids in ascending order.
func (r BookRepository) ByID(_ context.Context, id core.BookID) (*core.Book, bool, error) {
	row, authorIDs, found := r.uow.db.book(id)
	if !found {
		return nil, false, nil
	}

	if len(authorIDs) == 0 {
		return nil, false, shell.ErrBookWithoutAuthors
	}

	return core.MaterializeBook(id, row.name, row.pagesCount, authorIDs), true, nil
}

// AuthorRepository implements core.AuthorRepository on a Database.
type AuthorRepository struct {
	uow *UnitOfWork
}

// NextIdentity allocates the next author id.
func (r AuthorRepository) NextIdentity(_ context.Context) (core.AuthorID, error) {
	return r.uow.db.nextAuthorID(), nil
}

// Create queues the author row.
func (r AuthorRepository) Create(author *core.Author) error {
	if author == nil {
		return shell.ErrNilAggregate
	}

	return r.uow.add(insertAuthor(author.ID(), author.FirstName(), author.LastName(), author.FullName()))
}

// Update queues the author row update.
func (r AuthorRepository) Update(author *core.Author) error {
	if author == nil {
		return shell.ErrNilAggregate
	}

	return r.uow.add(updateAuthor(author.ID(), author.FirstName(), author.LastName(), author.FullName()))
}

// ByID loads a committed author.
func (r AuthorRepository) ByID(_ context.Context, id core.AuthorID) (*core.Author, bool, error) {
	row, found := r.uow.db.author(id)
	if !found {
		return nil, false, nil
	}

	return core.MaterializeAuthor(id, row.firstName, row.lastName), true, nil
}
