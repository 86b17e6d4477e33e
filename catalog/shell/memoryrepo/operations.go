package memoryrepo

import (
	"slices"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

// operation is the in-memory counterpart of one SQL statement.
// Operations capture their values when queued.
type operation func(t *tables) error

func insertBook(id core.BookID, name string, pagesCount int) operation {
	return func(t *tables) error {
		if _, exists := t.books[id]; exists {
			return ErrDuplicateKey
		}

		t.books[id] = bookRow{name: name, pagesCount: pagesCount}

		return nil
	}
}

func updateBook(id core.BookID, name string, pagesCount int) operation {
	return func(t *tables) error {
		if _, exists := t.books[id]; exists {
			t.books[id] = bookRow{name: name, pagesCount: pagesCount}
		}

		return nil
	}
}

func insertAuthorBook(authorID core.AuthorID, bookID core.BookID) operation {
	return func(t *tables) error {
		if _, exists := t.books[bookID]; !exists {
			return ErrForeignKeyViolation
		}

		t.authorBooks = append(t.authorBooks, authorBookRow{authorID: authorID, bookID: bookID})

		return nil
	}
}

func deleteAuthorBooks(bookID core.BookID) operation {
	return func(t *tables) error {
		t.authorBooks = slices.DeleteFunc(t.authorBooks, func(link authorBookRow) bool {
			return link.bookID == bookID
		})

		return nil
	}
}

func insertAuthor(id core.AuthorID, firstName, lastName, fullName string) operation {
	return func(t *tables) error {
		if _, exists := t.authors[id]; exists {
			return ErrDuplicateKey
		}

		t.authors[id] = authorRow{firstName: firstName, lastName: lastName, fullName: fullName}

		return nil
	}
}

func updateAuthor(id core.AuthorID, firstName, lastName, fullName string) operation {
	return func(t *tables) error {
		if _, exists := t.authors[id]; exists {
			t.authors[id] = authorRow{firstName: firstName, lastName: lastName, fullName: fullName}
		}

		return nil
	}
}

func appendStoredEvent(storedEvent eventstore.StoredEvent) operation {
	return func(t *tables) error {
		t.storedEvents = append(t.storedEvents, storedEvent)
		return nil
	}
}
