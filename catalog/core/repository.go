package core

import "context"

// BookRepository loads Books and queues their writes into the active Unit of Work.
// Create and Update write nothing until the Unit of Work commits.
type BookRepository interface {
	NextIdentity(ctx context.Context) (BookID, error)
	Create(book *Book) error
	Update(book *Book) error
	ByID(ctx context.Context, id BookID) (book *Book, found bool, err error)
}

// AuthorRepository loads Authors and queues their writes into the active Unit of Work.
type AuthorRepository interface {
	NextIdentity(ctx context.Context) (AuthorID, error)
	Create(author *Author) error
	Update(author *Author) error
	ByID(ctx context.Context, id AuthorID) (author *Author, found bool, err error)
}
