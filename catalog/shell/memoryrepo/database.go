package memoryrepo

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

var (
	// ErrDuplicateKey is returned by Commit when a row with the same primary key already exists.
	ErrDuplicateKey = errors.New("duplicate key value violates primary key")

	// ErrForeignKeyViolation is returned by Commit when an author_book row references a missing book.
	ErrForeignKeyViolation = errors.New("insert violates foreign key constraint on book")
)

type bookRow struct {
	name       string
	pagesCount int
}

type authorRow struct {
	firstName string
	lastName  string
	fullName  string
}

type authorBookRow struct {
	authorID core.AuthorID
	bookID   core.BookID
}

type tables struct {
	books        map[core.BookID]bookRow
	authors      map[core.AuthorID]authorRow
	authorBooks  []authorBookRow
	storedEvents eventstore.StoredEvents
}

func (t tables) clone() tables {
	return tables{
		books:        maps.Clone(t.books),
		authors:      maps.Clone(t.authors),
		authorBooks:  slices.Clone(t.authorBooks),
		storedEvents: slices.Clone(t.storedEvents),
	}
}

// Option defines a functional option for configuring the Database.
type Option func(*Database)

// WithLogger makes the Database log committed and failed Units of Work.
func WithLogger(logger eventstore.Logger) Option {
	return func(db *Database) {
		db.logger = logger
	}
}

// Database is the committed state shared by all Units of Work it opens.
type Database struct {
	mu          sync.RWMutex
	state       tables
	bookSeq     int64
	authorSeq   int64
	logger      eventstore.Logger
	commitCount int
}

// NewDatabase creates an empty Database.
func NewDatabase(options ...Option) *Database {
	db := &Database{
		state: tables{
			books:        make(map[core.BookID]bookRow),
			authors:      make(map[core.AuthorID]authorRow),
			authorBooks:  make([]authorBookRow, 0),
			storedEvents: make(eventstore.StoredEvents, 0),
		},
	}

	for _, option := range options {
		option(db)
	}

	return db
}

// Begin opens a fresh Unit of Work.
func (db *Database) Begin() shell.UnitOfWork {
	return newUnitOfWork(db)
}

// StoredEvents returns a copy of the stored event log in append order.
func (db *Database) StoredEvents(_ context.Context) (eventstore.StoredEvents, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return slices.Clone(db.state.storedEvents), nil
}

// ReadAll decodes the complete stored event log.
func (db *Database) ReadAll(ctx context.Context) (core.DomainEvents, error) {
	return db.ReadMatching(ctx, eventstore.Filter{})
}

// ReadMatching decodes the stored events whose name passes the filter.
func (db *Database) ReadMatching(ctx context.Context, filter eventstore.Filter) (core.DomainEvents, error) {
	storedEvents, err := db.StoredEvents(ctx)
	if err != nil {
		return nil, err
	}

	return shell.DomainEventsFrom(filter.Apply(storedEvents))
}

// CommitCount returns how many non-empty Units of Work were committed successfully.
func (db *Database) CommitCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.commitCount
}

func (db *Database) nextBookID() core.BookID {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.bookSeq++

	return db.bookSeq
}

func (db *Database) nextAuthorID() core.AuthorID {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.authorSeq++

	return db.authorSeq
}

// apply runs all operations against a copy of the committed state and publishes the copy
// only if every operation succeeded.
func (db *Database) apply(operations []operation) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	working := db.state.clone()

	for _, op := range operations {
		if err := op(&working); err != nil {
			return err
		}
	}

	db.state = working
	db.commitCount++

	return nil
}

func (db *Database) book(id core.BookID) (bookRow, core.AuthorIDs, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row, found := db.state.books[id]
	if !found {
		return bookRow{}, nil, false
	}

	authorIDs := make(core.AuthorIDs, 0)
	for _, link := range db.state.authorBooks {
		if link.bookID == id {
			authorIDs = append(authorIDs, link.authorID)
		}
	}

	slices.Sort(authorIDs)

	return row, authorIDs, true
}

func (db *Database) author(id core.AuthorID) (authorRow, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row, found := db.state.authors[id]

	return row, found
}

func (db *Database) logInfo(msg string, args ...any) {
	if db.logger != nil {
		db.logger.Info(msg, args...)
	}
}

func (db *Database) logError(msg string, args ...any) {
	if db.logger != nil {
		db.logger.Error(msg, args...)
	}
}
