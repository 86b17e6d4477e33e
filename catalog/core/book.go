package core

import (
	"slices"
	"strings"
)

// Book is the aggregate root for a catalog book.
//
// Invariants: the name is not blank, the page count is positive and there is at least one author.
// Author ids are references only; their existence is not checked.
type Book struct {
	id         BookID
	name       string
	pagesCount int
	authorIDs  AuthorIDs
}

// NewBook validates the input, constructs the Book and publishes BookCreated.
func NewBook(
	id BookID,
	name string,
	pagesCount int,
	authorIDs AuthorIDs,
	publisher EventPublisher,
) (*Book, error) {

	if publisher == nil {
		return nil, ErrNilPublisher
	}

	if err := assertBookInvariants(name, pagesCount, authorIDs); err != nil {
		return nil, err
	}

	book := &Book{
		id:         id,
		name:       name,
		pagesCount: pagesCount,
		authorIDs:  slices.Clone(authorIDs),
	}

	if err := publisher.Publish(BuildBookCreated(book.id, book.name, book.pagesCount, book.authorIDs)); err != nil {
		return nil, err
	}

	return book, nil
}

// MaterializeBook rebuilds a Book from persisted state. It publishes nothing.
func MaterializeBook(id BookID, name string, pagesCount int, authorIDs AuthorIDs) *Book {
	return &Book{
		id:         id,
		name:       name,
		pagesCount: pagesCount,
		authorIDs:  slices.Clone(authorIDs),
	}
}

// ID returns the identity of the Book.
func (b *Book) ID() BookID {
	return b.id
}

// Name returns the name of the Book.
func (b *Book) Name() string {
	return b.name
}

// PagesCount returns the page count of the Book.
func (b *Book) PagesCount() int {
	return b.pagesCount
}

// AuthorIDs returns a copy of the author ids of the Book.
func (b *Book) AuthorIDs() AuthorIDs {
	return slices.Clone(b.authorIDs)
}

// Rename changes the name. It publishes BookRenamed only if the name differs from the current one.
func (b *Book) Rename(name string, publisher EventPublisher) error {
	if publisher == nil {
		return ErrNilPublisher
	}

	if err := assertBookName(name); err != nil {
		return err
	}

	if err := b.publishRename(name, publisher); err != nil {
		return err
	}

	b.name = name

	return nil
}

// Update replaces page count and authors unconditionally and renames the Book.
// Nothing changes if any of the new values violates an invariant or a handler fails.
// Only a changed name publishes an event (BookRenamed).
func (b *Book) Update(name string, pagesCount int, authorIDs AuthorIDs, publisher EventPublisher) error {
	if publisher == nil {
		return ErrNilPublisher
	}

	if err := assertBookInvariants(name, pagesCount, authorIDs); err != nil {
		return err
	}

	if err := b.publishRename(name, publisher); err != nil {
		return err
	}

	b.name = name
	b.pagesCount = pagesCount
	b.authorIDs = slices.Clone(authorIDs)

	return nil
}

// publishRename runs before any field is assigned, so a failing handler leaves the Book untouched.
func (b *Book) publishRename(name string, publisher EventPublisher) error {
	if name == b.name {
		return nil
	}

	return publisher.Publish(BuildBookRenamed(b.id, name))
}

func assertBookInvariants(name string, pagesCount int, authorIDs AuthorIDs) error {
	if err := assertBookName(name); err != nil {
		return err
	}

	if pagesCount <= 0 {
		return invariantViolated("book page count must be positive")
	}

	if len(authorIDs) == 0 {
		return invariantViolated("book must have at least one author")
	}

	return nil
}

func assertBookName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invariantViolated("book name must not be empty")
	}

	return nil
}
