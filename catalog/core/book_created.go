package core

import "slices"

// BookCreatedEventName is the stable event name.
const BookCreatedEventName = "book_created"

// BookCreated is published when a new Book was constructed.
type BookCreated struct {
	BookID     BookID    `json:"book_id"`
	Name       string    `json:"name"`
	PagesCount int       `json:"pages_count"`
	AuthorIDs  AuthorIDs `json:"author_ids"`
}

// BuildBookCreated creates a new BookCreated event.
func BuildBookCreated(bookID BookID, name string, pagesCount int, authorIDs AuthorIDs) BookCreated {
	return BookCreated{
		BookID:     bookID,
		Name:       name,
		PagesCount: pagesCount,
		AuthorIDs:  slices.Clone(authorIDs),
	}
}

// EventName returns the stable event name.
func (e BookCreated) EventName() string {
	return BookCreatedEventName
}

func (e BookCreated) isDomainEvent() {}
