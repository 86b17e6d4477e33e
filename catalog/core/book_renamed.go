package core

// BookRenamedEventName is the stable event name.
const BookRenamedEventName = "book_renamed"

// BookRenamed is published when the name of a Book changed.
type BookRenamed struct {
	BookID BookID `json:"book_id"`
	Name   string `json:"name"`
}

// BuildBookRenamed creates a new BookRenamed event.
func BuildBookRenamed(bookID BookID, name string) BookRenamed {
	return BookRenamed{
		BookID: bookID,
		Name:   name,
	}
}

// EventName returns the stable event name.
func (e BookRenamed) EventName() string {
	return BookRenamedEventName
}

func (e BookRenamed) isDomainEvent() {}
