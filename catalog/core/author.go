package core

import (
	"strings"
)

// Author is the aggregate root for a catalog author.
// The full name is always "<first name> <last name>".
type Author struct {
	id        AuthorID
	firstName string
	lastName  string
	fullName  string
}

// NewAuthor validates the names, constructs the Author and publishes AuthorCreated.
func NewAuthor(id AuthorID, firstName string, lastName string, publisher EventPublisher) (*Author, error) {
	if publisher == nil {
		return nil, ErrNilPublisher
	}

	if err := assertAuthorNames(firstName, lastName); err != nil {
		return nil, err
	}

	author := MaterializeAuthor(id, firstName, lastName)

	if err := publisher.Publish(
		BuildAuthorCreated(author.id, author.firstName, author.lastName, author.fullName),
	); err != nil {
		return nil, err
	}

	return author, nil
}

// MaterializeAuthor rebuilds an Author from persisted state. It publishes nothing.
func MaterializeAuthor(id AuthorID, firstName string, lastName string) *Author {
	return &Author{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		fullName:  fullNameOf(firstName, lastName),
	}
}

// ID returns the identity of the Author.
func (a *Author) ID() AuthorID {
	return a.id
}

// FirstName returns the first name of the Author.
func (a *Author) FirstName() string {
	return a.firstName
}

// LastName returns the last name of the Author.
func (a *Author) LastName() string {
	return a.lastName
}

// FullName returns the derived full name of the Author.
func (a *Author) FullName() string {
	return a.fullName
}

// Rename changes first and last name. It publishes AuthorRenamed only if either of them changed.
func (a *Author) Rename(firstName string, lastName string, publisher EventPublisher) error {
	if publisher == nil {
		return ErrNilPublisher
	}

	if err := assertAuthorNames(firstName, lastName); err != nil {
		return err
	}

	if firstName == a.firstName && lastName == a.lastName {
		return nil
	}

	fullName := fullNameOf(firstName, lastName)
	if err := publisher.Publish(BuildAuthorRenamed(a.id, firstName, lastName, fullName)); err != nil {
		return err
	}

	a.firstName = firstName
	a.lastName = lastName
	a.fullName = fullName

	return nil
}

func fullNameOf(firstName string, lastName string) string {
	return firstName + " " + lastName
}

func assertAuthorNames(firstName string, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return invariantViolated("author first name must not be empty")
	}

	if strings.TrimSpace(lastName) == "" {
		return invariantViolated("author last name must not be empty")
	}

	return nil
}
