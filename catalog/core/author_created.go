package core

// AuthorCreatedEventName is the stable event name.
const AuthorCreatedEventName = "author_created"

// AuthorCreated is published when a new Author was constructed.
type AuthorCreated struct {
	AuthorID  AuthorID `json:"author_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	FullName  string   `json:"full_name"`
}

// BuildAuthorCreated creates a new AuthorCreated event.
func BuildAuthorCreated(authorID AuthorID, firstName string, lastName string, fullName string) AuthorCreated {
	return AuthorCreated{
		AuthorID:  authorID,
		FirstName: firstName,
		LastName:  lastName,
		FullName:  fullName,
	}
}

// EventName returns the stable event name.
func (e AuthorCreated) EventName() string {
	return AuthorCreatedEventName
}

func (e AuthorCreated) isDomainEvent() {}
