package core

// AuthorRenamedEventName is the stable event name.
const AuthorRenamedEventName = "author_renamed"

// AuthorRenamed is published when the first or last name of an Author changed.
type AuthorRenamed struct {
	AuthorID  AuthorID `json:"author_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	FullName  string   `json:"full_name"`
}

// BuildAuthorRenamed creates a new AuthorRenamed event.
func BuildAuthorRenamed(authorID AuthorID, firstName string, lastName string, fullName string) AuthorRenamed {
	return AuthorRenamed{
		AuthorID:  authorID,
		FirstName: firstName,
		LastName:  lastName,
		FullName:  fullName,
	}
}

// EventName returns the stable event name.
func (e AuthorRenamed) EventName() string {
	return AuthorRenamedEventName
}

func (e AuthorRenamed) isDomainEvent() {}
