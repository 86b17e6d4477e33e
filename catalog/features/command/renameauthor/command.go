package renameauthor

import (
	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
)

// Command represents the intent to change the name of an existing author.
type Command struct {
	AuthorID  core.AuthorID
	FirstName string
	LastName  string
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return "RenameAuthor"
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(authorID core.AuthorID, firstName string, lastName string) Command {
	return Command{
		AuthorID:  authorID,
		FirstName: firstName,
		LastName:  lastName,
	}
}
