package updatebook

import (
	"slices"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
)

// Command represents the intent to change an existing book.
type Command struct {
	BookID     core.BookID
	Name       string
	PagesCount int
	AuthorIDs  core.AuthorIDs
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return "UpdateBook"
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookID, name string, pagesCount int, authorIDs core.AuthorIDs) Command {
	return Command{
		BookID:     bookID,
		Name:       name,
		PagesCount: pagesCount,
		AuthorIDs:  slices.Clone(authorIDs),
	}
}
