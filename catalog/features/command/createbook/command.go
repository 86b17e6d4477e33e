package createbook

import (
	"slices"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
)

// Command represents the intent to add a new book to the catalog.
type Command struct {
	Name       string
	PagesCount int
	AuthorIDs  core.AuthorIDs
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return "CreateBook"
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(name string, pagesCount int, authorIDs core.AuthorIDs) Command {
	return Command{
		Name:       name,
		PagesCount: pagesCount,
		AuthorIDs:  slices.Clone(authorIDs),
	}
}
