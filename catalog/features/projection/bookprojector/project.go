package bookprojector

import (
	"errors"
	"maps"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
)

// BookTitles maps book ids to their current name.
type BookTitles map[core.BookID]string

// Project folds the history into BookTitles, starting from an optional base projection.
// It returns shell.ErrUnknownDomainEvent for events outside the closed event set.
func Project(history core.DomainEvents, base ...BookTitles) (BookTitles, error) {
	titles := make(BookTitles)
	if len(base) > 0 {
		maps.Copy(titles, base[0])
	}

	for _, event := range history {
		if err := apply(titles, event); err != nil {
			return nil, err
		}
	}

	return titles, nil
}

func apply(titles BookTitles, event core.DomainEvent) error {
	switch e := event.(type) {
	case core.BookCreated:
		titles[e.BookID] = e.Name

	case core.BookRenamed:
		titles[e.BookID] = e.Name

	case core.AuthorCreated, core.AuthorRenamed:
		// not relevant for book titles

	default:
		return errors.Join(shell.ErrUnknownDomainEvent, errors.New("book projector"))
	}

	return nil
}
