package updatebook

import (
	"context"
	"slices"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
)

// CommandHandler orchestrates the Update Book workflow:
// Begin → Wire publisher → ByID → Update → queue Update → Commit.
type CommandHandler struct {
	unitOfWorkFactory shell.UnitOfWorkFactory
	subscribers       []core.EventHandler
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(
	unitOfWorkFactory shell.UnitOfWorkFactory,
	subscribers ...core.EventHandler,
) (CommandHandler, error) {
	if unitOfWorkFactory == nil {
		return CommandHandler{}, shell.ErrNilUnitOfWorkFactory
	}

	return CommandHandler{
		unitOfWorkFactory: unitOfWorkFactory,
		subscribers:       subscribers,
	}, nil
}

// Handle updates the book. It fails with shell.ErrBookNotFound if the book does not exist.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	uow := h.unitOfWorkFactory.Begin()

	publisher, err := shell.WirePublisher(uow.EventStore(), h.subscribers...)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	book, found, err := uow.Books().ByID(ctx, command.BookID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	if !found {
		return shell.HandlerResult{}, shell.ErrBookNotFound
	}

	unchanged := book.Name() == command.Name &&
		book.PagesCount() == command.PagesCount &&
		sameAuthors(book.AuthorIDs(), command.AuthorIDs)

	if err = book.Update(command.Name, command.PagesCount, command.AuthorIDs, publisher); err != nil {
		return shell.HandlerResult{}, err
	}

	if err = uow.Books().Update(book); err != nil {
		return shell.HandlerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shell.HandlerResult{}, err
	}

	if unchanged {
		return shell.NewIdempotentResult(book.ID()), nil
	}

	return shell.NewSuccessResult(book.ID()), nil
}

// sameAuthors compares author ids regardless of their order. Loaded books list them ascending.
func sameAuthors(current core.AuthorIDs, requested core.AuthorIDs) bool {
	sorted := slices.Clone(requested)
	slices.Sort(sorted)

	return slices.Equal(current, sorted)
}
