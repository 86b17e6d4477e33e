package createbook

import (
	"context"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
)

// CommandHandler orchestrates the Create Book workflow:
// Begin → Wire publisher → NextIdentity → NewBook → Create → Commit.
type CommandHandler struct {
	unitOfWorkFactory shell.UnitOfWorkFactory
	subscribers       []core.EventHandler
}

// NewCommandHandler creates a new CommandHandler.
// The subscribers receive every published event after the event store has queued it.
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

// Handle creates the book and returns its id.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	uow := h.unitOfWorkFactory.Begin()

	publisher, err := shell.WirePublisher(uow.EventStore(), h.subscribers...)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	id, err := uow.Books().NextIdentity(ctx)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	book, err := core.NewBook(id, command.Name, command.PagesCount, command.AuthorIDs, publisher)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	if err = uow.Books().Create(book); err != nil {
		return shell.HandlerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shell.HandlerResult{}, err
	}

	return shell.NewSuccessResult(book.ID()), nil
}
