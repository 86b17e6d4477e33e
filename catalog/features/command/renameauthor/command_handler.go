package renameauthor

import (
	"context"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
)

// CommandHandler orchestrates the Rename Author workflow:
// Begin → Wire publisher → ByID → Rename → queue Update → Commit.
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

// Handle renames the author. It fails with shell.ErrAuthorNotFound if the author does not exist.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	uow := h.unitOfWorkFactory.Begin()

	publisher, err := shell.WirePublisher(uow.EventStore(), h.subscribers...)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	author, found, err := uow.Authors().ByID(ctx, command.AuthorID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	if !found {
		return shell.HandlerResult{}, shell.ErrAuthorNotFound
	}

	unchanged := author.FirstName() == command.FirstName && author.LastName() == command.LastName

	if err = author.Rename(command.FirstName, command.LastName, publisher); err != nil {
		return shell.HandlerResult{}, err
	}

	if unchanged {
		return shell.NewIdempotentResult(author.ID()), nil
	}

	if err = uow.Authors().Update(author); err != nil {
		return shell.HandlerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shell.HandlerResult{}, err
	}

	return shell.NewSuccessResult(author.ID()), nil
}
