package createauthor

import (
	"context"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
)

// CommandHandler orchestrates the Create Author workflow:
// Begin → Wire publisher → NextIdentity → NewAuthor → Create → Commit.
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

// Handle creates the author and returns its id.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	uow := h.unitOfWorkFactory.Begin()

	publisher, err := shell.WirePublisher(uow.EventStore(), h.subscribers...)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	id, err := uow.Authors().NextIdentity(ctx)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	author, err := core.NewAuthor(id, command.FirstName, command.LastName, publisher)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	if err = uow.Authors().Create(author); err != nil {
		return shell.HandlerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shell.HandlerResult{}, err
	}

	return shell.NewSuccessResult(author.ID()), nil
}
