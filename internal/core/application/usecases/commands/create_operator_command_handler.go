package commands

import (
	"context"

	"haulage/internal/core/domain/model/operator"
)

// CreateOperatorCommandHandler handles operator registration.
type CreateOperatorCommandHandler struct {
	uowFactory OperatorUoWFactory
}

// NewCreateOperatorCommandHandler creates a handler for operator registration.
func NewCreateOperatorCommandHandler(uowFactory OperatorUoWFactory) CreateOperatorCommandHandler {
	return CreateOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the operator registration command.
func (h CreateOperatorCommandHandler) Handle(ctx context.Context, command CreateOperatorCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newOperator, err := operator.NewOperator(command.OperatorID(), command.Username(), command.FullName())
	if err != nil {
		return err
	}

	if err = uow.OperatorRepository().Add(ctx, newOperator); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
