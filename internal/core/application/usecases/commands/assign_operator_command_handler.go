package commands

import (
	"context"
)

// AssignOperatorCommandHandler handles operator assignment on a dispatch.
// Verifies the operator exists, binds it to the dispatch and persists the
// change without touching the dispatch status.
type AssignOperatorCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignOperatorCommandHandler creates a handler for operator assignment.
func NewAssignOperatorCommandHandler(uowFactory DispatchUoWFactory) AssignOperatorCommandHandler {
	return AssignOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the operator assignment command.
// Returns an error wrapping errs.ErrObjectNotFound if the dispatch or the
// operator does not exist, errs.ErrInvalidTransition if the dispatch is
// already terminal, or errs.ErrConflict if a concurrent writer moved it to a
// terminal status between the read and the write.
func (h AssignOperatorCommandHandler) Handle(ctx context.Context, command AssignOperatorCommand) error {
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

	dispatchRepo := uow.DispatchRepository()

	if _, err := uow.OperatorRepository().Get(ctx, command.OperatorID()); err != nil {
		return err
	}

	theDispatch, err := dispatchRepo.Get(ctx, command.DispatchID())
	if err != nil {
		return err
	}

	if err = theDispatch.AssignOperator(command.OperatorID()); err != nil {
		return err
	}

	if err = dispatchRepo.Update(ctx, theDispatch); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
