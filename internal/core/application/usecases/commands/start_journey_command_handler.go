package commands

import (
	"context"
	"time"
)

// StartJourneyCommandHandler handles the journey start of a dispatch.
// Moves the dispatch from assigned to in-transit and starts the underlying
// order in the same transaction. The transition is persisted with a
// compare-and-swap on the previous status, so a concurrent transition on the
// same dispatch fails with a conflict instead of double-applying.
type StartJourneyCommandHandler struct {
	uowFactory UoWFactory
}

// NewStartJourneyCommandHandler creates a handler for journey start operations.
func NewStartJourneyCommandHandler(uowFactory UoWFactory) StartJourneyCommandHandler {
	return StartJourneyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the journey start command.
// Returns an error wrapping errs.ErrObjectNotFound if the dispatch does not
// exist, errs.ErrInvalidTransition if it is not assigned, or
// errs.ErrConflict if a concurrent writer moved it first.
func (h StartJourneyCommandHandler) Handle(ctx context.Context, command StartJourneyCommand) error {
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
	orderRepo := uow.OrderRepository()

	theDispatch, err := dispatchRepo.Get(ctx, command.DispatchID())
	if err != nil {
		return err
	}

	previous := theDispatch.Status()
	if err = theDispatch.StartJourney(time.Now().UTC()); err != nil {
		return err
	}

	theOrder, err := orderRepo.Get(ctx, theDispatch.OrderID())
	if err != nil {
		return err
	}
	if err = theOrder.Start(); err != nil {
		return err
	}

	if err = dispatchRepo.UpdateFrom(ctx, theDispatch, previous); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
