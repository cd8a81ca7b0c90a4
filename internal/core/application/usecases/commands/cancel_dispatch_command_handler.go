package commands

import (
	"context"

	"haulage/internal/core/domain/model/order"
)

// CancelDispatchCommandHandler handles the cancellation of a dispatch.
// In one transaction the dispatch becomes cancelled and its truck returns to
// the idle pool. What happens to the order depends on how far it got: an
// order whose journey never started stays pending and is picked up by a
// later allocation sweep; an in-progress order is cancelled with its
// dispatch. No stock movement ever results from a cancellation.
type CancelDispatchCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelDispatchCommandHandler creates a handler for dispatch cancellation.
func NewCancelDispatchCommandHandler(uowFactory UoWFactory) CancelDispatchCommandHandler {
	return CancelDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch cancellation command.
// Returns an error wrapping errs.ErrObjectNotFound if the dispatch does not
// exist, errs.ErrInvalidTransition if it is already terminal, or
// errs.ErrConflict if a concurrent writer moved it first.
func (h CancelDispatchCommandHandler) Handle(ctx context.Context, command CancelDispatchCommand) error {
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
	truckRepo := uow.TruckRepository()

	theDispatch, err := dispatchRepo.Get(ctx, command.DispatchID())
	if err != nil {
		return err
	}

	previous := theDispatch.Status()
	if err = theDispatch.Cancel(); err != nil {
		return err
	}

	theTruck, err := truckRepo.Get(ctx, theDispatch.TruckID())
	if err != nil {
		return err
	}
	if err = theTruck.Release(); err != nil {
		return err
	}

	theOrder, err := orderRepo.Get(ctx, theDispatch.OrderID())
	if err != nil {
		return err
	}

	orderChanged := false
	if theOrder.Status() == order.InProgress {
		if err = theOrder.Cancel(); err != nil {
			return err
		}
		orderChanged = true
	}

	if err = dispatchRepo.UpdateFrom(ctx, theDispatch, previous); err != nil {
		return err
	}
	if err = truckRepo.Update(ctx, theTruck); err != nil {
		return err
	}
	if orderChanged {
		if err = orderRepo.Update(ctx, theOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
