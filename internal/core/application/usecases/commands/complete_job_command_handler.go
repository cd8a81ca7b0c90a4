package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/order"
	"haulage/internal/core/ports"
	"haulage/internal/pkg/errs"
)

// CompleteJobCommandHandler handles the completion of a dispatch.
// Completion is the only operation with cross-aggregate side effects: in one
// transaction the dispatch becomes completed, the order completes, the truck
// returns to the idle pool and the delivered net weight is deducted from the
// material stock through the movement ledger.
//
// The status transition is persisted with a compare-and-swap, so two
// concurrent completions of the same dispatch apply the side effects exactly
// once; the loser gets a conflict error. The stock deduction is additionally
// keyed per dispatch in the ledger, making a replayed completion a no-op
// even across transactions.
type CompleteJobCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCompleteJobCommandHandler creates a handler for job completion operations.
func NewCompleteJobCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the job completion command.
// Returns an error wrapping errs.ErrObjectNotFound if the dispatch does not
// exist, errs.ErrInvalidTransition if it has not weighed out, or
// errs.ErrConflict if a concurrent writer moved it first.
//
// An order naming a material the system does not stock completes without a
// stock deduction; the material catalog is a soft reference, not a foreign
// key. A deduction exceeding the stored stock is clamped at zero and logged
// as a warning; the completion itself still succeeds.
func (h CompleteJobCommandHandler) Handle(ctx context.Context, command CompleteJobCommand) error {
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
	materialRepo := uow.MaterialRepository()

	theDispatch, err := dispatchRepo.Get(ctx, command.DispatchID())
	if err != nil {
		return err
	}

	previous := theDispatch.Status()
	if err = theDispatch.Complete(time.Now().UTC()); err != nil {
		return err
	}

	theOrder, err := orderRepo.Get(ctx, theDispatch.OrderID())
	if err != nil {
		return err
	}
	if err = theOrder.Complete(); err != nil {
		return err
	}

	theTruck, err := truckRepo.Get(ctx, theDispatch.TruckID())
	if err != nil {
		return err
	}
	if err = theTruck.Release(); err != nil {
		return err
	}

	if err = dispatchRepo.UpdateFrom(ctx, theDispatch, previous); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}
	if err = truckRepo.Update(ctx, theTruck); err != nil {
		return err
	}

	if err = h.deductStock(ctx, materialRepo, theDispatch, theOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// deductStock applies the net-weight deduction through the movement ledger.
// The movement key ties the deduction to the dispatch, so replays are no-ops.
func (h CompleteJobCommandHandler) deductStock(
	ctx context.Context,
	materialRepo ports.MaterialRepository,
	theDispatch *dispatch.Dispatch,
	theOrder *order.Order,
) error {
	theMaterial, err := materialRepo.GetByName(ctx, theOrder.MaterialType())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	net, err := theDispatch.NetWeight()
	if err != nil {
		return err
	}

	movementKey := theDispatch.ID().String() + ":complete"
	deduction, err := materialRepo.DeductStock(ctx, theMaterial.ID(), net, movementKey)
	if err != nil {
		return err
	}

	if deduction.Clamped {
		h.logger.Warn("Stock deduction clamped at zero",
			"material", theMaterial.Name(),
			"dispatch_id", theDispatch.ID().String(),
			"net_weight", net.Value())
	}

	return nil
}
