package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/model/kernel"
)

// WeighInCommandHandler handles the gross weighing of a dispatch.
// Records the loaded-truck weight, optionally attaches a proof photo and
// persists the transition with a compare-and-swap on the previous status.
type WeighInCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewWeighInCommandHandler creates a handler for gross weighing operations.
func NewWeighInCommandHandler(uowFactory DispatchUoWFactory) WeighInCommandHandler {
	return WeighInCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the weigh-in command.
// Returns an error wrapping errs.ErrObjectNotFound if the dispatch does not
// exist, errs.ErrInvalidTransition if it is not in transit, or
// errs.ErrConflict if a concurrent writer moved it first.
func (h WeighInCommandHandler) Handle(ctx context.Context, command WeighInCommand) error {
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

	theDispatch, err := dispatchRepo.Get(ctx, command.DispatchID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	previous := theDispatch.Status()
	if err = theDispatch.WeighIn(command.GrossWeight(), now); err != nil {
		return err
	}

	if command.ProofReference() != "" {
		if _, err = theDispatch.AttachProof(
			kernel.NewUUID(), command.ProofReference(), command.UploadedBy(), now,
		); err != nil {
			return err
		}
	}

	if err = dispatchRepo.UpdateFrom(ctx, theDispatch, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
