package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/model/kernel"
)

// WeighOutCommandHandler handles the tare weighing of a dispatch.
// Records the empty-truck weight, optionally attaches a proof photo and
// persists the transition with a compare-and-swap on the previous status.
type WeighOutCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewWeighOutCommandHandler creates a handler for tare weighing operations.
func NewWeighOutCommandHandler(uowFactory DispatchUoWFactory) WeighOutCommandHandler {
	return WeighOutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the weigh-out command.
// Returns an error wrapping errs.ErrObjectNotFound if the dispatch does not
// exist, errs.ErrInvalidTransition if it has not unloaded,
// errs.ErrValueIsInvalid if the tare is not below the gross, or
// errs.ErrConflict if a concurrent writer moved it first.
func (h WeighOutCommandHandler) Handle(ctx context.Context, command WeighOutCommand) error {
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
	if err = theDispatch.WeighOut(command.TareWeight(), now); err != nil {
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
