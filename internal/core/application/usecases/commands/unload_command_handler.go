package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/model/kernel"
)

// UnloadCommandHandler handles the unloading step of a dispatch.
// Stamps the unload time, optionally attaches a proof photo and persists the
// transition with a compare-and-swap on the previous status.
type UnloadCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewUnloadCommandHandler creates a handler for unloading operations.
func NewUnloadCommandHandler(uowFactory DispatchUoWFactory) UnloadCommandHandler {
	return UnloadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unload command.
// Returns an error wrapping errs.ErrObjectNotFound if the dispatch does not
// exist, errs.ErrInvalidTransition if it has not weighed in, or
// errs.ErrConflict if a concurrent writer moved it first.
func (h UnloadCommandHandler) Handle(ctx context.Context, command UnloadCommand) error {
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
	if err = theDispatch.Unload(now); err != nil {
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
