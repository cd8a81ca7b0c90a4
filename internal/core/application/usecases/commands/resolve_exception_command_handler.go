package commands

import (
	"context"
	"time"
)

// ResolveExceptionCommandHandler handles incident resolution.
// Resolution is idempotent: a second resolve of the same incident commits
// without changing the recorded resolution time.
type ResolveExceptionCommandHandler struct {
	uowFactory ExceptionUoWFactory
}

// NewResolveExceptionCommandHandler creates a handler for incident resolution.
func NewResolveExceptionCommandHandler(uowFactory ExceptionUoWFactory) ResolveExceptionCommandHandler {
	return ResolveExceptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the incident resolution command.
// Returns an error wrapping errs.ErrObjectNotFound if the exception does not
// exist.
func (h ResolveExceptionCommandHandler) Handle(ctx context.Context, command ResolveExceptionCommand) error {
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

	exceptionRepo := uow.ExceptionRepository()

	theException, err := exceptionRepo.Get(ctx, command.ExceptionID())
	if err != nil {
		return err
	}

	if err = theException.Resolve(time.Now().UTC()); err != nil {
		return err
	}

	if err = exceptionRepo.Update(ctx, theException); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
