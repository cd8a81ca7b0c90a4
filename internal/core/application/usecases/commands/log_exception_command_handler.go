package commands

import (
	"context"
	"fmt"
	"time"

	"haulage/internal/core/domain/model/exception"
	"haulage/internal/pkg/errs"
)

// LogExceptionCommandHandler handles incident logging against a dispatch.
// The dispatch must exist and still be in flight: incidents on terminal
// dispatches are rejected, everything else is recorded without blocking the
// dispatch workflow.
type LogExceptionCommandHandler struct {
	uowFactory ExceptionUoWFactory
}

// NewLogExceptionCommandHandler creates a handler for incident logging.
func NewLogExceptionCommandHandler(uowFactory ExceptionUoWFactory) LogExceptionCommandHandler {
	return LogExceptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the incident logging command.
// Returns an error wrapping errs.ErrObjectNotFound if the dispatch does not
// exist, or errs.ErrInvalidTransition if the dispatch is already terminal.
func (h LogExceptionCommandHandler) Handle(ctx context.Context, command LogExceptionCommand) error {
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

	theDispatch, err := uow.DispatchRepository().Get(ctx, command.DispatchID())
	if err != nil {
		return err
	}
	if theDispatch.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(
			"log_exception", theDispatch.ID().String(), theDispatch.Status().String(),
			fmt.Errorf("%w: dispatch is already %s", errs.ErrInvalidTransition, theDispatch.Status()))
	}

	newException, err := exception.NewException(
		command.ExceptionID(),
		command.DispatchID(),
		command.Category(),
		command.Description(),
		command.LoggedBy(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ExceptionRepository().Add(ctx, newException); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
