package commands

import (
	"context"

	"haulage/internal/core/domain/model/dispatch"
)

// UpdateDispatchStatusCommandHandler routes the legacy direct status-set
// request to the named step handlers. Each target status maps to exactly one
// transition, so the legacy path cannot reach any state the step commands
// could not.
type UpdateDispatchStatusCommandHandler struct {
	startJourney StartJourneyCommandHandler
	weighIn      WeighInCommandHandler
	unload       UnloadCommandHandler
	weighOut     WeighOutCommandHandler
	completeJob  CompleteJobCommandHandler
	cancel       CancelDispatchCommandHandler
}

// NewUpdateDispatchStatusCommandHandler creates the legacy status-set router
// over the named step handlers.
func NewUpdateDispatchStatusCommandHandler(
	startJourney StartJourneyCommandHandler,
	weighIn WeighInCommandHandler,
	unload UnloadCommandHandler,
	weighOut WeighOutCommandHandler,
	completeJob CompleteJobCommandHandler,
	cancel CancelDispatchCommandHandler,
) UpdateDispatchStatusCommandHandler {
	return UpdateDispatchStatusCommandHandler{
		startJourney: startJourney,
		weighIn:      weighIn,
		unload:       unload,
		weighOut:     weighOut,
		completeJob:  completeJob,
		cancel:       cancel,
	}
}

// Handle translates the target status into the corresponding step command
// and delegates. Preconditions, weights and side effects are those of the
// delegated handler.
func (h UpdateDispatchStatusCommandHandler) Handle(ctx context.Context, command UpdateDispatchStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	switch command.TargetStatus() {
	case dispatch.InTransit:
		cmd, err := NewStartJourneyCommand(command.DispatchID())
		if err != nil {
			return err
		}
		return h.startJourney.Handle(ctx, cmd)

	case dispatch.WeighIn:
		cmd, err := NewWeighInCommand(command.DispatchID(), *command.GrossWeight(), "", "")
		if err != nil {
			return err
		}
		return h.weighIn.Handle(ctx, cmd)

	case dispatch.Unload:
		cmd, err := NewUnloadCommand(command.DispatchID(), "", "")
		if err != nil {
			return err
		}
		return h.unload.Handle(ctx, cmd)

	case dispatch.WeighOut:
		cmd, err := NewWeighOutCommand(command.DispatchID(), *command.TareWeight(), "", "")
		if err != nil {
			return err
		}
		return h.weighOut.Handle(ctx, cmd)

	case dispatch.Completed:
		cmd, err := NewCompleteJobCommand(command.DispatchID())
		if err != nil {
			return err
		}
		return h.completeJob.Handle(ctx, cmd)

	case dispatch.Cancelled:
		cmd, err := NewCancelDispatchCommand(command.DispatchID())
		if err != nil {
			return err
		}
		return h.cancel.Handle(ctx, cmd)

	default:
		return ErrTargetStatusIsNotSettable
	}
}
