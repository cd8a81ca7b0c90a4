package commands

import (
	"errors"

	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var (
	ErrUpdateDispatchStatusCommandIsNotConstructed = errors.New(
		"UpdateDispatchStatusCommand must be created via NewUpdateDispatchStatusCommand constructor",
	)
	// ErrTargetStatusIsNotSettable is returned for target statuses no
	// transition leads to (assigned is only ever an initial status).
	ErrTargetStatusIsNotSettable = errors.New("target status is not reachable by any transition")
	// ErrWeightIsRequiredForStep is returned when a weighing step is
	// requested without the corresponding weight.
	ErrWeightIsRequiredForStep = errors.New("weight is required for a weighing step")
)

// UpdateDispatchStatusCommand represents the direct status-set request kept
// for older clients. The target status is translated to the corresponding
// named transition, so the exact same preconditions and side effects apply
// as for the step commands.
type UpdateDispatchStatusCommand struct { //nolint:recvcheck //using for validation
	dispatchID   kernel.UUID
	targetStatus dispatch.Status
	grossWeight  *kernel.Weight
	tareWeight   *kernel.Weight

	guard guard.ConstructorGuard
}

// NewUpdateDispatchStatusCommand creates a direct status-set command.
// A weigh_in target requires a gross weight and a weigh_out target requires
// a tare weight; the weights are ignored for the other targets.
func NewUpdateDispatchStatusCommand(
	dispatchID kernel.UUID,
	targetStatus dispatch.Status,
	grossWeight, tareWeight *kernel.Weight,
) (UpdateDispatchStatusCommand, error) {
	command := UpdateDispatchStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDispatchID(dispatchID),
		command.setTargetStatus(targetStatus),
		command.setWeights(targetStatus, grossWeight, tareWeight),
	); err != nil {
		return UpdateDispatchStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDispatchStatusCommandIsNotConstructed if validation fails.
func (c UpdateDispatchStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDispatchStatusCommandIsNotConstructed)
}

// DispatchID returns the identifier of the dispatch to transition.
func (c UpdateDispatchStatusCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// TargetStatus returns the requested status.
func (c UpdateDispatchStatusCommand) TargetStatus() dispatch.Status {
	return c.targetStatus
}

// GrossWeight returns the gross weight for a weigh_in target, nil otherwise.
func (c UpdateDispatchStatusCommand) GrossWeight() *kernel.Weight {
	return c.grossWeight
}

// TareWeight returns the tare weight for a weigh_out target, nil otherwise.
func (c UpdateDispatchStatusCommand) TareWeight() *kernel.Weight {
	return c.tareWeight
}

func (c *UpdateDispatchStatusCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}

func (c *UpdateDispatchStatusCommand) setTargetStatus(targetStatus dispatch.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}
	if targetStatus == dispatch.Assigned {
		return ErrTargetStatusIsNotSettable
	}

	c.targetStatus = targetStatus
	return nil
}

func (c *UpdateDispatchStatusCommand) setWeights(
	targetStatus dispatch.Status,
	grossWeight, tareWeight *kernel.Weight,
) error {
	switch targetStatus {
	case dispatch.WeighIn:
		if grossWeight == nil {
			return ErrWeightIsRequiredForStep
		}
		if err := grossWeight.Validate(); err != nil {
			return err
		}
		c.grossWeight = grossWeight
	case dispatch.WeighOut:
		if tareWeight == nil {
			return ErrWeightIsRequiredForStep
		}
		if err := tareWeight.Validate(); err != nil {
			return err
		}
		c.tareWeight = tareWeight
	default:
	}

	return nil
}
