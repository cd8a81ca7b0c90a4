package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrCancelDispatchCommandIsNotConstructed = errors.New(
	"CancelDispatchCommand must be created via NewCancelDispatchCommand constructor",
)

// CancelDispatchCommand represents a request to abort a non-terminal
// dispatch, releasing its truck back to the idle pool.
type CancelDispatchCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDispatchCommand creates a command to cancel a dispatch.
// Validates that the dispatch ID is a valid UUID.
func NewCancelDispatchCommand(dispatchID kernel.UUID) (CancelDispatchCommand, error) {
	command := CancelDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDispatchID(dispatchID); err != nil {
		return CancelDispatchCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelDispatchCommandIsNotConstructed if validation fails.
func (c CancelDispatchCommand) Validate() error {
	return c.guard.Validate(ErrCancelDispatchCommandIsNotConstructed)
}

// DispatchID returns the identifier of the dispatch to cancel.
func (c CancelDispatchCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c *CancelDispatchCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}
