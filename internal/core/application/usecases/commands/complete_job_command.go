package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand represents a request to complete a weighed-out dispatch,
// firing the order, truck and stock side effects atomically.
type CompleteJobCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteJobCommand creates a command to complete a dispatch.
// Validates that the dispatch ID is a valid UUID.
func NewCompleteJobCommand(dispatchID kernel.UUID) (CompleteJobCommand, error) {
	command := CompleteJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDispatchID(dispatchID); err != nil {
		return CompleteJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteJobCommandIsNotConstructed if validation fails.
func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

// DispatchID returns the identifier of the dispatch to complete.
func (c CompleteJobCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c *CompleteJobCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}
