package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrStartJourneyCommandIsNotConstructed = errors.New(
	"StartJourneyCommand must be created via NewStartJourneyCommand constructor",
)

// StartJourneyCommand represents a request to start the journey of an
// assigned dispatch. This is the point where the underlying order leaves
// pending and becomes in progress.
type StartJourneyCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartJourneyCommand creates a command to start a dispatch journey.
// Validates that the dispatch ID is a valid UUID.
func NewStartJourneyCommand(dispatchID kernel.UUID) (StartJourneyCommand, error) {
	command := StartJourneyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDispatchID(dispatchID); err != nil {
		return StartJourneyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartJourneyCommandIsNotConstructed if validation fails.
func (c StartJourneyCommand) Validate() error {
	return c.guard.Validate(ErrStartJourneyCommandIsNotConstructed)
}

// DispatchID returns the identifier of the dispatch to start.
func (c StartJourneyCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c *StartJourneyCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}
