package commands

import (
	"errors"

	"haulage/internal/pkg/guard"
)

var ErrAllocateTrucksCommandIsNotConstructed = errors.New(
	"AllocateTrucksCommand must be created via NewAllocateTrucksCommand constructor",
)

// AllocateTrucksCommand represents a request to run one allocation sweep over
// the pending orders. The command carries no parameters; the sweep always
// walks all pending orders oldest first.
type AllocateTrucksCommand struct {
	guard guard.ConstructorGuard
}

// NewAllocateTrucksCommand creates a command to trigger an allocation sweep.
func NewAllocateTrucksCommand() AllocateTrucksCommand {
	return AllocateTrucksCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAllocateTrucksCommandIsNotConstructed if validation fails.
func (c AllocateTrucksCommand) Validate() error {
	return c.guard.Validate(ErrAllocateTrucksCommandIsNotConstructed)
}
