package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrResolveExceptionCommandIsNotConstructed = errors.New(
	"ResolveExceptionCommand must be created via NewResolveExceptionCommand constructor",
)

// ResolveExceptionCommand represents a request to mark an incident as dealt
// with. Resolving an already resolved incident succeeds without effect.
type ResolveExceptionCommand struct { //nolint:recvcheck //using for validation
	exceptionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveExceptionCommand creates a command to resolve an incident.
// Validates that the exception ID is a valid UUID.
func NewResolveExceptionCommand(exceptionID kernel.UUID) (ResolveExceptionCommand, error) {
	command := ResolveExceptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setExceptionID(exceptionID); err != nil {
		return ResolveExceptionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveExceptionCommandIsNotConstructed if validation fails.
func (c ResolveExceptionCommand) Validate() error {
	return c.guard.Validate(ErrResolveExceptionCommandIsNotConstructed)
}

// ExceptionID returns the identifier of the incident to resolve.
func (c ResolveExceptionCommand) ExceptionID() kernel.UUID {
	return c.exceptionID
}

func (c *ResolveExceptionCommand) setExceptionID(exceptionID kernel.UUID) error {
	if err := exceptionID.Validate(); err != nil {
		return err
	}

	c.exceptionID = exceptionID
	return nil
}
