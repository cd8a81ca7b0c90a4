package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrAssignOperatorCommandIsNotConstructed = errors.New(
	"AssignOperatorCommand must be created via NewAssignOperatorCommand constructor",
)

// AssignOperatorCommand represents a request to bind an operator to a
// non-terminal dispatch. Reassignment is allowed; the latest wins.
type AssignOperatorCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOperatorCommand creates a command to assign an operator.
// Validates that both IDs are valid UUIDs.
func NewAssignOperatorCommand(dispatchID, operatorID kernel.UUID) (AssignOperatorCommand, error) {
	command := AssignOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDispatchID(dispatchID),
		command.setOperatorID(operatorID),
	); err != nil {
		return AssignOperatorCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOperatorCommandIsNotConstructed if validation fails.
func (c AssignOperatorCommand) Validate() error {
	return c.guard.Validate(ErrAssignOperatorCommandIsNotConstructed)
}

// DispatchID returns the identifier of the dispatch.
func (c AssignOperatorCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// OperatorID returns the identifier of the operator to assign.
func (c AssignOperatorCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

func (c *AssignOperatorCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}

func (c *AssignOperatorCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}
