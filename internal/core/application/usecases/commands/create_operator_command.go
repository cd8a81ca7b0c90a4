package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var (
	ErrCreateOperatorCommandIsNotConstructed = errors.New(
		"CreateOperatorCommand must be created via NewCreateOperatorCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrFullNameIsRequired = errors.New("full name is required")
)

// CreateOperatorCommand represents a request to register a site operator.
type CreateOperatorCommand struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID
	username   string
	fullName   string

	guard guard.ConstructorGuard
}

// NewCreateOperatorCommand creates a command to register an operator.
// Validates the ID and the non-empty username and full name.
func NewCreateOperatorCommand(operatorID kernel.UUID, username, fullName string) (CreateOperatorCommand, error) {
	command := CreateOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOperatorID(operatorID),
		command.setUsername(username),
		command.setFullName(fullName),
	); err != nil {
		return CreateOperatorCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOperatorCommandIsNotConstructed if validation fails.
func (c CreateOperatorCommand) Validate() error {
	return c.guard.Validate(ErrCreateOperatorCommandIsNotConstructed)
}

// OperatorID returns the unique identifier for the operator.
func (c CreateOperatorCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Username returns the operator's login name.
func (c CreateOperatorCommand) Username() string {
	return c.username
}

// FullName returns the operator's display name.
func (c CreateOperatorCommand) FullName() string {
	return c.fullName
}

func (c *CreateOperatorCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *CreateOperatorCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *CreateOperatorCommand) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}
