package commands

import (
	"errors"

	"haulage/internal/core/domain/model/exception"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var (
	ErrLogExceptionCommandIsNotConstructed = errors.New(
		"LogExceptionCommand must be created via NewLogExceptionCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
	ErrLoggedByIsRequired    = errors.New("logged by is required")
)

// LogExceptionCommand represents a request to record an operational incident
// against a dispatch.
type LogExceptionCommand struct { //nolint:recvcheck //using for validation
	exceptionID kernel.UUID
	dispatchID  kernel.UUID
	category    exception.Category
	description string
	loggedBy    string

	guard guard.ConstructorGuard
}

// NewLogExceptionCommand creates a command to log an incident.
// Validates the IDs, the category and that description and reporter are
// non-empty.
func NewLogExceptionCommand(
	exceptionID, dispatchID kernel.UUID,
	category exception.Category,
	description, loggedBy string,
) (LogExceptionCommand, error) {
	command := LogExceptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setExceptionID(exceptionID),
		command.setDispatchID(dispatchID),
		command.setCategory(category),
		command.setDescription(description),
		command.setLoggedBy(loggedBy),
	); err != nil {
		return LogExceptionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLogExceptionCommandIsNotConstructed if validation fails.
func (c LogExceptionCommand) Validate() error {
	return c.guard.Validate(ErrLogExceptionCommandIsNotConstructed)
}

// ExceptionID returns the identifier for the new exception record.
func (c LogExceptionCommand) ExceptionID() kernel.UUID {
	return c.exceptionID
}

// DispatchID returns the identifier of the dispatch the incident was seen on.
func (c LogExceptionCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// Category returns the incident classification.
func (c LogExceptionCommand) Category() exception.Category {
	return c.category
}

// Description returns the free-text incident report.
func (c LogExceptionCommand) Description() string {
	return c.description
}

// LoggedBy returns the identity of the reporter.
func (c LogExceptionCommand) LoggedBy() string {
	return c.loggedBy
}

func (c *LogExceptionCommand) setExceptionID(exceptionID kernel.UUID) error {
	if err := exceptionID.Validate(); err != nil {
		return err
	}

	c.exceptionID = exceptionID
	return nil
}

func (c *LogExceptionCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}

func (c *LogExceptionCommand) setCategory(category exception.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *LogExceptionCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *LogExceptionCommand) setLoggedBy(loggedBy string) error {
	if loggedBy == "" {
		return ErrLoggedByIsRequired
	}

	c.loggedBy = loggedBy
	return nil
}
