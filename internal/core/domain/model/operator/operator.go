// Package operator provides the Operator reference-data aggregate.
// Operators are assignable to a dispatch at any time before completion.
package operator

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
	"haulage/internal/pkg/guard"
)

var (
	// ErrUsernameIsRequired is returned when attempting to create an operator without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrFullNameIsRequired is returned when attempting to create an operator without a full name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
	// ErrOperatorIsNotConstructed is returned when using an improperly initialized Operator.
	ErrOperatorIsNotConstructed = errors.New("Operator must be created via NewOperator constructor")
)

// Operator represents a site operator who advances dispatches through the
// weighing and unloading steps.
type Operator struct {
	id       kernel.UUID
	username string
	fullName string
	guard    guard.ConstructorGuard
}

// NewOperator creates a new Operator with a non-empty username and full name.
func NewOperator(id kernel.UUID, username, fullName string) (*Operator, error) {
	o := &Operator{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(o.setID(id), o.setUsername(username), o.setFullName(fullName)); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOperator reconstructs an Operator from persistent storage.
func RestoreOperator(id kernel.UUID, username, fullName string) (*Operator, error) {
	return NewOperator(id, username, fullName)
}

// Validate checks if the Operator was properly constructed using a constructor.
func (o *Operator) Validate() error {
	if o == nil {
		return ErrOperatorIsNotConstructed
	}
	return o.guard.Validate(ErrOperatorIsNotConstructed)
}

// ID returns the operator's unique identifier.
func (o *Operator) ID() kernel.UUID {
	return o.id
}

// Username returns the operator's login name.
func (o *Operator) Username() string {
	return o.username
}

// FullName returns the operator's display name.
func (o *Operator) FullName() string {
	return o.fullName
}

func (o *Operator) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Operator) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	o.username = username
	return nil
}

func (o *Operator) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}
	o.fullName = fullName
	return nil
}
