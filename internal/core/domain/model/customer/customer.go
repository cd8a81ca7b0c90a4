// Package customer provides the Customer reference-data aggregate.
// Customers carry no workflow invariants; they are referenced by orders.
package customer

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
	"haulage/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a customer placing bulk-material orders.
type Customer struct {
	id      kernel.UUID
	name    string
	contact string
	guard   guard.ConstructorGuard
}

// NewCustomer creates a new Customer. Name must be non-empty; contact
// information is optional free text (phone, e-mail).
func NewCustomer(id kernel.UUID, name, contact string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}

	c.contact = contact
	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(id kernel.UUID, name, contact string) (*Customer, error) {
	return NewCustomer(id, name, contact)
}

// Validate checks if the Customer was properly constructed using a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Contact returns the customer's contact information.
func (c *Customer) Contact() string {
	return c.contact
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
