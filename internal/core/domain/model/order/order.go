package order

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
	"haulage/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrMaterialTypeIsRequired is returned when attempting to create an order
	// without naming the material to be hauled.
	ErrMaterialTypeIsRequired = errs.NewValueIsRequiredError("material type")
)

// Order represents a bulk-material order in the system. It is the aggregate root
// that manages the order lifecycle from creation through dispatch to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must name a material type (resolved to a Material at stock-ledger time,
//     not a strict foreign key)
//   - Quantity must be a valid positive Weight
//   - Status transitions follow defined business rules; the order only starts
//     when its dispatch's journey starts, not on mere assignment
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// materialType names the material to be hauled
	materialType string

	// quantity is the ordered mass
	quantity kernel.Weight

	// status represents the current state in the order lifecycle
	status Status

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the only way to create
// a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: The ordering customer (must be valid UUID)
//   - materialType: Name of the ordered material (must be non-empty)
//   - quantity: Ordered mass (must be a valid Weight)
//
// The constructor validates all inputs and ensures the order is created in
// Pending status, awaiting truck allocation.
func NewOrder(id kernel.UUID, customerID kernel.UUID, materialType string, quantity kernel.Weight) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setMaterialType(materialType),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its lifecycle status at the time of persistence.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	materialType string,
	quantity kernel.Weight,
	status Status,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setMaterialType(materialType),
		o.setQuantity(quantity),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// MaterialType returns the name of the ordered material.
func (o *Order) MaterialType() string {
	return o.materialType
}

// Quantity returns the ordered mass.
func (o *Order) Quantity() kernel.Weight {
	return o.quantity
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Start marks the order as in progress. Fired by the dispatch state machine
// when the journey starts - the first and only time this happens for an order.
//
// Returns an error wrapping errs.ErrInvalidTransition unless the order is
// Pending.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("start_order", o.id.String(), o.status.String(), err)
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as fulfilled. Fired by the dispatch state machine
// as part of the complete_job side effects.
//
// Returns an error wrapping errs.ErrInvalidTransition unless the order is
// InProgress.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("complete_order", o.id.String(), o.status.String(), err)
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order. Allowed while Pending or InProgress; the
// dispatch state machine only invokes it when no other active dispatch
// references the order.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("cancel_order", o.id.String(), o.status.String(), err)
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setMaterialType(materialType string) error {
	if materialType == "" {
		return ErrMaterialTypeIsRequired
	}
	o.materialType = materialType
	return nil
}

func (o *Order) setQuantity(quantity kernel.Weight) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
