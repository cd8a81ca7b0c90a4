package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrMaterialTypeIsRequired = errors.New("material type is required")
)

// CreateOrderCommand represents a request to register a new bulk-material order.
// Encapsulates the ordering customer, the material to haul and the quantity.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	quantity, _ := kernel.NewWeight(25)
//	cmd, err := NewCreateOrderCommand(orderID, customerID, "Sand", quantity)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting truck allocation", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	materialType string
	quantity     kernel.Weight

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that both IDs are valid, the material type is not empty and the
// quantity is a valid weight. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	materialType string,
	quantity kernel.Weight,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setMaterialType(materialType),
		orderCommand.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// MaterialType returns the name of the material to haul.
func (c CreateOrderCommand) MaterialType() string {
	return c.materialType
}

// Quantity returns the ordered mass.
func (c CreateOrderCommand) Quantity() kernel.Weight {
	return c.quantity
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setMaterialType(materialType string) error {
	if materialType == "" {
		return ErrMaterialTypeIsRequired
	}

	c.materialType = materialType
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity kernel.Weight) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}
