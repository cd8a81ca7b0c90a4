package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var (
	ErrCreateMaterialCommandIsNotConstructed = errors.New(
		"CreateMaterialCommand must be created via NewCreateMaterialCommand constructor",
	)
	ErrMaterialNameIsRequired = errors.New("material name is required")
	ErrUnitIsRequired         = errors.New("unit is required")
	ErrStockQuantityIsInvalid = errors.New("stock quantity must not be negative")
)

// CreateMaterialCommand represents a request to register a stocked material.
type CreateMaterialCommand struct { //nolint:recvcheck //using for validation
	materialID    kernel.UUID
	name          string
	stockQuantity float64
	unit          string

	guard guard.ConstructorGuard
}

// NewCreateMaterialCommand creates a command to register a material.
// Validates the ID, the non-empty name and unit, and the non-negative
// initial stock.
func NewCreateMaterialCommand(
	materialID kernel.UUID,
	name string,
	stockQuantity float64,
	unit string,
) (CreateMaterialCommand, error) {
	command := CreateMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMaterialID(materialID),
		command.setName(name),
		command.setStockQuantity(stockQuantity),
		command.setUnit(unit),
	); err != nil {
		return CreateMaterialCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMaterialCommandIsNotConstructed if validation fails.
func (c CreateMaterialCommand) Validate() error {
	return c.guard.Validate(ErrCreateMaterialCommandIsNotConstructed)
}

// MaterialID returns the unique identifier for the material.
func (c CreateMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

// Name returns the material name.
func (c CreateMaterialCommand) Name() string {
	return c.name
}

// StockQuantity returns the initial stock level.
func (c CreateMaterialCommand) StockQuantity() float64 {
	return c.stockQuantity
}

// Unit returns the measurement unit.
func (c CreateMaterialCommand) Unit() string {
	return c.unit
}

func (c *CreateMaterialCommand) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}

	c.materialID = materialID
	return nil
}

func (c *CreateMaterialCommand) setName(name string) error {
	if name == "" {
		return ErrMaterialNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMaterialCommand) setStockQuantity(stockQuantity float64) error {
	if stockQuantity < 0 {
		return ErrStockQuantityIsInvalid
	}

	c.stockQuantity = stockQuantity
	return nil
}

func (c *CreateMaterialCommand) setUnit(unit string) error {
	if unit == "" {
		return ErrUnitIsRequired
	}

	c.unit = unit
	return nil
}
