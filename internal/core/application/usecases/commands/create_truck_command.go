package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var (
	ErrCreateTruckCommandIsNotConstructed = errors.New(
		"CreateTruckCommand must be created via NewCreateTruckCommand constructor",
	)
	ErrPlateIsRequired      = errors.New("plate is required")
	ErrDriverNameIsRequired = errors.New("driver name is required")
)

// CreateTruckCommand represents a request to register a new truck in the
// fleet. New trucks start idle and immediately become allocation candidates.
type CreateTruckCommand struct { //nolint:recvcheck //using for validation
	truckID    kernel.UUID
	plate      string
	capacity   kernel.Weight
	driverName string

	guard guard.ConstructorGuard
}

// NewCreateTruckCommand creates a command to register a truck.
// Validates the ID, the non-empty plate and driver name, and the capacity.
func NewCreateTruckCommand(
	truckID kernel.UUID,
	plate string,
	capacity kernel.Weight,
	driverName string,
) (CreateTruckCommand, error) {
	command := CreateTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTruckID(truckID),
		command.setPlate(plate),
		command.setCapacity(capacity),
		command.setDriverName(driverName),
	); err != nil {
		return CreateTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTruckCommandIsNotConstructed if validation fails.
func (c CreateTruckCommand) Validate() error {
	return c.guard.Validate(ErrCreateTruckCommandIsNotConstructed)
}

// TruckID returns the unique identifier for the truck.
func (c CreateTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Plate returns the truck's registration plate.
func (c CreateTruckCommand) Plate() string {
	return c.plate
}

// Capacity returns the maximum load the truck can carry.
func (c CreateTruckCommand) Capacity() kernel.Weight {
	return c.capacity
}

// DriverName returns the assigned driver's name.
func (c CreateTruckCommand) DriverName() string {
	return c.driverName
}

func (c *CreateTruckCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	c.truckID = truckID
	return nil
}

func (c *CreateTruckCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}

	c.plate = plate
	return nil
}

func (c *CreateTruckCommand) setCapacity(capacity kernel.Weight) error {
	if err := capacity.Validate(); err != nil {
		return err
	}

	c.capacity = capacity
	return nil
}

func (c *CreateTruckCommand) setDriverName(driverName string) error {
	if driverName == "" {
		return ErrDriverNameIsRequired
	}

	c.driverName = driverName
	return nil
}
