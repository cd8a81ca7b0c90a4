package commands

import (
	"context"

	"haulage/internal/core/domain/model/truck"
)

// CreateTruckCommandHandler handles truck registration.
type CreateTruckCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateTruckCommandHandler creates a handler for truck registration.
func NewCreateTruckCommandHandler(uowFactory FleetUoWFactory) CreateTruckCommandHandler {
	return CreateTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck registration command.
func (h CreateTruckCommandHandler) Handle(ctx context.Context, command CreateTruckCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newTruck, err := truck.NewTruck(command.TruckID(), command.Plate(), command.Capacity(), command.DriverName())
	if err != nil {
		return err
	}

	if err = uow.TruckRepository().Add(ctx, newTruck); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
