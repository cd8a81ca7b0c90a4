package commands

import (
	"context"

	"haulage/internal/core/domain/model/material"
)

// CreateMaterialCommandHandler handles material registration.
type CreateMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewCreateMaterialCommandHandler creates a handler for material registration.
func NewCreateMaterialCommandHandler(uowFactory MaterialUoWFactory) CreateMaterialCommandHandler {
	return CreateMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the material registration command.
func (h CreateMaterialCommandHandler) Handle(ctx context.Context, command CreateMaterialCommand) error {
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

	newMaterial, err := material.NewMaterial(
		command.MaterialID(), command.Name(), command.StockQuantity(), command.Unit())
	if err != nil {
		return err
	}

	if err = uow.MaterialRepository().Add(ctx, newMaterial); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
