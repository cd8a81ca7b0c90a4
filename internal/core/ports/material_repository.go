package ports

import (
	"context"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/material"
)

// StockDeduction reports the outcome of a ledger deduction.
// Applied is false when the movement key was already recorded and the stock
// stayed untouched. Clamped is true when the requested deduction exceeded the
// stored quantity and the stock was floored at zero.
type StockDeduction struct {
	Applied bool
	Clamped bool
}

// MaterialRepository defines the persistence contract for material aggregates
// and the stock ledger backing the deduction side effect of job completion.
type MaterialRepository interface {
	// Add persists a new material aggregate to storage.
	// The material must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *material.Material) error

	// Update persists changes to an existing material aggregate.
	Update(ctx context.Context, aggregate *material.Material) error

	// Get retrieves a material aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*material.Material, error)

	// GetByName retrieves a material by its exact name. Orders reference
	// materials by name, not by foreign key; a missing name means no stock
	// deduction happens for that order.
	GetByName(ctx context.Context, name string) (*material.Material, error)

	// GetAll retrieves all materials.
	GetAll(ctx context.Context) ([]*material.Material, error)

	// DeductStock applies a net-weight deduction exactly once per movement
	// key, clamping the stored quantity at zero. The movement key is derived
	// from the dispatch so replays of the same completion are no-ops.
	//
	// The result reports whether the deduction applied and whether the stock
	// was clamped because the net weight exceeded the stored quantity.
	DeductStock(ctx context.Context, materialID kernel.UUID, net kernel.Weight, movementKey string) (StockDeduction, error)
}
