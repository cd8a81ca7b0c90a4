// Package ports defines repository interfaces for the haulage domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/truck"
)

// TruckRepository defines the persistence contract for truck aggregates.
// Provides methods for storing, retrieving, and querying the fleet, plus the
// conditional claim that serializes concurrent allocations.
type TruckRepository interface {
	// Add persists a new truck aggregate to storage.
	// The truck must be valid and not already exist in the repository.
	Add(ctx context.Context, truck *truck.Truck) error

	// Update persists changes to an existing truck aggregate.
	// The truck must exist in the repository and be valid.
	Update(ctx context.Context, truck *truck.Truck) error

	// Get retrieves a truck aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetAll retrieves the whole fleet.
	GetAll(ctx context.Context) ([]*truck.Truck, error)

	// GetAllIdle retrieves all trucks available for allocation.
	// The returned snapshot is advisory: the claim below re-checks idleness.
	GetAllIdle(ctx context.Context) ([]*truck.Truck, error)

	// Claim persists the Idle -> InTransit flip as a conditional update that
	// only succeeds if the stored row is still idle. When another allocation
	// won the race, an error wrapping errs.ErrConflict is returned and the
	// caller must pick a different truck or retry.
	//
	// The truck passed in must already be claimed in memory.
	Claim(ctx context.Context, truck *truck.Truck) error
}
