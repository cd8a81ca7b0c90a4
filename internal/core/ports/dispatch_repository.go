package ports

import (
	"context"

	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/kernel"
)

// DispatchRepository defines the persistence contract for dispatch aggregates.
// Status transitions go through UpdateFrom, a compare-and-swap on the stored
// status that makes every transition first-writer-wins under concurrency.
type DispatchRepository interface {
	// Add persists a new dispatch aggregate to storage.
	// The dispatch must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *dispatch.Dispatch) error

	// UpdateFrom persists the aggregate only if the stored status still
	// equals expected. When a concurrent writer already moved the dispatch,
	// an error wrapping errs.ErrConflict is returned and no row changes.
	//
	// Every status transition must go through this method; Update is for
	// mutations that leave the status untouched.
	UpdateFrom(ctx context.Context, aggregate *dispatch.Dispatch, expected dispatch.Status) error

	// Update persists non-transition changes (operator assignment, new
	// attachments) without touching the stored status.
	Update(ctx context.Context, aggregate *dispatch.Dispatch) error

	// Get retrieves a dispatch aggregate by its unique identifier.
	// Returns the complete dispatch including its attachments.
	Get(ctx context.Context, id kernel.UUID) (*dispatch.Dispatch, error)

	// GetAllActive retrieves all dispatches in a non-terminal status,
	// oldest first.
	GetAllActive(ctx context.Context) ([]*dispatch.Dispatch, error)

	// GetActiveByOrder retrieves the non-terminal dispatch referencing the
	// given order, if any. At most one exists at a time.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*dispatch.Dispatch, error)
}
