package ports

import (
	"context"

	"haulage/internal/core/domain/model/exception"
	"haulage/internal/core/domain/model/kernel"
)

// ExceptionRepository defines the persistence contract for exception records.
type ExceptionRepository interface {
	// Add persists a new exception to storage.
	Add(ctx context.Context, aggregate *exception.Exception) error

	// Update persists changes to an existing exception.
	Update(ctx context.Context, aggregate *exception.Exception) error

	// Get retrieves an exception by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error)

	// GetAllUnresolved retrieves all open exceptions, oldest first.
	GetAllUnresolved(ctx context.Context) ([]*exception.Exception, error)

	// GetByDispatch retrieves all exceptions logged against a dispatch,
	// oldest first.
	GetByDispatch(ctx context.Context, dispatchID kernel.UUID) ([]*exception.Exception, error)
}
