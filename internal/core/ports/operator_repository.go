package ports

import (
	"context"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/operator"
)

// OperatorRepository defines the persistence contract for operator records.
type OperatorRepository interface {
	// Add persists a new operator to storage.
	Add(ctx context.Context, aggregate *operator.Operator) error

	// Get retrieves an operator by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error)

	// GetAll retrieves all operators.
	GetAll(ctx context.Context) ([]*operator.Operator, error)
}
