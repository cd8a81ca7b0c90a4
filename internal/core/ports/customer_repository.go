package ports

import (
	"context"

	"haulage/internal/core/domain/model/customer"
	"haulage/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	// Add persists a new customer to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
