package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TruckRepository returns a TruckRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	TruckRepository() TruckRepository

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// DispatchRepository returns a DispatchRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	DispatchRepository() DispatchRepository

	// MaterialRepository returns a MaterialRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	MaterialRepository() MaterialRepository

	// ExceptionRepository returns an ExceptionRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	ExceptionRepository() ExceptionRepository

	// CustomerRepository returns a CustomerRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	CustomerRepository() CustomerRepository

	// OperatorRepository returns an OperatorRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OperatorRepository() OperatorRepository
}
