// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"haulage/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TruckRepoFactory provides access to truck repository within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// DispatchRepoFactory provides access to dispatch repository within a transaction.
	DispatchRepoFactory interface {
		DispatchRepository() ports.DispatchRepository
	}

	// MaterialRepoFactory provides access to material repository within a transaction.
	MaterialRepoFactory interface {
		MaterialRepository() ports.MaterialRepository
	}

	// ExceptionRepoFactory provides access to exception repository within a transaction.
	ExceptionRepoFactory interface {
		ExceptionRepository() ports.ExceptionRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OperatorRepoFactory provides access to operator repository within a transaction.
	OperatorRepoFactory interface {
		OperatorRepository() ports.OperatorRepository
	}

	// OrderUoW manages transactions for order creation.
	// Includes the customer repository for reference validation.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FleetUoW manages transactions for truck-only operations.
	FleetUoW interface {
		TxManager
		TruckRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// MaterialUoW manages transactions for material-only operations.
	MaterialUoW interface {
		TxManager
		MaterialRepoFactory
	}

	// MaterialUoWFactory creates new material unit of work instances.
	MaterialUoWFactory interface {
		Create() MaterialUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// OperatorUoW manages transactions for operator-only operations.
	OperatorUoW interface {
		TxManager
		OperatorRepoFactory
	}

	// OperatorUoWFactory creates new operator unit of work instances.
	OperatorUoWFactory interface {
		Create() OperatorUoW
	}

	// DispatchUoW manages transactions for single-dispatch operations that
	// touch no other aggregate (weighing steps, operator assignment, proofs).
	DispatchUoW interface {
		TxManager
		DispatchRepoFactory
		OperatorRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// ExceptionUoW manages transactions for exception tracking.
	// Includes the dispatch repository for reference validation.
	ExceptionUoW interface {
		TxManager
		ExceptionRepoFactory
		DispatchRepoFactory
	}

	// ExceptionUoWFactory creates new exception unit of work instances.
	ExceptionUoWFactory interface {
		Create() ExceptionUoW
	}

	// UoW manages transactions across the full aggregate set.
	// Used for the lifecycle commands that coordinate dispatches with orders,
	// trucks and the stock ledger (allocation, journey start, completion,
	// cancellation).
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   dispatchRepo := uow.DispatchRepository()
	//   truckRepo := uow.TruckRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		TruckRepoFactory
		DispatchRepoFactory
		MaterialRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
