package queries

import (
	"errors"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrGetActiveDispatchesQueryIsNotConstructed = errors.New(
	"GetActiveDispatchesQuery must be created via NewGetActiveDispatchesQuery constructor",
)

// GetActiveDispatchesQuery retrieves every dispatch still in flight, joined
// with the truck and order it serves, for the operations board.
//
// Example:
//
//	query := NewGetActiveDispatchesQuery()
//	handler := NewGetActiveDispatchesQueryHandler(db)
//
//	dispatches, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve active dispatches: %w", err)
//	}
//
//	for _, d := range dispatches {
//	    fmt.Printf("%s hauling %s (%s)\n", d.TruckPlate, d.MaterialType, d.Status)
//	}
type GetActiveDispatchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDispatchesQuery creates a query to retrieve in-flight dispatches.
// This is a parameterless query that fetches every non-terminal dispatch.
func NewGetActiveDispatchesQuery() GetActiveDispatchesQuery {
	return GetActiveDispatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveDispatchesQueryIsNotConstructed if validation fails.
func (q GetActiveDispatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDispatchesQueryIsNotConstructed)
}

// GetActiveDispatchesQueryResponse is one operations-board row.
// Weights are nil until the corresponding weighing step has happened.
type GetActiveDispatchesQueryResponse struct {
	ID           kernel.UUID
	Status       string
	TruckPlate   string
	DriverName   string
	MaterialType string
	Quantity     float64
	GrossWeight  *float64
	TareWeight   *float64
	StartedAt    *time.Time
}
