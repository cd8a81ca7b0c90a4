package queries

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrGetTrucksQueryIsNotConstructed = errors.New(
	"GetTrucksQuery must be created via NewGetTrucksQuery constructor",
)

// GetTrucksQuery retrieves the full fleet roster ordered by plate.
type GetTrucksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTrucksQuery creates a query to retrieve the fleet roster.
func NewGetTrucksQuery() GetTrucksQuery {
	return GetTrucksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetTrucksQueryIsNotConstructed)
}

// GetTrucksQueryResponse is one fleet roster row.
type GetTrucksQueryResponse struct {
	ID         kernel.UUID
	Plate      string
	Capacity   float64
	DriverName string
	Status     string
}
