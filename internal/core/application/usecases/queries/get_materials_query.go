package queries

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrGetMaterialsQueryIsNotConstructed = errors.New(
	"GetMaterialsQuery must be created via NewGetMaterialsQuery constructor",
)

// GetMaterialsQuery retrieves the material catalog with stock levels.
type GetMaterialsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMaterialsQuery creates a query to retrieve the material catalog.
func NewGetMaterialsQuery() GetMaterialsQuery {
	return GetMaterialsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMaterialsQuery) Validate() error {
	return q.guard.Validate(ErrGetMaterialsQueryIsNotConstructed)
}

// GetMaterialsQueryResponse is one material catalog row.
type GetMaterialsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	StockQuantity float64
	Unit          string
	LowStock      bool
}
