package queries

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrGetOperatorsQueryIsNotConstructed = errors.New(
	"GetOperatorsQuery must be created via NewGetOperatorsQuery constructor",
)

// GetOperatorsQuery retrieves the operator roster ordered by username.
type GetOperatorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOperatorsQuery creates a query to retrieve all operators.
func NewGetOperatorsQuery() GetOperatorsQuery {
	return GetOperatorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOperatorsQuery) Validate() error {
	return q.guard.Validate(ErrGetOperatorsQueryIsNotConstructed)
}

// GetOperatorsQueryResponse is one operator roster row.
type GetOperatorsQueryResponse struct {
	ID       kernel.UUID
	Username string
	FullName string
}
