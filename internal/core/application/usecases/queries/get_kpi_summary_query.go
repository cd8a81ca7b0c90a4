// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"haulage/internal/pkg/guard"
)

var ErrGetKPISummaryQueryIsNotConstructed = errors.New(
	"GetKPISummaryQuery must be created via NewGetKPISummaryQuery constructor",
)

// GetKPISummaryQuery retrieves the operational dashboard figures: fleet size,
// dispatches in flight, today's completions, pending backlog, average
// delivery time and the stock position per material.
//
// Example:
//
//	query := NewGetKPISummaryQuery()
//	handler := NewGetKPISummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve KPI summary: %w", err)
//	}
//	fmt.Printf("%d dispatches in flight\n", summary.ActiveDispatches)
type GetKPISummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKPISummaryQuery creates a query to retrieve the dashboard summary.
// This is a parameterless query over the whole operational dataset.
func NewGetKPISummaryQuery() GetKPISummaryQuery {
	return GetKPISummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetKPISummaryQueryIsNotConstructed if validation fails.
func (q GetKPISummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetKPISummaryQueryIsNotConstructed)
}

// GetKPISummaryQueryResponse is the dashboard read model.
// AverageDeliveryHours is nil until at least one dispatch has completed.
type GetKPISummaryQueryResponse struct {
	TotalTrucks          int
	ActiveDispatches     int
	CompletedOrdersToday int
	PendingOrders        int
	AverageDeliveryHours *float64
	UnresolvedExceptions int
	MaterialStock        []MaterialStockSummary
}

// MaterialStockSummary is one row of the per-material stock position.
// LowStock mirrors the domain threshold so dashboards need no extra lookup.
type MaterialStockSummary struct {
	Name          string
	StockQuantity float64
	Unit          string
	LowStock      bool
}
