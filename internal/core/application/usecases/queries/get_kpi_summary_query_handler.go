package queries

import (
	"context"

	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/material"
	"haulage/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetKPISummaryQueryHandler computes the dashboard figures straight from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
//
// Example:
//
//	handler := NewGetKPISummaryQueryHandler(db)
//	query := NewGetKPISummaryQuery()
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get KPI summary: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d trucks, %d active dispatches\n", summary.TotalTrucks, summary.ActiveDispatches)
type GetKPISummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetKPISummaryQueryHandler creates a handler for dashboard summary queries.
// Requires a GORM database connection for query execution.
func NewGetKPISummaryQueryHandler(db *gorm.DB) GetKPISummaryQueryHandler {
	return GetKPISummaryQueryHandler{db: db}
}

// Handle executes the query to compute the dashboard summary.
// Counters come from single aggregate queries; the stock rows are sorted by
// material name. Average delivery time spans journey start to completion over
// today's completions and is nil while nothing has completed yet.
func (h GetKPISummaryQueryHandler) Handle(
	ctx context.Context,
	query GetKPISummaryQuery,
) (GetKPISummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetKPISummaryQueryResponse{}, err
	}

	var response GetKPISummaryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM trucks),
			(SELECT COUNT(*) FROM dispatches WHERE status NOT IN (?, ?)),
			(SELECT COUNT(*) FROM dispatches
				WHERE status = ? AND completed_at >= CURRENT_DATE),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT AVG(EXTRACT(EPOCH FROM (completed_at - started_at)) / 3600.0)
				FROM dispatches
				WHERE status = ? AND started_at IS NOT NULL
					AND completed_at >= CURRENT_DATE),
			(SELECT COUNT(*) FROM exceptions WHERE NOT resolved)
	`,
		int(dispatch.Completed), int(dispatch.Cancelled),
		int(dispatch.Completed),
		int(order.Pending),
		int(dispatch.Completed),
	).Row()

	if err := row.Scan(
		&response.TotalTrucks,
		&response.ActiveDispatches,
		&response.CompletedOrdersToday,
		&response.PendingOrders,
		&response.AverageDeliveryHours,
		&response.UnresolvedExceptions,
	); err != nil {
		return GetKPISummaryQueryResponse{}, err
	}

	stock, err := h.materialStock(ctx)
	if err != nil {
		return GetKPISummaryQueryResponse{}, err
	}
	response.MaterialStock = stock

	return response, nil
}

func (h GetKPISummaryQueryHandler) materialStock(ctx context.Context) ([]MaterialStockSummary, error) {
	summaries := make([]MaterialStockSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			stock_quantity,
			unit
		FROM materials
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary MaterialStockSummary

		if err = rows.Scan(
			&summary.Name,
			&summary.StockQuantity,
			&summary.Unit,
		); err != nil {
			return nil, err
		}

		summary.LowStock = summary.StockQuantity < material.LowStockThreshold
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
