package queries

import (
	"context"

	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDispatchesQueryHandler retrieves in-flight dispatches joined with
// truck and order data. Uses direct SQL queries for optimal read performance
// in the CQRS pattern.
//
// Example:
//
//	handler := NewGetActiveDispatchesQueryHandler(db)
//	query := NewGetActiveDispatchesQuery()
//
//	dispatches, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active dispatches: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d dispatches in flight\n", len(dispatches))
type GetActiveDispatchesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDispatchesQueryHandler creates a handler for the operations
// board query. Requires a GORM database connection for query execution.
func NewGetActiveDispatchesQueryHandler(db *gorm.DB) GetActiveDispatchesQueryHandler {
	return GetActiveDispatchesQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal dispatches.
// Returns rows oldest first so long-running hauls surface at the top.
// Converts database types to domain types for consistency.
func (h GetActiveDispatchesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDispatchesQuery,
) ([]GetActiveDispatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dispatches := make([]GetActiveDispatchesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.status,
			t.plate,
			t.driver_name,
			o.material_type,
			o.quantity,
			d.gross_weight,
			d.tare_weight,
			d.started_at
		FROM dispatches d
		JOIN trucks t ON t.id = d.truck_id
		JOIN orders o ON o.id = d.order_id
		WHERE d.status NOT IN (?, ?)
		ORDER BY d.created_at
	`, int(dispatch.Completed), int(dispatch.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetActiveDispatchesQueryResponse
		var id uuid.UUID
		var status int

		if err = rows.Scan(
			&id,
			&status,
			&row.TruckPlate,
			&row.DriverName,
			&row.MaterialType,
			&row.Quantity,
			&row.GrossWeight,
			&row.TareWeight,
			&row.StartedAt,
		); err != nil {
			return nil, err
		}

		dispatchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = dispatchID
		row.Status = dispatch.Status(status).String()
		dispatches = append(dispatches, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dispatches, nil
}
