package queries

import (
	"context"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/truck"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrucksQueryHandler retrieves the fleet roster using direct SQL queries
// for optimal read performance in the CQRS pattern.
type GetTrucksQueryHandler struct {
	db *gorm.DB
}

// NewGetTrucksQueryHandler creates a handler for the fleet roster query.
func NewGetTrucksQueryHandler(db *gorm.DB) GetTrucksQueryHandler {
	return GetTrucksQueryHandler{db: db}
}

// Handle executes the query to retrieve all trucks ordered by plate.
func (h GetTrucksQueryHandler) Handle(
	ctx context.Context,
	query GetTrucksQuery,
) ([]GetTrucksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trucks := make([]GetTrucksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, plate, capacity, driver_name, status
		FROM trucks
		ORDER BY plate
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetTrucksQueryResponse
		var id uuid.UUID
		var status int

		if err = rows.Scan(&id, &row.Plate, &row.Capacity, &row.DriverName, &status); err != nil {
			return nil, err
		}

		truckID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = truckID
		row.Status = truck.Status(status).String()
		trucks = append(trucks, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trucks, nil
}
