package queries

import (
	"context"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/material"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMaterialsQueryHandler retrieves the material catalog using direct SQL
// queries. The low-stock flag is derived on read so threshold changes apply
// without data migration.
type GetMaterialsQueryHandler struct {
	db *gorm.DB
}

// NewGetMaterialsQueryHandler creates a handler for the material catalog query.
func NewGetMaterialsQueryHandler(db *gorm.DB) GetMaterialsQueryHandler {
	return GetMaterialsQueryHandler{db: db}
}

// Handle executes the query to retrieve all materials ordered by name.
func (h GetMaterialsQueryHandler) Handle(
	ctx context.Context,
	query GetMaterialsQuery,
) ([]GetMaterialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	materials := make([]GetMaterialsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, stock_quantity, unit
		FROM materials
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetMaterialsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &row.Name, &row.StockQuantity, &row.Unit); err != nil {
			return nil, err
		}

		materialID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = materialID
		row.LowStock = row.StockQuantity < material.LowStockThreshold
		materials = append(materials, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}
