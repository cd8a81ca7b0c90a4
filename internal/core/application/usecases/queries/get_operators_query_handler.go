package queries

import (
	"context"

	"haulage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOperatorsQueryHandler retrieves the operator roster using direct SQL queries.
type GetOperatorsQueryHandler struct {
	db *gorm.DB
}

// NewGetOperatorsQueryHandler creates a handler for the operator roster query.
func NewGetOperatorsQueryHandler(db *gorm.DB) GetOperatorsQueryHandler {
	return GetOperatorsQueryHandler{db: db}
}

// Handle executes the query to retrieve all operators ordered by username.
func (h GetOperatorsQueryHandler) Handle(
	ctx context.Context,
	query GetOperatorsQuery,
) ([]GetOperatorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	operators := make([]GetOperatorsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, full_name
		FROM operators
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOperatorsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &row.Username, &row.FullName); err != nil {
			return nil, err
		}

		operatorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = operatorID
		operators = append(operators, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return operators, nil
}
