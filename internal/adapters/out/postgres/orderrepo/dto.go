// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// CreatedAt fixes the FIFO position of the order in the allocation sweep.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	MaterialType string    `gorm:"type:varchar(255);not null"`
	Quantity     float64   `gorm:"type:numeric(10,3);not null"`
	Status       int       `gorm:"type:int;not null;index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:           order.ID().Bytes(),
		CustomerID:   order.CustomerID().Bytes(),
		MaterialType: order.MaterialType(),
		Quantity:     order.Quantity().Value(),
		Status:       int(order.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the aggregate with its persisted lifecycle status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewWeight(dto.Quantity)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, dto.MaterialType, quantity, order.Status(dto.Status))
}
