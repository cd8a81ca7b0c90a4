// Package materialrepo provides data transfer objects and mapping functions for material
// persistence, including the stock-movement ledger behind exactly-once deduction.
package materialrepo

import (
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/material"

	"github.com/google/uuid"
)

// MaterialDTO represents the database structure for persisting material aggregates.
type MaterialDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	StockQuantity float64   `gorm:"type:numeric(12,3);not null"`
	Unit          string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for material entities.
// Overrides GORM's default naming convention to use "materials" instead of "material_dtos".
func (MaterialDTO) TableName() string {
	return "materials"
}

// StockMovementDTO is one ledger entry. The movement key is the primary key,
// so replaying the same deduction hits a duplicate-key error instead of
// double-deducting.
type StockMovementDTO struct {
	MovementKey string    `gorm:"type:varchar(255);primaryKey"`
	MaterialID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    float64   `gorm:"type:numeric(12,3);not null"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for ledger entries.
func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

// fromDomain converts a material domain aggregate to its database representation.
func fromDomain(material *material.Material) MaterialDTO {
	return MaterialDTO{
		ID:            material.ID().Bytes(),
		Name:          material.Name(),
		StockQuantity: material.StockQuantity(),
		Unit:          material.Unit(),
	}
}

// toDomain converts a database DTO to a material domain aggregate.
func toDomain(dto MaterialDTO) (*material.Material, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return material.RestoreMaterial(id, dto.Name, dto.StockQuantity, dto.Unit)
}
