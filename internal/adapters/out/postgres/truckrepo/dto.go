// Package truckrepo provides data transfer objects and mapping functions for truck persistence.
// This package implements the repository pattern for the truck domain aggregate, handling
// the conversion between domain entities and database representations.
package truckrepo

import (
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure for persisting truck aggregates.
// The status column doubles as the claim flag for allocation: the conditional
// update in Claim only flips rows still holding the idle value.
type TruckDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate      string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Capacity   float64   `gorm:"type:numeric(10,3);not null"`
	DriverName string    `gorm:"type:varchar(255);not null"`
	Status     int       `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for truck entities.
// Overrides GORM's default naming convention to use "trucks" instead of "truck_dtos".
func (TruckDTO) TableName() string {
	return "trucks"
}

// fromDomain converts a truck domain aggregate to its database representation.
func fromDomain(truck *truck.Truck) TruckDTO {
	return TruckDTO{
		ID:         truck.ID().Bytes(),
		Plate:      truck.Plate(),
		Capacity:   truck.Capacity().Value(),
		DriverName: truck.DriverName(),
		Status:     int(truck.Status()),
	}
}

// toDomain converts a database DTO to a truck domain aggregate.
// Reconstructs the aggregate with its persisted availability status using RestoreTruck.
func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	capacity, err := kernel.NewWeight(dto.Capacity)
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruck(id, dto.Plate, capacity, dto.DriverName, truck.Status(dto.Status))
}
