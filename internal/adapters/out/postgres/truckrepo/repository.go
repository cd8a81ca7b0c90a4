package truckrepo

import (
	"context"
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/truck"
	"haulage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTruckRepository implements TruckRepository using GORM.
type GormTruckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTruckRepository creates a new GORM truck repository.
func NewGormTruckRepository(db *gorm.DB, tracker aggregateTracker) *GormTruckRepository {
	return &GormTruckRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new truck to the database.
func (r *GormTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing truck to the database.
func (r *GormTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TruckDTO{}).Where("id = ?", dto.ID).
		Select("Plate", "Capacity", "DriverName", "Status").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a truck by ID.
func (r *GormTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TruckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole fleet ordered by plate.
func (r *GormTruckRepository) GetAll(ctx context.Context) ([]*truck.Truck, error) {
	var dtos []TruckDTO
	if err := r.db.WithContext(ctx).Order("plate").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// GetAllIdle retrieves all trucks currently available for allocation.
// The snapshot is advisory; Claim re-checks idleness row by row.
func (r *GormTruckRepository) GetAllIdle(ctx context.Context) ([]*truck.Truck, error) {
	var dtos []TruckDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(truck.Idle)).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// Claim persists the Idle -> InTransit flip with a conditional update.
// Rows affected decides the winner: zero means another allocation already
// took the truck and an error wrapping errs.ErrConflict is returned.
func (r *GormTruckRepository) Claim(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&TruckDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(truck.Idle)).
		Update("status", int(truck.InTransit))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("truck", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTruckRepository) toDomainSlice(dtos []TruckDTO) ([]*truck.Truck, error) {
	trucks := make([]*truck.Truck, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}

	return trucks, nil
}
