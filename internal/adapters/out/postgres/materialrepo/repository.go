package materialrepo

import (
	"context"
	"database/sql"
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/material"
	"haulage/internal/core/ports"
	"haulage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMaterialRepository implements MaterialRepository using GORM.
// Relies on gorm.Config.TranslateError so duplicate ledger keys surface as
// gorm.ErrDuplicatedKey.
type GormMaterialRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMaterialRepository creates a new GORM material repository.
func NewGormMaterialRepository(db *gorm.DB, tracker aggregateTracker) *GormMaterialRepository {
	return &GormMaterialRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new material to the database.
func (r *GormMaterialRepository) Add(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("material", aggregate.Name())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing material to the database.
func (r *GormMaterialRepository) Update(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MaterialDTO{}).Where("id = ?", dto.ID).
		Select("Name", "StockQuantity", "Unit").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a material by ID.
func (r *GormMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MaterialDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("material", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a material by its exact name. Orders reference
// materials by name; a miss means no stock deduction for that order.
func (r *GormMaterialRepository) GetByName(ctx context.Context, name string) (*material.Material, error) {
	var dto MaterialDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("material", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all materials ordered by name.
func (r *GormMaterialRepository) GetAll(ctx context.Context) ([]*material.Material, error) {
	var dtos []MaterialDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	materials := make([]*material.Material, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}

	return materials, nil
}

// DeductStock applies a net-weight deduction exactly once per movement key.
// The ledger insert and the clamped stock update run against the same
// connection, so inside a unit of work they commit or roll back together.
// A duplicate movement key means the deduction already happened; the stock
// stays untouched and Applied=false is returned. The update compares the
// prior quantity against the deduction so underflow surfaces as Clamped=true.
func (r *GormMaterialRepository) DeductStock(
	ctx context.Context,
	materialID kernel.UUID,
	net kernel.Weight,
	movementKey string,
) (ports.StockDeduction, error) {
	if err := materialID.Validate(); err != nil {
		return ports.StockDeduction{}, err
	}
	if err := net.Validate(); err != nil {
		return ports.StockDeduction{}, err
	}

	movement := StockMovementDTO{
		MovementKey: movementKey,
		MaterialID:  materialID.Bytes(),
		Quantity:    net.Value(),
	}
	if err := r.db.WithContext(ctx).Create(&movement).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.StockDeduction{}, nil
		}
		return ports.StockDeduction{}, err
	}

	var clamped bool
	row := r.db.WithContext(ctx).Raw(`
		UPDATE materials m
		SET stock_quantity = GREATEST(m.stock_quantity - ?, 0)
		FROM (SELECT id, stock_quantity FROM materials WHERE id = ? FOR UPDATE) prior
		WHERE m.id = prior.id
		RETURNING prior.stock_quantity < ?
	`, net.Value(), materialID.Bytes(), net.Value()).Row()
	if err := row.Scan(&clamped); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.StockDeduction{}, errs.NewObjectNotFoundError("material", materialID.String())
		}
		return ports.StockDeduction{}, err
	}

	return ports.StockDeduction{Applied: true, Clamped: clamped}, nil
}
