// Package operatorrepo persists operator reference data.
package operatorrepo

import (
	"context"
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/operator"
	"haulage/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperatorDTO represents the database structure for persisting operators.
type OperatorDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for operator entities.
func (OperatorDTO) TableName() string {
	return "operators"
}

// GormOperatorRepository implements OperatorRepository using GORM.
type GormOperatorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOperatorRepository creates a new GORM operator repository.
func NewGormOperatorRepository(db *gorm.DB, tracker aggregateTracker) *GormOperatorRepository {
	return &GormOperatorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new operator to the database.
func (r *GormOperatorRepository) Add(ctx context.Context, aggregate *operator.Operator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("operator", aggregate.Username())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an operator by ID.
func (r *GormOperatorRepository) Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OperatorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("operator", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all operators ordered by username.
func (r *GormOperatorRepository) GetAll(ctx context.Context) ([]*operator.Operator, error) {
	var dtos []OperatorDTO
	if err := r.db.WithContext(ctx).Order("username").Find(&dtos).Error; err != nil {
		return nil, err
	}

	operators := make([]*operator.Operator, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		operators = append(operators, o)
	}

	return operators, nil
}

func fromDomain(o *operator.Operator) OperatorDTO {
	return OperatorDTO{
		ID:       o.ID().Bytes(),
		Username: o.Username(),
		FullName: o.FullName(),
	}
}

func toDomain(dto OperatorDTO) (*operator.Operator, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return operator.RestoreOperator(id, dto.Username, dto.FullName)
}
