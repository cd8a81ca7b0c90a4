package exceptionrepo

import (
	"context"
	"errors"

	"haulage/internal/core/domain/model/exception"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormExceptionRepository implements ExceptionRepository using GORM.
type GormExceptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormExceptionRepository creates a new GORM exception repository.
func NewGormExceptionRepository(db *gorm.DB, tracker aggregateTracker) *GormExceptionRepository {
	return &GormExceptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new exception to the database.
func (r *GormExceptionRepository) Add(ctx context.Context, aggregate *exception.Exception) error {
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

// Update saves an existing exception to the database.
func (r *GormExceptionRepository) Update(ctx context.Context, aggregate *exception.Exception) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ExceptionDTO{}).Where("id = ?", dto.ID).
		Select("Category", "Description", "Resolved", "ResolvedAt").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an exception by ID.
func (r *GormExceptionRepository) Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExceptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("exception", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnresolved retrieves all open exceptions, oldest first.
func (r *GormExceptionRepository) GetAllUnresolved(ctx context.Context) ([]*exception.Exception, error) {
	var dtos []ExceptionDTO
	if err := r.db.WithContext(ctx).
		Where("NOT resolved").
		Order("logged_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// GetByDispatch retrieves all exceptions logged against a dispatch, oldest first.
func (r *GormExceptionRepository) GetByDispatch(
	ctx context.Context,
	dispatchID kernel.UUID,
) ([]*exception.Exception, error) {
	if err := dispatchID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ExceptionDTO
	if err := r.db.WithContext(ctx).
		Where("dispatch_id = ?", dispatchID.Bytes()).
		Order("logged_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

func (r *GormExceptionRepository) toDomainSlice(dtos []ExceptionDTO) ([]*exception.Exception, error) {
	exceptions := make([]*exception.Exception, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, e)
	}

	return exceptions, nil
}
