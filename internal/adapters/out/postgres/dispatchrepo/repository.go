package dispatchrepo

import (
	"context"
	"errors"

	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDispatchRepository implements DispatchRepository using GORM.
type GormDispatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDispatchRepository creates a new GORM dispatch repository.
func NewGormDispatchRepository(db *gorm.DB, tracker aggregateTracker) *GormDispatchRepository {
	return &GormDispatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dispatch to the database.
func (r *GormDispatchRepository) Add(ctx context.Context, aggregate *dispatch.Dispatch) error {
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

// UpdateFrom persists a status transition with a compare-and-swap on the
// stored status. Zero rows affected means a concurrent writer moved the
// dispatch first; the caller gets an error wrapping errs.ErrConflict and the
// row is untouched. New attachments are upserted alongside the row.
func (r *GormDispatchRepository) UpdateFrom(
	ctx context.Context,
	aggregate *dispatch.Dispatch,
	expected dispatch.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DispatchDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select(
			"OperatorID", "Status", "GrossWeight", "TareWeight",
			"StartedAt", "WeighedInAt", "UnloadedAt", "WeighedOutAt", "CompletedAt",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("dispatch", aggregate.ID().String())
	}

	if err := r.saveAttachments(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists non-transition changes (operator assignment, attachments)
// without touching the stored status. Rows already in a terminal status are
// never touched: a concurrent completion or cancellation between the read and
// this write surfaces as an error wrapping errs.ErrConflict.
func (r *GormDispatchRepository) Update(ctx context.Context, aggregate *dispatch.Dispatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DispatchDTO{}).
		Where("id = ? AND status NOT IN (?, ?)", dto.ID, int(dispatch.Completed), int(dispatch.Cancelled)).
		Select("OperatorID", "GrossWeight", "TareWeight").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("dispatch", aggregate.ID().String())
	}

	if err := r.saveAttachments(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dispatch by ID including its attachments.
func (r *GormDispatchRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.Dispatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DispatchDTO
	if err := r.db.WithContext(ctx).Preload("Attachments").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispatch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all dispatches in a non-terminal status, oldest first.
func (r *GormDispatchRepository) GetAllActive(ctx context.Context) ([]*dispatch.Dispatch, error) {
	var dtos []DispatchDTO
	if err := r.db.WithContext(ctx).Preload("Attachments").
		Where("status NOT IN (?, ?)", int(dispatch.Completed), int(dispatch.Cancelled)).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	dispatches := make([]*dispatch.Dispatch, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dispatches = append(dispatches, d)
	}

	return dispatches, nil
}

// GetActiveByOrder retrieves the non-terminal dispatch covering the given
// order, if any. At most one exists at a time.
func (r *GormDispatchRepository) GetActiveByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*dispatch.Dispatch, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DispatchDTO
	if err := r.db.WithContext(ctx).Preload("Attachments").
		Where("order_id = ? AND status NOT IN (?, ?)",
			orderID.Bytes(), int(dispatch.Completed), int(dispatch.Cancelled)).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispatch for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// saveAttachments upserts the attachment child rows. Attachments are
// append-only in the domain, so conflicts on existing rows are ignored.
func (r *GormDispatchRepository) saveAttachments(ctx context.Context, dto DispatchDTO) error {
	for _, a := range dto.Attachments {
		attachment := a
		result := r.db.WithContext(ctx).
			Where("id = ?", attachment.ID).
			FirstOrCreate(&attachment)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}
