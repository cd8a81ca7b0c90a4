// Package dispatchrepo provides data transfer objects and mapping functions for dispatch persistence.
// This package implements the repository pattern for the dispatch domain aggregate, handling
// the conversion between domain entities and database representations.
package dispatchrepo

import (
	"time"

	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DispatchDTO represents the database structure for persisting dispatch aggregates.
// The status column is the compare-and-swap target for transitions; attachment
// rows are append-only children.
type DispatchDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TruckID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	OperatorID   *uuid.UUID      `gorm:"type:uuid;index"`
	Status       int             `gorm:"type:int;not null;index"`
	GrossWeight  *float64        `gorm:"type:numeric(10,3)"`
	TareWeight   *float64        `gorm:"type:numeric(10,3)"`
	StartedAt    *time.Time      `gorm:"type:timestamptz"`
	WeighedInAt  *time.Time      `gorm:"type:timestamptz"`
	UnloadedAt   *time.Time      `gorm:"type:timestamptz"`
	WeighedOutAt *time.Time      `gorm:"type:timestamptz"`
	CompletedAt  *time.Time      `gorm:"type:timestamptz"`
	CreatedAt    time.Time       `gorm:"index"`
	Attachments  []AttachmentDTO `gorm:"foreignKey:DispatchID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for dispatch entities.
// Overrides GORM's default naming convention to use "dispatches" instead of "dispatch_dtos".
func (DispatchDTO) TableName() string {
	return "dispatches"
}

// AttachmentDTO represents the database structure for persisting proof attachments.
// Links to the dispatch via foreign key; the media reference stays opaque.
type AttachmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DispatchID uuid.UUID `gorm:"type:uuid;not null;index"`
	Stage      int       `gorm:"type:int;not null"`
	Reference  string    `gorm:"type:varchar(1024);not null"`
	UploadedBy string    `gorm:"type:varchar(255);not null"`
	UploadedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for attachment entities.
// Overrides GORM's default naming convention to use "dispatch_attachments".
func (AttachmentDTO) TableName() string {
	return "dispatch_attachments"
}

// fromDomain converts a dispatch domain aggregate to its database representation.
// Maps the aggregate with its attachment child entities.
func fromDomain(aggregate *dispatch.Dispatch) DispatchDTO {
	dispatchID := aggregate.ID().Bytes()

	var operatorID *uuid.UUID
	if id := aggregate.OperatorID(); id != nil {
		raw := id.Bytes()
		operatorID = &raw
	}

	attachments := make([]AttachmentDTO, 0, len(aggregate.Attachments()))
	for _, a := range aggregate.Attachments() {
		attachments = append(attachments, AttachmentDTO{
			ID:         a.ID().Bytes(),
			DispatchID: dispatchID,
			Stage:      int(a.Stage()),
			Reference:  a.Reference(),
			UploadedBy: a.UploadedBy(),
			UploadedAt: a.UploadedAt(),
		})
	}

	return DispatchDTO{
		ID:           dispatchID,
		TruckID:      aggregate.TruckID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		OperatorID:   operatorID,
		Status:       int(aggregate.Status()),
		GrossWeight:  weightValue(aggregate.GrossWeight()),
		TareWeight:   weightValue(aggregate.TareWeight()),
		StartedAt:    aggregate.StartedAt(),
		WeighedInAt:  aggregate.WeighedInAt(),
		UnloadedAt:   aggregate.UnloadedAt(),
		WeighedOutAt: aggregate.WeighedOutAt(),
		CompletedAt:  aggregate.CompletedAt(),
		Attachments:  attachments,
	}
}

// toDomain converts a database DTO to a dispatch domain aggregate.
// Reconstructs the complete aggregate including its attachments using RestoreDispatch.
func toDomain(dto DispatchDTO) (*dispatch.Dispatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var operatorID *kernel.UUID
	if dto.OperatorID != nil {
		oID, opErr := kernel.UUIDFromBytes((*dto.OperatorID)[:])
		if opErr != nil {
			return nil, opErr
		}
		operatorID = &oID
	}

	grossWeight, err := restoreWeight(dto.GrossWeight)
	if err != nil {
		return nil, err
	}

	tareWeight, err := restoreWeight(dto.TareWeight)
	if err != nil {
		return nil, err
	}

	attachments := make([]*dispatch.Attachment, 0, len(dto.Attachments))
	for _, aDto := range dto.Attachments {
		a, aErr := attachmentToDomain(aDto)
		if aErr != nil {
			return nil, aErr
		}
		attachments = append(attachments, a)
	}

	return dispatch.RestoreDispatch(
		id, truckID, orderID,
		operatorID,
		dispatch.Status(dto.Status),
		grossWeight, tareWeight,
		dto.StartedAt, dto.WeighedInAt, dto.UnloadedAt, dto.WeighedOutAt, dto.CompletedAt,
		attachments,
	)
}

// attachmentToDomain converts an attachment DTO to its domain entity.
// Uses RestoreAttachment to reconstruct the entity with its persisted state.
func attachmentToDomain(dto AttachmentDTO) (*dispatch.Attachment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return dispatch.RestoreAttachment(
		id, dispatch.Status(dto.Stage), dto.Reference, dto.UploadedBy, dto.UploadedAt)
}

func weightValue(w *kernel.Weight) *float64 {
	if w == nil {
		return nil
	}
	v := w.Value()
	return &v
}

func restoreWeight(value *float64) (*kernel.Weight, error) {
	if value == nil {
		return nil, nil
	}

	w, err := kernel.NewWeight(*value)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
