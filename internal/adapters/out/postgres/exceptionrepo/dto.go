// Package exceptionrepo provides data transfer objects and mapping functions for
// exception persistence.
package exceptionrepo

import (
	"time"

	"haulage/internal/core/domain/model/exception"
	"haulage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExceptionDTO represents the database structure for persisting incident records.
type ExceptionDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DispatchID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Category    int        `gorm:"type:int;not null"`
	Description string     `gorm:"type:text;not null"`
	LoggedBy    string     `gorm:"type:varchar(255);not null"`
	LoggedAt    time.Time  `gorm:"type:timestamptz;not null"`
	Resolved    bool       `gorm:"not null;index"`
	ResolvedAt  *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for exception entities.
// Overrides GORM's default naming convention to use "exceptions" instead of "exception_dtos".
func (ExceptionDTO) TableName() string {
	return "exceptions"
}

// fromDomain converts an exception domain aggregate to its database representation.
func fromDomain(e *exception.Exception) ExceptionDTO {
	return ExceptionDTO{
		ID:          e.ID().Bytes(),
		DispatchID:  e.DispatchID().Bytes(),
		Category:    int(e.Category()),
		Description: e.Description(),
		LoggedBy:    e.LoggedBy(),
		LoggedAt:    e.LoggedAt(),
		Resolved:    e.IsResolved(),
		ResolvedAt:  e.ResolvedAt(),
	}
}

// toDomain converts a database DTO to an exception domain aggregate.
func toDomain(dto ExceptionDTO) (*exception.Exception, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	dispatchID, err := kernel.UUIDFromBytes(dto.DispatchID[:])
	if err != nil {
		return nil, err
	}

	return exception.RestoreException(
		id, dispatchID,
		exception.Category(dto.Category),
		dto.Description, dto.LoggedBy, dto.LoggedAt,
		dto.Resolved, dto.ResolvedAt,
	)
}
