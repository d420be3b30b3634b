// Package inquiryrepo provides data transfer objects and mapping functions for
// inquiry persistence. Unlike orders, inquiries carry their status as a stored
// integer code; the code column is authoritative and the engine only resolves
// it to a label.
package inquiryrepo

import (
	"time"

	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InquiryDTO represents the database structure for persisting inquiries.
type InquiryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StatusCode int       `gorm:"index"`
	CreatedAt  time.Time

	AcceptedAt *time.Time
	RejectedAt *time.Time
	ClosedAt   *time.Time
}

// TableName overrides GORM's default naming convention to use "inquiries".
func (InquiryDTO) TableName() string {
	return "inquiries"
}

// fromDomain converts an inquiry snapshot to its database representation.
func fromDomain(snap inquiry.Snapshot) InquiryDTO {
	return InquiryDTO{
		ID:         snap.ID.Bytes(),
		StatusCode: snap.StatusCode,
		CreatedAt:  snap.CreatedAt,
		AcceptedAt: snap.AcceptedAt,
		RejectedAt: snap.RejectedAt,
		ClosedAt:   snap.ClosedAt,
	}
}

// toDomain converts a database DTO to an inquiry snapshot. The status code is
// passed through raw; out-of-range values are the engine's concern.
func toDomain(dto InquiryDTO) (inquiry.Snapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return inquiry.Snapshot{}, err
	}

	return inquiry.Snapshot{
		ID:         id,
		StatusCode: dto.StatusCode,
		CreatedAt:  dto.CreatedAt,
		AcceptedAt: dto.AcceptedAt,
		RejectedAt: dto.RejectedAt,
		ClosedAt:   dto.ClosedAt,
	}, nil
}
