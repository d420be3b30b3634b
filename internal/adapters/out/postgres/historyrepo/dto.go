// Package historyrepo persists status-change records for the history ledger.
// The table is insert-only: no update or delete path exists in this package,
// which is what makes the ledger trustworthy as an audit trail.
package historyrepo

import (
	"encoding/json"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ChangeRecordDTO represents the database structure for one ledger entry.
type ChangeRecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntityType string    `gorm:"index:idx_status_changes_entity"`
	EntityID   uuid.UUID `gorm:"type:uuid;index:idx_status_changes_entity"`
	FromStatus string
	ToStatus   string
	ChangedAt  time.Time `gorm:"index"`
	ChangedBy  string
	Reason     string
	Metadata   []byte `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming convention to use "status_changes".
func (ChangeRecordDTO) TableName() string {
	return "status_changes"
}

// fromDomain converts a change record to its database representation.
func fromDomain(record history.ChangeRecord) (ChangeRecordDTO, error) {
	var metadata []byte
	if len(record.Metadata) > 0 {
		raw, err := json.Marshal(record.Metadata)
		if err != nil {
			return ChangeRecordDTO{}, err
		}
		metadata = raw
	}

	return ChangeRecordDTO{
		ID:         record.ID.Bytes(),
		EntityType: string(record.EntityType),
		EntityID:   record.EntityID.Bytes(),
		FromStatus: record.FromStatus,
		ToStatus:   record.ToStatus,
		ChangedAt:  record.ChangedAt,
		ChangedBy:  record.ChangedBy,
		Reason:     record.Reason,
		Metadata:   metadata,
	}, nil
}

// toDomain converts a database DTO to a change record.
func toDomain(dto ChangeRecordDTO) (history.ChangeRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return history.ChangeRecord{}, err
	}

	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return history.ChangeRecord{}, err
	}

	var metadata map[string]string
	if len(dto.Metadata) > 0 {
		if err = json.Unmarshal(dto.Metadata, &metadata); err != nil {
			return history.ChangeRecord{}, err
		}
	}

	return history.ChangeRecord{
		ID:         id,
		EntityType: history.EntityType(dto.EntityType),
		EntityID:   entityID,
		FromStatus: dto.FromStatus,
		ToStatus:   dto.ToStatus,
		ChangedAt:  dto.ChangedAt,
		ChangedBy:  dto.ChangedBy,
		Reason:     dto.Reason,
		Metadata:   metadata,
	}, nil
}
