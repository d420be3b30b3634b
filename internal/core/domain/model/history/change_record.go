package history

import (
	"time"

	"manufacturing/internal/core/domain/model/kernel"
)

// EntityType discriminates which aggregate a change record belongs to.
type EntityType string

const (
	EntityTypeOrder   EntityType = "order"
	EntityTypeInquiry EntityType = "inquiry"
)

// ChangeRecord is one entry in the status-history ledger: a status change that
// was accepted and persisted. Records are immutable once written and are never
// updated or deleted; the ledger is the audit trail for the derived-status
// subsystem.
//
// FromStatus and ToStatus carry lowercase labels rather than typed enums so a
// single ledger serves both entity types.
type ChangeRecord struct {
	ID         kernel.UUID
	EntityType EntityType
	EntityID   kernel.UUID
	FromStatus string
	ToStatus   string
	ChangedAt  time.Time
	ChangedBy  string
	Reason     string
	Metadata   map[string]string
}

// TimelineEntry is a ChangeRecord annotated with how long the entity stayed in
// the status the record moved it to. The last entry of a timeline is marked
// active and its duration runs until "now".
type TimelineEntry struct {
	ChangeRecord
	Duration time.Duration
	IsActive bool
}

// Filter narrows a ledger query. Zero values mean "no constraint"; Page is
// 1-based and Limit caps the page size.
type Filter struct {
	EntityType EntityType
	EntityID   *kernel.UUID
	ChangedBy  string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

// StaleEntity reports an entity whose current status has been held longer than
// a caller-supplied threshold.
type StaleEntity struct {
	EntityID kernel.UUID
	Status   string
	Since    time.Time
	Held     time.Duration
}
