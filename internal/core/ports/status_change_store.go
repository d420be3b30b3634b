package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/kernel"
)

// StatusChangeStore is the storage contract behind the status-history ledger.
// It is strictly append-only: implementations must never expose update or
// delete operations, and Append of an already-built record must be a single
// atomic write.
type StatusChangeStore interface {
	// Append persists one change record.
	Append(ctx context.Context, record history.ChangeRecord) error

	// ListByEntity returns all records for one entity, ascending by change time.
	ListByEntity(ctx context.Context, entityType history.EntityType, entityID kernel.UUID) ([]history.ChangeRecord, error)

	// ListByEntityType returns all records of one entity type, ascending by
	// entity id and then change time, so callers can walk per-entity runs.
	ListByEntityType(ctx context.Context, entityType history.EntityType) ([]history.ChangeRecord, error)

	// Query returns records matching the filter, descending by change time,
	// paginated by Filter.Page/Limit.
	Query(ctx context.Context, filter history.Filter) ([]history.ChangeRecord, error)
}
