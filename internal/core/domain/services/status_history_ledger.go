package services

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/ports"
)

// StatusHistoryLedger is the append-only log of accepted status changes and
// the queries derived from it: per-entity timelines, time-in-status
// statistics, and staleness detection.
//
// The ledger owns no storage itself; it is constructed over a
// ports.StatusChangeStore (in-memory or database-backed) so command handlers
// can bind it to their transaction while query handlers read through the
// shared store. Records are immutable once written and are never updated or
// deleted.
type StatusHistoryLedger struct {
	store ports.StatusChangeStore
	now   func() time.Time
}

// NewStatusHistoryLedger creates a ledger over the given store.
func NewStatusHistoryLedger(store ports.StatusChangeStore) StatusHistoryLedger {
	return StatusHistoryLedger{store: store, now: time.Now}
}

// NewStatusHistoryLedgerWithClock creates a ledger with an injected clock,
// used by duration and staleness tests.
func NewStatusHistoryLedgerWithClock(store ports.StatusChangeStore, now func() time.Time) StatusHistoryLedger {
	return StatusHistoryLedger{store: store, now: now}
}

// RecordOptions carries the optional fields of a change record.
type RecordOptions struct {
	ChangedBy string
	Reason    string
	Metadata  map[string]string
}

// Record builds a change record with a fresh id and the current timestamp,
// appends it, and returns it. The ledger itself never rejects a record;
// only the underlying store can fail.
func (l StatusHistoryLedger) Record(
	ctx context.Context,
	entityType history.EntityType,
	entityID kernel.UUID,
	fromStatus, toStatus string,
	opts RecordOptions,
) (history.ChangeRecord, error) {
	record := history.ChangeRecord{
		ID:         kernel.NewUUID(),
		EntityType: entityType,
		EntityID:   entityID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		ChangedAt:  l.now(),
		ChangedBy:  opts.ChangedBy,
		Reason:     opts.Reason,
		Metadata:   opts.Metadata,
	}

	if err := l.store.Append(ctx, record); err != nil {
		return history.ChangeRecord{}, err
	}
	return record, nil
}

// HistoryFor returns all records for one entity, ascending by change time.
func (l StatusHistoryLedger) HistoryFor(
	ctx context.Context, entityType history.EntityType, entityID kernel.UUID,
) ([]history.ChangeRecord, error) {
	return l.store.ListByEntity(ctx, entityType, entityID)
}

// Latest returns the most recent record for the entity; the boolean is false
// when the entity has no history.
func (l StatusHistoryLedger) Latest(
	ctx context.Context, entityType history.EntityType, entityID kernel.UUID,
) (history.ChangeRecord, bool, error) {
	records, err := l.store.ListByEntity(ctx, entityType, entityID)
	if err != nil || len(records) == 0 {
		return history.ChangeRecord{}, false, err
	}
	return records[len(records)-1], true, nil
}

// First returns the oldest record for the entity; the boolean is false when
// the entity has no history.
func (l StatusHistoryLedger) First(
	ctx context.Context, entityType history.EntityType, entityID kernel.UUID,
) (history.ChangeRecord, bool, error) {
	records, err := l.store.ListByEntity(ctx, entityType, entityID)
	if err != nil || len(records) == 0 {
		return history.ChangeRecord{}, false, err
	}
	return records[0], true, nil
}

// Query returns records matching the filter, descending by change time,
// paginated.
func (l StatusHistoryLedger) Query(ctx context.Context, filter history.Filter) ([]history.ChangeRecord, error) {
	return l.store.Query(ctx, filter)
}

// Timeline returns the entity's history annotated with how long each status
// held: until the next record, or until now for the last one, which is also
// marked active.
func (l StatusHistoryLedger) Timeline(
	ctx context.Context, entityType history.EntityType, entityID kernel.UUID,
) ([]history.TimelineEntry, error) {
	records, err := l.store.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}

	entries := make([]history.TimelineEntry, 0, len(records))
	for i, record := range records {
		entry := history.TimelineEntry{ChangeRecord: record}
		if i+1 < len(records) {
			entry.Duration = records[i+1].ChangedAt.Sub(record.ChangedAt)
		} else {
			entry.Duration = l.now().Sub(record.ChangedAt)
			entry.IsActive = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// AverageDuration computes the mean time entities of the given type spent in
// the given status, pairing each record that entered the status with its
// successor in the same entity's history. Open intervals (no successor yet)
// are excluded. The boolean is false when no closed interval matched.
func (l StatusHistoryLedger) AverageDuration(
	ctx context.Context,
	entityType history.EntityType,
	status string,
	from, to *time.Time,
) (time.Duration, bool, error) {
	records, err := l.store.ListByEntityType(ctx, entityType)
	if err != nil {
		return 0, false, err
	}

	var total time.Duration
	var samples int

	for i, record := range records {
		if record.ToStatus != status {
			continue
		}
		if from != nil && record.ChangedAt.Before(*from) {
			continue
		}
		if to != nil && record.ChangedAt.After(*to) {
			continue
		}
		if i+1 >= len(records) || !records[i+1].EntityID.IsEqual(record.EntityID) {
			continue
		}
		total += records[i+1].ChangedAt.Sub(record.ChangedAt)
		samples++
	}

	if samples == 0 {
		return 0, false, nil
	}
	return total / time.Duration(samples), true, nil
}

// FindStaleInStatus returns entities whose current (most recent) status is the
// target and whose time in it exceeds maxHeld. Only the latest record per
// entity counts; earlier visits to the status are ignored.
func (l StatusHistoryLedger) FindStaleInStatus(
	ctx context.Context,
	entityType history.EntityType,
	status string,
	maxHeld time.Duration,
) ([]history.StaleEntity, error) {
	records, err := l.store.ListByEntityType(ctx, entityType)
	if err != nil {
		return nil, err
	}

	latest := make(map[kernel.UUID]history.ChangeRecord)
	for _, record := range records {
		current, ok := latest[record.EntityID]
		if !ok || record.ChangedAt.After(current.ChangedAt) {
			latest[record.EntityID] = record
		}
	}

	now := l.now()
	stale := make([]history.StaleEntity, 0)
	for _, record := range latest {
		held := now.Sub(record.ChangedAt)
		if record.ToStatus == status && held > maxHeld {
			stale = append(stale, history.StaleEntity{
				EntityID: record.EntityID,
				Status:   record.ToStatus,
				Since:    record.ChangedAt,
				Held:     held,
			})
		}
	}
	return stale, nil
}
