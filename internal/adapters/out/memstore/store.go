package memstore

import (
	"context"
	"sort"
	"sync"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/kernel"
)

// StatusChangeStore is an in-memory, mutex-serialized implementation of
// ports.StatusChangeStore. It backs the ledger in tests and in single-process
// deployments that do not need durable history.
type StatusChangeStore struct {
	mu      sync.RWMutex
	records []history.ChangeRecord
}

// NewStatusChangeStore creates an empty store.
func NewStatusChangeStore() *StatusChangeStore {
	return &StatusChangeStore{records: make([]history.ChangeRecord, 0)}
}

func (s *StatusChangeStore) Append(_ context.Context, record history.ChangeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.Metadata = cloneMetadata(record.Metadata)
	s.records = append(s.records, record)
	return nil
}

func (s *StatusChangeStore) ListByEntity(
	_ context.Context, entityType history.EntityType, entityID kernel.UUID,
) ([]history.ChangeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]history.ChangeRecord, 0)
	for _, record := range s.records {
		if record.EntityType == entityType && record.EntityID.IsEqual(entityID) {
			out = append(out, record)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ChangedAt.Before(out[j].ChangedAt)
	})
	return out, nil
}

func (s *StatusChangeStore) ListByEntityType(
	_ context.Context, entityType history.EntityType,
) ([]history.ChangeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]history.ChangeRecord, 0)
	for _, record := range s.records {
		if record.EntityType == entityType {
			out = append(out, record)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		left, right := out[i].EntityID.String(), out[j].EntityID.String()
		if left != right {
			return left < right
		}
		return out[i].ChangedAt.Before(out[j].ChangedAt)
	})
	return out, nil
}

func (s *StatusChangeStore) Query(_ context.Context, filter history.Filter) ([]history.ChangeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]history.ChangeRecord, 0)
	for _, record := range s.records {
		if matches(record, filter) {
			out = append(out, record)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ChangedAt.After(out[j].ChangedAt)
	})
	return paginate(out, filter.Page, filter.Limit), nil
}

func matches(record history.ChangeRecord, filter history.Filter) bool {
	if filter.EntityType != "" && record.EntityType != filter.EntityType {
		return false
	}
	if filter.EntityID != nil && !record.EntityID.IsEqual(*filter.EntityID) {
		return false
	}
	if filter.ChangedBy != "" && record.ChangedBy != filter.ChangedBy {
		return false
	}
	if filter.From != nil && record.ChangedAt.Before(*filter.From) {
		return false
	}
	if filter.To != nil && record.ChangedAt.After(*filter.To) {
		return false
	}
	return true
}

func paginate(records []history.ChangeRecord, page, limit int) []history.ChangeRecord {
	if limit <= 0 {
		return records
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(records) {
		return []history.ChangeRecord{}
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

func cloneMetadata(metadata map[string]string) map[string]string {
	if metadata == nil {
		return nil
	}
	out := make(map[string]string, len(metadata))
	for k, v := range metadata {
		out[k] = v
	}
	return out
}
