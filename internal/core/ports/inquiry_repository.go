package ports

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/kernel"
)

// InquiryRepository is the persistence contract for inquiries. The stored
// integer code is authoritative for status, so SetStatus writes the code and
// the decision timestamp together.
type InquiryRepository interface {
	// Add persists a new inquiry.
	Add(ctx context.Context, snap inquiry.Snapshot) error

	// Get returns the inquiry's current snapshot.
	Get(ctx context.Context, id kernel.UUID) (inquiry.Snapshot, error)

	// GetAll returns snapshots for every inquiry, for batch auditing.
	GetAll(ctx context.Context) ([]inquiry.Snapshot, error)

	// SetStatus writes the status code and, for accepted/rejected/closed,
	// stamps the matching decision timestamp.
	SetStatus(ctx context.Context, id kernel.UUID, status inquiry.Status, at time.Time) error
}
