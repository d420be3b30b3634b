package inquiry

import (
	"time"

	"manufacturing/internal/core/domain/model/kernel"
)

// Snapshot is an immutable, in-memory copy of an inquiry's persisted fields.
// StatusCode is carried raw (not as Status) because persisted rows may hold
// out-of-range values; deciding what to do with those is the engine's job,
// not the snapshot's.
type Snapshot struct {
	ID         kernel.UUID
	StatusCode int
	CreatedAt  time.Time

	AcceptedAt *time.Time
	RejectedAt *time.Time
	ClosedAt   *time.Time
}

// StatusTimestamp returns the timestamp paired with the given status, or nil:
// accepted_at for Accepted, rejected_at for Rejected, closed_at for Closed.
func (s Snapshot) StatusTimestamp(status Status) *time.Time {
	switch status {
	case Accepted:
		return s.AcceptedAt
	case Rejected:
		return s.RejectedAt
	case Closed:
		return s.ClosedAt
	default:
		return nil
	}
}
