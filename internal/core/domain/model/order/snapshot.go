package order

import (
	"time"

	"manufacturing/internal/core/domain/model/kernel"
)

// QuotationRef is the slice of a quotation the status engine cares about:
// whether it is the active one, and until when it holds.
type QuotationRef struct {
	ID         kernel.UUID
	ValidUntil time.Time
	IsActive   bool
}

// Snapshot is an immutable, in-memory copy of an order's persisted fields,
// assembled by a repository at read time and handed to the status engine.
//
// Snapshots are plain data by design: the engine is a pure function over them
// and holds no state between calls, so there is no constructor and no guard.
// All timestamp fields except CreatedAt are optional; which of them are set is
// exactly what the engine infers the status from.
type Snapshot struct {
	ID          kernel.UUID
	OrderNumber string
	CreatedAt   time.Time

	QuotedAt            *time.Time
	ConfirmedAt         *time.Time
	ProductionStartedAt *time.Time
	CompletedAt         *time.Time
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
	CanceledAt          *time.Time

	// ProductionStageID references the current production stage. Presence
	// alone matters to the engine; the stage itself lives elsewhere.
	ProductionStageID *kernel.UUID

	Quotations []QuotationRef
}

// ActiveQuotation returns the first quotation marked active, or nil.
func (s Snapshot) ActiveQuotation() *QuotationRef {
	for i := range s.Quotations {
		if s.Quotations[i].IsActive {
			return &s.Quotations[i]
		}
	}
	return nil
}

// MilestoneAt returns the timestamp recorded for the given milestone, or nil
// if it has not been reached.
func (s Snapshot) MilestoneAt(m Milestone) *time.Time {
	switch m {
	case MilestoneQuoted:
		return s.QuotedAt
	case MilestoneConfirmed:
		return s.ConfirmedAt
	case MilestoneProductionStarted:
		return s.ProductionStartedAt
	case MilestoneCompleted:
		return s.CompletedAt
	case MilestoneShipped:
		return s.ShippedAt
	case MilestoneDelivered:
		return s.DeliveredAt
	case MilestoneCanceled:
		return s.CanceledAt
	default:
		return nil
	}
}

// WithMilestone returns a copy of the snapshot with the given milestone
// stamped. The receiver is left untouched; engines only ever see values.
func (s Snapshot) WithMilestone(m Milestone, at time.Time) Snapshot {
	out := s
	switch m {
	case MilestoneQuoted:
		out.QuotedAt = &at
	case MilestoneConfirmed:
		out.ConfirmedAt = &at
	case MilestoneProductionStarted:
		out.ProductionStartedAt = &at
	case MilestoneCompleted:
		out.CompletedAt = &at
	case MilestoneShipped:
		out.ShippedAt = &at
	case MilestoneDelivered:
		out.DeliveredAt = &at
	case MilestoneCanceled:
		out.CanceledAt = &at
	}
	return out
}
