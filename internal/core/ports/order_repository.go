// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, the status-change store behind the ledger,
// and the outbound status notifier.
package ports

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for orders. Because status is
// derived, there is no status column to update: writes are the creation of
// the row, milestone stamps, and quotation attachments; reads return snapshots
// for the status engine.
type OrderRepository interface {
	// Add persists a new order. The snapshot must carry id, orderNumber,
	// and createdAt.
	Add(ctx context.Context, snap order.Snapshot) error

	// Get returns the order's current snapshot, including quotations.
	Get(ctx context.Context, id kernel.UUID) (order.Snapshot, error)

	// GetAll returns snapshots for every order, for batch auditing.
	GetAll(ctx context.Context) ([]order.Snapshot, error)

	// SetMilestone stamps the milestone's timestamp on the order row.
	// Milestones are never cleared; recording is one-way.
	SetMilestone(ctx context.Context, id kernel.UUID, m order.Milestone, at time.Time) error

	// AddQuotation attaches a quotation to the order and stamps quoted_at.
	// Any previously active quotation is deactivated first.
	AddQuotation(ctx context.Context, id kernel.UUID, q order.QuotationRef, quotedAt time.Time) error
}
