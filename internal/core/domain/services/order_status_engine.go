package services

import (
	"fmt"
	"time"

	"manufacturing/internal/core/domain/model/order"
)

// OrderStatusEngine derives an order's lifecycle status from a snapshot of its
// milestone timestamps and quotation records. The engine is pure: it performs
// no I/O, holds no state between calls, and is safe for concurrent use.
//
// Status is decided by an explicit ordered rule list evaluated top to bottom,
// first match wins. Later rules are unreachable once an earlier one fires:
// a canceled order is reported canceled even if it also carries delivered_at.
//
// Example:
//
//	engine := services.NewOrderStatusEngine()
//	result := engine.ComputeStatus(snapshot)
//	fmt.Println(result.Status, result.Factors)
type OrderStatusEngine struct {
	now func() time.Time
}

// NewOrderStatusEngine creates an engine using the wall clock for quotation
// expiry checks.
func NewOrderStatusEngine() OrderStatusEngine {
	return OrderStatusEngine{now: time.Now}
}

// NewOrderStatusEngineWithClock creates an engine with an injected clock.
// Used by tests that pin "now" to exercise the expiry boundary.
func NewOrderStatusEngineWithClock(now func() time.Time) OrderStatusEngine {
	return OrderStatusEngine{now: now}
}

// orderRule is one entry of the priority list: a predicate that may also
// report the factor explaining why it fired, and the status it yields.
type orderRule struct {
	status  order.Status
	applies func(snap order.Snapshot, now time.Time) (bool, string)
}

// milestoneRule builds the common case: "this timestamp is set".
func milestoneRule(status order.Status, name string, field func(order.Snapshot) *time.Time) orderRule {
	return orderRule{
		status: status,
		applies: func(snap order.Snapshot, _ time.Time) (bool, string) {
			if field(snap) != nil {
				return true, name + " is set"
			}
			return false, ""
		},
	}
}

// getOrderRules returns the priority list. Order matters and is the
// specification of the engine: do not reorder entries.
func getOrderRules() []orderRule {
	return []orderRule{
		milestoneRule(order.Canceled, "canceled_at", func(s order.Snapshot) *time.Time { return s.CanceledAt }),
		milestoneRule(order.Delivered, "delivered_at", func(s order.Snapshot) *time.Time { return s.DeliveredAt }),
		milestoneRule(order.Shipped, "shipped_at", func(s order.Snapshot) *time.Time { return s.ShippedAt }),
		milestoneRule(order.Completed, "completed_at", func(s order.Snapshot) *time.Time { return s.CompletedAt }),
		{
			// Either signal alone is sufficient for Production; the factor
			// records which one fired.
			status: order.Production,
			applies: func(snap order.Snapshot, _ time.Time) (bool, string) {
				if snap.ProductionStartedAt != nil {
					return true, "production_started_at is set"
				}
				if snap.ProductionStageID != nil {
					return true, "production_stage_id is set"
				}
				return false, ""
			},
		},
		milestoneRule(order.Confirmed, "confirmed_at", func(s order.Snapshot) *time.Time { return s.ConfirmedAt }),
		{
			// An active quotation whose valid_until is strictly before now.
			// A quotation expiring exactly at this instant is still quoted.
			status: order.Expired,
			applies: func(snap order.Snapshot, now time.Time) (bool, string) {
				q := snap.ActiveQuotation()
				if q != nil && q.ValidUntil.Before(now) {
					return true, fmt.Sprintf("active quotation expired at %s", q.ValidUntil.Format(time.RFC3339))
				}
				return false, ""
			},
		},
		{
			status: order.Quoted,
			applies: func(snap order.Snapshot, _ time.Time) (bool, string) {
				if q := snap.ActiveQuotation(); q != nil {
					return true, fmt.Sprintf("active quotation valid until %s", q.ValidUntil.Format(time.RFC3339))
				}
				return false, ""
			},
		},
		milestoneRule(order.Quoted, "quoted_at", func(s order.Snapshot) *time.Time { return s.QuotedAt }),
	}
}

// ComputeStatus derives the order's current status. It is total: every
// well-typed snapshot yields a status, falling through to Requested when no
// rule fires. The result's Factors trace which field made the decision.
func (e OrderStatusEngine) ComputeStatus(snap order.Snapshot) OrderComputation {
	now := e.now()

	for _, rule := range getOrderRules() {
		if ok, factor := rule.applies(snap, now); ok {
			return e.resultFor(rule.status, factor, now)
		}
	}

	return e.resultFor(order.Requested, "no lifecycle fields set", now)
}

func (e OrderStatusEngine) resultFor(status order.Status, factor string, now time.Time) OrderComputation {
	return OrderComputation{
		Status:          status,
		ComputedAt:      now,
		Factors:         []string{factor},
		IsTerminal:      order.IsTerminal(status),
		CanTransitionTo: order.NextStatuses(status),
	}
}

// ValidateSnapshot checks field presence and date ordering, returning a list
// of human-readable problems. An empty list means the snapshot is well-formed.
// Compute functions never reject input; callers that care run this first.
func (e OrderStatusEngine) ValidateSnapshot(snap order.Snapshot) []string {
	problems := make([]string, 0)

	if err := snap.ID.Validate(); err != nil {
		problems = append(problems, "id is required")
	}
	if snap.OrderNumber == "" {
		problems = append(problems, "order_number is required")
	}
	if snap.CreatedAt.IsZero() {
		problems = append(problems, "created_at is required")
	}

	ordered := [][2]struct {
		name string
		at   *time.Time
	}{
		{{"quoted_at", snap.QuotedAt}, {"confirmed_at", snap.ConfirmedAt}},
		{{"production_started_at", snap.ProductionStartedAt}, {"completed_at", snap.CompletedAt}},
		{{"completed_at", snap.CompletedAt}, {"shipped_at", snap.ShippedAt}},
		{{"shipped_at", snap.ShippedAt}, {"delivered_at", snap.DeliveredAt}},
	}
	for _, pair := range ordered {
		earlier, later := pair[0], pair[1]
		if earlier.at != nil && later.at != nil && later.at.Before(*earlier.at) {
			problems = append(problems, fmt.Sprintf("%s must not precede %s", later.name, earlier.name))
		}
	}

	return problems
}
