package services

import (
	"fmt"
	"time"

	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/order"
)

// Staleness thresholds for inquiry auditing.
const (
	staleNewInquiryAfter        = 7 * 24 * time.Hour
	staleInProgressInquiryAfter = 30 * 24 * time.Hour
)

// ConsistencyChecker audits a batch of snapshots for entities that are stale
// or internally inconsistent. It is a reporting tool: it never mutates and is
// run over whole collections, typically by the scheduled audit job.
//
// Order findings:
//   - warning: computed status is production or later but confirmed_at is missing;
//   - error: delivered order missing completed_at or shipped_at; delivered
//     implies the intermediate milestones must be on record.
//
// Inquiry findings:
//   - warning: new for more than 7 days;
//   - warning: in_progress for more than 30 days.
type ConsistencyChecker struct {
	orderEngine   OrderStatusEngine
	inquiryEngine InquiryStatusEngine
	now           func() time.Time
}

// NewConsistencyChecker creates a checker over the two status engines.
func NewConsistencyChecker(orderEngine OrderStatusEngine, inquiryEngine InquiryStatusEngine) ConsistencyChecker {
	return ConsistencyChecker{orderEngine: orderEngine, inquiryEngine: inquiryEngine, now: time.Now}
}

// NewConsistencyCheckerWithClock creates a checker with an injected clock for
// staleness tests.
func NewConsistencyCheckerWithClock(
	orderEngine OrderStatusEngine, inquiryEngine InquiryStatusEngine, now func() time.Time,
) ConsistencyChecker {
	return ConsistencyChecker{orderEngine: orderEngine, inquiryEngine: inquiryEngine, now: now}
}

// CheckOrders audits order snapshots. IsValid is false only when an error
// (not a warning) was raised.
func (c ConsistencyChecker) CheckOrders(snapshots []order.Snapshot) ValidationResult {
	result := newValidationResult()

	for _, snap := range snapshots {
		status := c.orderEngine.ComputeStatus(snap).Status

		if order.Priority(status) >= order.Priority(order.Production) &&
			status != order.Canceled && snap.ConfirmedAt == nil {
			result.addWarning(fmt.Sprintf(
				"order %s is %s but has no confirmed_at", snap.OrderNumber, status))
		}

		if status == order.Delivered {
			if snap.CompletedAt == nil {
				result.addError(fmt.Sprintf(
					"order %s is delivered but completed_at is missing", snap.OrderNumber))
			}
			if snap.ShippedAt == nil {
				result.addError(fmt.Sprintf(
					"order %s is delivered but shipped_at is missing", snap.OrderNumber))
			}
		}
	}

	return result
}

// CheckInquiries audits inquiry snapshots for staleness.
func (c ConsistencyChecker) CheckInquiries(snapshots []inquiry.Snapshot) ValidationResult {
	result := newValidationResult()
	now := c.now()

	for _, snap := range snapshots {
		status := c.inquiryEngine.ComputeStatus(snap).Status
		age := now.Sub(snap.CreatedAt)

		switch {
		case status == inquiry.New && age > staleNewInquiryAfter:
			result.addWarning(fmt.Sprintf(
				"inquiry %s has been new for %d days", snap.ID, int(age.Hours()/24)))
		case status == inquiry.InProgress && age > staleInProgressInquiryAfter:
			result.addWarning(fmt.Sprintf(
				"inquiry %s has been in_progress for %d days", snap.ID, int(age.Hours()/24)))
		}
	}

	return result
}
