package services

import (
	"fmt"

	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
)

// TransitionValidator cross-checks a proposed status change against the
// entity's computed current status, the static transition table, and
// contextual business rules. It is advisory: it never persists anything, and
// the caller decides whether to proceed after inspecting Errors and Warnings.
//
// Validation runs in tiers:
//  1. malformed snapshots short-circuit with errors;
//  2. table legality, with the AllowForceTransition escape hatch downgrading
//     an illegal transition to a warning;
//  3. target-specific readiness checks (the field the target status would be
//     derived from must already be on the snapshot);
//  4. soft warnings for unusual but legal sequences.
type TransitionValidator struct {
	orderEngine   OrderStatusEngine
	inquiryEngine InquiryStatusEngine
}

// NewTransitionValidator creates a validator over the two status engines.
func NewTransitionValidator(orderEngine OrderStatusEngine, inquiryEngine InquiryStatusEngine) TransitionValidator {
	return TransitionValidator{orderEngine: orderEngine, inquiryEngine: inquiryEngine}
}

// ValidateOrderTransition checks whether the order described by snap may move
// to target under the given context. This is the advisory entry point: both
// the table check and the readiness check run against the same snapshot.
func (v TransitionValidator) ValidateOrderTransition(
	snap order.Snapshot, target order.Status, tctx TransitionContext,
) ValidationResult {
	return v.DecideOrderTransition(snap, snap, target, tctx)
}

// DecideOrderTransition validates a milestone stamp before it is persisted.
// The table check runs against the pre-stamp snapshot's derived status, while
// snapshot validation and readiness run against the prospective snapshot that
// already carries the stamp. Command handlers use this form; passing the same
// snapshot twice gives the advisory behavior.
func (v TransitionValidator) DecideOrderTransition(
	current, prospective order.Snapshot, target order.Status, tctx TransitionContext,
) ValidationResult {
	result := newValidationResult()

	for _, problem := range v.orderEngine.ValidateSnapshot(prospective) {
		result.addError(problem)
	}
	if !result.IsValid {
		return result
	}

	from := v.orderEngine.ComputeStatus(current).Status

	// from == target is a legal no-op: the milestone driving the target
	// status is already on record, so re-stamping it is idempotent.
	if from != target && !order.IsValidTransition(from, target) {
		msg := fmt.Sprintf("transition from %s to %s is not allowed", from, target)
		if tctx.AllowForceTransition {
			result.addWarning(msg + " (forced)")
		} else {
			result.addError(msg)
		}
	}

	v.checkOrderReadiness(&result, prospective, target)
	v.checkOrderOddities(&result, prospective, target)

	return result
}

// checkOrderReadiness verifies the snapshot already carries the field the
// target status would be derived from. The validator checks readiness, it
// does not mutate: stamping the field is the command layer's job, done before
// asking for validation of the prospective snapshot.
func (v TransitionValidator) checkOrderReadiness(result *ValidationResult, snap order.Snapshot, target order.Status) {
	required := map[order.Status]struct {
		name string
		set  bool
	}{
		order.Confirmed:  {"confirmed_at", snap.ConfirmedAt != nil},
		order.Production: {"production_started_at", snap.ProductionStartedAt != nil || snap.ProductionStageID != nil},
		order.Completed:  {"completed_at", snap.CompletedAt != nil},
		order.Shipped:    {"shipped_at", snap.ShippedAt != nil},
		order.Delivered:  {"delivered_at", snap.DeliveredAt != nil},
		order.Canceled:   {"canceled_at", snap.CanceledAt != nil},
	}

	if req, ok := required[target]; ok && !req.set {
		result.addError(fmt.Sprintf("transition to %s requires %s to be set", target, req.name))
	}

	if target == order.Quoted && snap.QuotedAt == nil && snap.ActiveQuotation() == nil {
		result.addError("transition to quoted requires quoted_at or an active quotation")
	}
}

// checkOrderOddities records soft warnings for sequences that are legal but
// usually indicate sloppy data entry.
func (v TransitionValidator) checkOrderOddities(result *ValidationResult, snap order.Snapshot, target order.Status) {
	if target == order.Confirmed && snap.QuotedAt == nil && len(snap.Quotations) == 0 {
		result.addWarning("order is being confirmed without ever having been quoted")
	}
	if target == order.Canceled && snap.DeliveredAt != nil {
		result.addWarning("canceling an order that was already delivered")
	}
}

// ValidateInquiryTransition checks whether the inquiry described by snap may
// move to target under the given context.
func (v TransitionValidator) ValidateInquiryTransition(
	snap inquiry.Snapshot, target inquiry.Status, tctx TransitionContext,
) ValidationResult {
	result := newValidationResult()

	for _, problem := range v.inquiryEngine.ValidateSnapshot(snap) {
		result.addError(problem)
	}
	if !result.IsValid {
		return result
	}

	current := v.inquiryEngine.ComputeStatus(snap).Status

	if decision := v.inquiryEngine.CanTransition(current, target, snap); !decision.CanTransition {
		if tctx.AllowForceTransition {
			result.addWarning(decision.Reason + " (forced)")
		} else {
			result.addError(decision.Reason)
		}
	}

	if target == inquiry.Closed && snap.AcceptedAt == nil && snap.RejectedAt == nil {
		result.addWarning("closing an inquiry that carries neither accepted_at nor rejected_at")
	}

	return result
}

// OrderTransitionCheck is one item of a bulk order validation request.
type OrderTransitionCheck struct {
	Snapshot order.Snapshot
	Target   order.Status
	Context  TransitionContext
}

// EntityValidation pairs an entity id with its validation outcome.
type EntityValidation struct {
	EntityID   kernel.UUID
	Validation ValidationResult
}

// ValidateBulkTransitions applies ValidateOrderTransition independently to
// each item. Items do not interact; the loop could run in parallel without
// changing results.
func (v TransitionValidator) ValidateBulkTransitions(checks []OrderTransitionCheck) []EntityValidation {
	out := make([]EntityValidation, 0, len(checks))
	for _, check := range checks {
		out = append(out, EntityValidation{
			EntityID:   check.Snapshot.ID,
			Validation: v.ValidateOrderTransition(check.Snapshot, check.Target, check.Context),
		})
	}
	return out
}
