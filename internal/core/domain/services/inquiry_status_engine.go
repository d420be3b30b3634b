package services

import (
	"fmt"
	"time"

	"manufacturing/internal/core/domain/model/inquiry"
)

// InquiryStatusEngine resolves an inquiry's status from its stored integer
// code. Timestamps never decide the status; they only annotate factors and
// feed snapshot validation.
//
// Out-of-range codes are an error condition the engine must survive: it
// degrades to New and surfaces the invalid value through a factor so calling
// code can log or alert without failing the request. This is deliberately
// different from label lookup, which maps unknown codes to "unknown".
type InquiryStatusEngine struct {
	now func() time.Time
}

// NewInquiryStatusEngine creates an engine using the wall clock.
func NewInquiryStatusEngine() InquiryStatusEngine {
	return InquiryStatusEngine{now: time.Now}
}

// NewInquiryStatusEngineWithClock creates an engine with an injected clock.
func NewInquiryStatusEngineWithClock(now func() time.Time) InquiryStatusEngine {
	return InquiryStatusEngine{now: now}
}

// ComputeStatus resolves the snapshot's status code. Total: never fails, even
// for codes outside [0,4].
func (e InquiryStatusEngine) ComputeStatus(snap inquiry.Snapshot) InquiryComputation {
	now := e.now()

	status := inquiry.Status(snap.StatusCode)
	factors := make([]string, 0, 2)

	if status.Validate() != nil {
		factors = append(factors,
			fmt.Sprintf("status code %d is out of range, falling back to new", snap.StatusCode))
		status = inquiry.New
	} else {
		factors = append(factors, fmt.Sprintf("status code is %d (%s)", snap.StatusCode, status))
	}

	if at := snap.StatusTimestamp(status); at != nil {
		factors = append(factors, fmt.Sprintf("%s_at is set", status))
	}

	return InquiryComputation{
		Status:          status,
		ComputedAt:      now,
		Factors:         factors,
		IsTerminal:      inquiry.IsTerminal(status),
		CanTransitionTo: inquiry.NextStatuses(status),
	}
}

// ValidateSnapshot checks field presence, code range, timestamp ordering, and
// the status/timestamp pairing rules. Returns human-readable problems; empty
// means well-formed.
func (e InquiryStatusEngine) ValidateSnapshot(snap inquiry.Snapshot) []string {
	problems := make([]string, 0)

	if err := snap.ID.Validate(); err != nil {
		problems = append(problems, "id is required")
	}
	if snap.CreatedAt.IsZero() {
		problems = append(problems, "created_at is required")
	}

	status := inquiry.Status(snap.StatusCode)
	if status.Validate() != nil {
		problems = append(problems, fmt.Sprintf("status code %d is out of range [0,4]", snap.StatusCode))
	}

	stamps := []struct {
		name string
		at   *time.Time
	}{
		{"accepted_at", snap.AcceptedAt},
		{"rejected_at", snap.RejectedAt},
		{"closed_at", snap.ClosedAt},
	}
	for _, stamp := range stamps {
		if stamp.at != nil && !snap.CreatedAt.IsZero() && stamp.at.Before(snap.CreatedAt) {
			problems = append(problems, fmt.Sprintf("%s must not precede created_at", stamp.name))
		}
	}

	switch status {
	case inquiry.Accepted:
		if snap.AcceptedAt == nil {
			problems = append(problems, "accepted status requires accepted_at")
		}
	case inquiry.Rejected:
		if snap.RejectedAt == nil {
			problems = append(problems, "rejected status requires rejected_at")
		}
	case inquiry.Closed:
		if snap.ClosedAt == nil {
			problems = append(problems, "closed status requires closed_at")
		}
	}

	if snap.AcceptedAt != nil && snap.RejectedAt != nil {
		problems = append(problems, "inquiry cannot be both accepted and rejected")
	}

	return problems
}

// CanTransition layers business rules on top of the raw transition table:
// an inquiry cannot be closed straight from new (it must be accepted or
// rejected first), and a decision that contradicts an already-recorded
// accepted_at/rejected_at timestamp is blocked.
func (e InquiryStatusEngine) CanTransition(
	current, target inquiry.Status, snap inquiry.Snapshot,
) TransitionDecision {
	if !inquiry.IsValidTransition(current, target) {
		return TransitionDecision{
			CanTransition: false,
			Reason:        fmt.Sprintf("transition from %s to %s is not allowed", current, target),
		}
	}

	if current == inquiry.New && target == inquiry.Closed {
		return TransitionDecision{
			CanTransition: false,
			Reason:        "inquiry must be accepted or rejected before it can be closed",
		}
	}

	if target == inquiry.Accepted && snap.RejectedAt != nil {
		return TransitionDecision{
			CanTransition: false,
			Reason:        "inquiry was already rejected and cannot be accepted",
		}
	}

	if target == inquiry.Rejected && snap.AcceptedAt != nil {
		return TransitionDecision{
			CanTransition: false,
			Reason:        "inquiry was already accepted and cannot be rejected",
		}
	}

	return TransitionDecision{CanTransition: true}
}
