package services

import (
	"time"

	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/order"
)

// OrderComputation is the result of deriving an order's status from a
// snapshot. Factors is the human-auditable trace of which fields drove the
// decision; it is part of the contract and asserted on in tests.
type OrderComputation struct {
	Status          order.Status
	ComputedAt      time.Time
	Factors         []string
	IsTerminal      bool
	CanTransitionTo []order.Status
}

// InquiryComputation is the result of resolving an inquiry's status from its
// stored integer code.
type InquiryComputation struct {
	Status          inquiry.Status
	ComputedAt      time.Time
	Factors         []string
	IsTerminal      bool
	CanTransitionTo []inquiry.Status
}

// ValidationResult aggregates the outcome of a transition or consistency
// check. Errors block; warnings never do. IsValid is false only when at least
// one error was recorded.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// newValidationResult returns a passing result with no findings.
func newValidationResult() ValidationResult {
	return ValidationResult{IsValid: true, Errors: []string{}, Warnings: []string{}}
}

// addError records a blocking finding and flips IsValid.
func (r *ValidationResult) addError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.IsValid = false
}

// addWarning records a non-blocking finding.
func (r *ValidationResult) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Merge folds another result into this one; errors and warnings accumulate and
// validity is the conjunction of both.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.IsValid = r.IsValid && other.IsValid
}

// TransitionContext carries the caller-supplied circumstances of a proposed
// status change. AllowForceTransition is the explicit escape hatch that
// downgrades a table-illegal transition from error to warning; forced changes
// are always audit-logged by the command layer.
type TransitionContext struct {
	AllowForceTransition bool
	ChangedBy            string
	Reason               string
}

// TransitionDecision is the answer to "may this inquiry move there, given its
// snapshot": a boolean plus the business reason when blocked.
type TransitionDecision struct {
	CanTransition bool
	Reason        string
}
