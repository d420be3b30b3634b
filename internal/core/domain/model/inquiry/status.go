package inquiry

import (
	"manufacturing/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer inquiry.
//
// Unlike orders, the authoritative signal is the stored integer code, not
// timestamp inference. The numeric values are part of the wire contract and
// must stay bit-exact: 0=rejected, 1=new, 2=accepted, 3=in_progress, 4=closed.
type Status int

const (
	Rejected   Status = 0
	New        Status = 1
	Accepted   Status = 2
	InProgress Status = 3
	Closed     Status = 4
)

// getStatusStrings returns the label for every defined Status code.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Rejected:   "rejected",
		New:        "new",
		Accepted:   "accepted",
		InProgress: "in_progress",
		Closed:     "closed",
	}
}

// getTransitions returns the raw transition table. Note that New -> Closed is
// present here: the table encodes structural legality only, and the status
// engine's CanTransition layers the accept-or-reject-first business rule on
// top of it. Rejected and Closed are terminal.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		New:        {Accepted, Rejected, Closed},
		Accepted:   {InProgress, Closed},
		InProgress: {Closed},
		Rejected:   {},
		Closed:     {},
	}
}

// String returns the lowercase label of the status, or "unknown" for any code
// outside [0,4]. Label lookup never fails; this is deliberately different from
// the engine's ComputeStatus, which falls back to New for invalid codes.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the code is within the defined range [0,4].
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsOutOfRangeError("inquiry status", int(s), int(Rejected), int(Closed))
	}
	return nil
}

// StatusFromString resolves a label back to its Status code. The boolean is
// false for unrecognized labels; together with String this round-trips every
// code in [0,4].
func StatusFromString(label string) (Status, bool) {
	for status, str := range getStatusStrings() {
		if str == label {
			return status, true
		}
	}
	return New, false
}

// NextStatuses returns the statuses the given code may structurally move to.
func NextStatuses(s Status) []Status {
	next, ok := getTransitions()[s]
	if !ok {
		return []Status{}
	}
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsValidTransition reports whether from -> to appears in the transition table.
func IsValidTransition(from, to Status) bool {
	for _, next := range getTransitions()[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions:
// true for Rejected and Closed only.
func IsTerminal(s Status) bool {
	next, ok := getTransitions()[s]
	return ok && len(next) == 0
}

// requiredTimestampName returns the snapshot field a status requires, used by
// snapshot validation ("accepted requires accepted_at", and so on).
func requiredTimestampName(s Status) (string, bool) {
	switch s {
	case Accepted:
		return "accepted_at", true
	case Rejected:
		return "rejected_at", true
	case Closed:
		return "closed_at", true
	default:
		return "", false
	}
}
