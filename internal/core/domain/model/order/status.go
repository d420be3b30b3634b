package order

// Status represents the lifecycle state of a manufacturing order.
//
// Unlike a conventional state machine, an order's status is never stored as a
// column. It is derived on every read from the order's milestone timestamps by
// the status engine, which checks fields in fixed descending priority. Status
// itself is a value object: it carries the label mapping, the static transition
// table, and the priority order that the engine and validator consult.
//
// Lifecycle:
//
//	requested ──> quoted ──> confirmed ──> production ──> completed ──> shipped ──> delivered
//	                │ ▲                                                                 │
//	                ▼ │                                                                 ▼
//	              expired                 (every non-terminal status) ──────────> canceled
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status: the order exists but carries no
	// quotation or milestone timestamps yet.
	Requested

	// Quoted indicates an active, unexpired quotation (or a quoted_at stamp).
	Quoted

	// Expired indicates the order's active quotation has passed its
	// valid-until instant without confirmation.
	Expired

	// Confirmed indicates the customer accepted a quotation.
	Confirmed

	// Production indicates manufacturing has started, signalled by either the
	// production_started_at timestamp or an assigned production stage.
	Production

	// Completed indicates manufacturing has finished.
	Completed

	// Shipped indicates the order left the facility.
	Shipped

	// Delivered indicates the customer received the order. Delivered is not
	// terminal: a delivered order can still be canceled (returns, disputes).
	Delivered

	// Canceled is the only terminal status. It wins over every other signal:
	// a canceled order is reported canceled even if it also carries a
	// delivered_at timestamp.
	Canceled
)

// getStatusStrings returns the label for every Status value, including Unknown.
// Labels are the lowercase wire format used in API responses and ledger records.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Requested:  "requested",
		Quoted:     "quoted",
		Expired:    "expired",
		Confirmed:  "confirmed",
		Production: "production",
		Completed:  "completed",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Canceled:   "canceled",
	}
}

// getTransitions returns the static transition table: for each status, the set
// of statuses it may legally move to. This table is the single source of truth
// for transition legality; nothing else in the codebase re-derives it.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Requested:  {Quoted, Canceled},
		Quoted:     {Confirmed, Expired, Canceled},
		Expired:    {Quoted, Canceled},
		Confirmed:  {Production, Canceled},
		Production: {Completed, Canceled},
		Completed:  {Shipped, Canceled},
		Shipped:    {Delivered, Canceled},
		Delivered:  {Canceled},
		Canceled:   {},
	}
}

// getStatusPriorities returns the strict total order used when two statuses
// must be compared: higher rank wins. Canceled outranks everything, mirroring
// the engine's field-evaluation order.
func getStatusPriorities() map[Status]int {
	return map[Status]int{
		Unknown:    0,
		Requested:  1,
		Quoted:     2,
		Expired:    3,
		Confirmed:  4,
		Production: 5,
		Completed:  6,
		Shipped:    7,
		Delivered:  8,
		Canceled:   9,
	}
}

// String returns the lowercase label of the status, or "unknown" for any value
// outside the defined set. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString resolves a lowercase label back to its Status value.
// The boolean is false for unrecognized labels and for "unknown" itself.
func StatusFromString(label string) (Status, bool) {
	for status, str := range getStatusStrings() {
		if str == label && status != Unknown {
			return status, true
		}
	}
	return Unknown, false
}

// NextStatuses returns the statuses the given status may legally transition to.
// The returned slice is a copy; callers may mutate it freely.
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

// IsTerminal reports whether the status has no outgoing transitions.
// Only Canceled is terminal; Delivered can still move to Canceled.
func IsTerminal(s Status) bool {
	next, ok := getTransitions()[s]
	return ok && len(next) == 0
}

// Priority returns the rank of the status in the strict total order, with
// Canceled highest. Unknown and out-of-set values rank lowest.
func Priority(s Status) int {
	return getStatusPriorities()[s]
}
