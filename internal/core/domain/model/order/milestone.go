package order

import (
	"fmt"

	"manufacturing/internal/pkg/errs"
)

// Milestone names a settable lifecycle timestamp on an order. Recording a
// milestone is the only way an order's derived status moves forward: the
// command handler stamps the corresponding field after the transition to the
// milestone's target status has been validated.
type Milestone int

const (
	MilestoneUnknown Milestone = iota
	MilestoneQuoted
	MilestoneConfirmed
	MilestoneProductionStarted
	MilestoneCompleted
	MilestoneShipped
	MilestoneDelivered
	MilestoneCanceled
)

// getMilestoneStrings maps milestones to their snake_case field names, which
// double as the wire format in the milestones API.
func getMilestoneStrings() map[Milestone]string {
	return map[Milestone]string{
		MilestoneQuoted:            "quoted_at",
		MilestoneConfirmed:         "confirmed_at",
		MilestoneProductionStarted: "production_started_at",
		MilestoneCompleted:         "completed_at",
		MilestoneShipped:           "shipped_at",
		MilestoneDelivered:         "delivered_at",
		MilestoneCanceled:          "canceled_at",
	}
}

// getMilestoneTargets maps each milestone to the status it implies once its
// timestamp is set.
func getMilestoneTargets() map[Milestone]Status {
	return map[Milestone]Status{
		MilestoneQuoted:            Quoted,
		MilestoneConfirmed:         Confirmed,
		MilestoneProductionStarted: Production,
		MilestoneCompleted:         Completed,
		MilestoneShipped:           Shipped,
		MilestoneDelivered:         Delivered,
		MilestoneCanceled:          Canceled,
	}
}

// String returns the snake_case field name of the milestone.
func (m Milestone) String() string {
	if str, ok := getMilestoneStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// TargetStatus returns the status the milestone drives the order toward.
func (m Milestone) TargetStatus() Status {
	return getMilestoneTargets()[m]
}

// Validate checks the milestone is one of the defined values.
func (m Milestone) Validate() error {
	if _, ok := getMilestoneStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("milestone",
			fmt.Errorf("%d is not a valid milestone", m))
	}
	return nil
}

// MilestoneFromString resolves a snake_case field name to its Milestone.
func MilestoneFromString(name string) (Milestone, bool) {
	for m, str := range getMilestoneStrings() {
		if str == name {
			return m, true
		}
	}
	return MilestoneUnknown, false
}
