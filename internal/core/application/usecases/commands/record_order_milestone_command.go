package commands

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/pkg/guard"
)

var ErrRecordOrderMilestoneCommandIsNotConstructed = errors.New(
	"RecordOrderMilestoneCommand must be created via NewRecordOrderMilestoneCommand constructor",
)

// RecordOrderMilestoneCommand represents a request to stamp a lifecycle
// timestamp on an order. Status is never written directly: stamping the
// milestone is what moves the derived status, and the stamp is only accepted
// after the transition validator approves it.
//
// Force downgrades an illegal transition from an error to a warning, letting
// operators repair data. The ledger record carries who forced it and why.
type RecordOrderMilestoneCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	milestone order.Milestone
	at        time.Time
	force     bool
	changedBy string
	reason    string

	guard guard.ConstructorGuard
}

// NewRecordOrderMilestoneCommand creates a command to record a milestone.
// A zero at means "now"; changedBy and reason are optional audit fields.
func NewRecordOrderMilestoneCommand(
	orderID kernel.UUID,
	milestone order.Milestone,
	at time.Time,
	force bool,
	changedBy, reason string,
) (RecordOrderMilestoneCommand, error) {
	milestoneCommand := RecordOrderMilestoneCommand{
		guard:     guard.NewConstructorGuard(),
		at:        at,
		force:     force,
		changedBy: changedBy,
		reason:    reason,
	}

	if err := errors.Join(
		milestoneCommand.setOrderID(orderID),
		milestoneCommand.setMilestone(milestone),
	); err != nil {
		return RecordOrderMilestoneCommand{}, err
	}

	return milestoneCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordOrderMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrRecordOrderMilestoneCommandIsNotConstructed)
}

// OrderID returns the order the milestone belongs to.
func (c RecordOrderMilestoneCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Milestone returns the milestone being recorded.
func (c RecordOrderMilestoneCommand) Milestone() order.Milestone {
	return c.milestone
}

// At returns the instant the milestone occurred; zero means "now".
func (c RecordOrderMilestoneCommand) At() time.Time {
	return c.at
}

// Force reports whether an illegal transition should be downgraded to a
// warning instead of rejected.
func (c RecordOrderMilestoneCommand) Force() bool {
	return c.force
}

// ChangedBy returns who requested the change.
func (c RecordOrderMilestoneCommand) ChangedBy() string {
	return c.changedBy
}

// Reason returns the free-form reason for the change.
func (c RecordOrderMilestoneCommand) Reason() string {
	return c.reason
}

func (c *RecordOrderMilestoneCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordOrderMilestoneCommand) setMilestone(milestone order.Milestone) error {
	if err := milestone.Validate(); err != nil {
		return err
	}

	c.milestone = milestone
	return nil
}
