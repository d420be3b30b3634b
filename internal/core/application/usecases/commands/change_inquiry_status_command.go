package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrChangeInquiryStatusCommandIsNotConstructed = errors.New(
	"ChangeInquiryStatusCommand must be created via NewChangeInquiryStatusCommand constructor",
)

// ChangeInquiryStatusCommand represents a request to move an inquiry to a new
// stored status. Unlike orders, the status code is written directly; the
// transition validator guards the move and decision statuses get their
// timestamp stamped alongside the code.
type ChangeInquiryStatusCommand struct { //nolint:recvcheck //using for validation
	inquiryID kernel.UUID
	target    inquiry.Status
	force     bool
	changedBy string
	reason    string

	guard guard.ConstructorGuard
}

// NewChangeInquiryStatusCommand creates a command to change an inquiry's
// status. changedBy and reason are optional audit fields.
func NewChangeInquiryStatusCommand(
	inquiryID kernel.UUID, target inquiry.Status, force bool, changedBy, reason string,
) (ChangeInquiryStatusCommand, error) {
	statusCommand := ChangeInquiryStatusCommand{
		guard:     guard.NewConstructorGuard(),
		force:     force,
		changedBy: changedBy,
		reason:    reason,
	}

	if err := errors.Join(
		statusCommand.setInquiryID(inquiryID),
		statusCommand.setTarget(target),
	); err != nil {
		return ChangeInquiryStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeInquiryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeInquiryStatusCommandIsNotConstructed)
}

// InquiryID returns the inquiry being changed.
func (c ChangeInquiryStatusCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

// Target returns the requested status.
func (c ChangeInquiryStatusCommand) Target() inquiry.Status {
	return c.target
}

// Force reports whether a blocked transition should be downgraded to a
// warning instead of rejected.
func (c ChangeInquiryStatusCommand) Force() bool {
	return c.force
}

// ChangedBy returns who requested the change.
func (c ChangeInquiryStatusCommand) ChangedBy() string {
	return c.changedBy
}

// Reason returns the free-form reason for the change.
func (c ChangeInquiryStatusCommand) Reason() string {
	return c.reason
}

func (c *ChangeInquiryStatusCommand) setInquiryID(inquiryID kernel.UUID) error {
	if err := inquiryID.Validate(); err != nil {
		return err
	}

	c.inquiryID = inquiryID
	return nil
}

func (c *ChangeInquiryStatusCommand) setTarget(target inquiry.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
