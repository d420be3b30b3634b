package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrCreateInquiryCommandIsNotConstructed = errors.New(
	"CreateInquiryCommand must be created via NewCreateInquiryCommand constructor",
)

// CreateInquiryCommand represents a request to register a new customer
// inquiry. A fresh inquiry starts in the stored status new.
type CreateInquiryCommand struct { //nolint:recvcheck //using for validation
	inquiryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateInquiryCommand creates a command to register a new inquiry.
func NewCreateInquiryCommand(inquiryID kernel.UUID) (CreateInquiryCommand, error) {
	inquiryCommand := CreateInquiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := inquiryCommand.setInquiryID(inquiryID); err != nil {
		return CreateInquiryCommand{}, err
	}

	return inquiryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInquiryCommand) Validate() error {
	return c.guard.Validate(ErrCreateInquiryCommandIsNotConstructed)
}

// InquiryID returns the unique identifier for the inquiry.
func (c CreateInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

func (c *CreateInquiryCommand) setInquiryID(inquiryID kernel.UUID) error {
	if err := inquiryID.Validate(); err != nil {
		return err
	}

	c.inquiryID = inquiryID
	return nil
}
