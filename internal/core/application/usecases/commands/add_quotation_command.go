package commands

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrAddQuotationCommandIsNotConstructed = errors.New(
		"AddQuotationCommand must be created via NewAddQuotationCommand constructor",
	)
	ErrValidUntilIsRequired = errors.New("valid until is required")
)

// AddQuotationCommand represents a request to attach a quotation to an order.
// The new quotation becomes the active one; any previously active quotation is
// deactivated, and quoted_at is stamped so the derived status moves to quoted.
type AddQuotationCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	quotationID kernel.UUID
	validUntil  time.Time

	guard guard.ConstructorGuard
}

// NewAddQuotationCommand creates a command to attach a quotation to an order.
func NewAddQuotationCommand(
	orderID, quotationID kernel.UUID, validUntil time.Time,
) (AddQuotationCommand, error) {
	quotationCommand := AddQuotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quotationCommand.setOrderID(orderID),
		quotationCommand.setQuotationID(quotationID),
		quotationCommand.setValidUntil(validUntil),
	); err != nil {
		return AddQuotationCommand{}, err
	}

	return quotationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddQuotationCommand) Validate() error {
	return c.guard.Validate(ErrAddQuotationCommandIsNotConstructed)
}

// OrderID returns the order the quotation is attached to.
func (c AddQuotationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// QuotationID returns the identifier of the new quotation.
func (c AddQuotationCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

// ValidUntil returns the instant the quotation expires. An order whose active
// quotation is strictly past this instant derives as expired.
func (c AddQuotationCommand) ValidUntil() time.Time {
	return c.validUntil
}

func (c *AddQuotationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddQuotationCommand) setQuotationID(quotationID kernel.UUID) error {
	if err := quotationID.Validate(); err != nil {
		return err
	}

	c.quotationID = quotationID
	return nil
}

func (c *AddQuotationCommand) setValidUntil(validUntil time.Time) error {
	if validUntil.IsZero() {
		return ErrValidUntilIsRequired
	}

	c.validUntil = validUntil
	return nil
}
