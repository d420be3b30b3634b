package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/services"
)

// AddQuotationCommandHandler handles attaching a quotation to an order.
// Quoting is only meaningful from requested, expired, or quoted; the
// transition validator enforces that against the order's derived status.
type AddQuotationCommandHandler struct {
	uowFactory  OrderUoWFactory
	orderEngine services.OrderStatusEngine
	validator   services.TransitionValidator
}

// NewAddQuotationCommandHandler creates a handler for quotation attachment.
func NewAddQuotationCommandHandler(uowFactory OrderUoWFactory) AddQuotationCommandHandler {
	orderEngine := services.NewOrderStatusEngine()
	return AddQuotationCommandHandler{
		uowFactory:  uowFactory,
		orderEngine: orderEngine,
		validator:   services.NewTransitionValidator(orderEngine, services.NewInquiryStatusEngine()),
	}
}

// Handle attaches the quotation, stamps quoted_at, and records the status
// change in the ledger, all in one transaction.
func (h *AddQuotationCommandHandler) Handle(ctx context.Context, cmd AddQuotationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	snap, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	fromStatus := h.orderEngine.ComputeStatus(snap).Status
	quotedAt := time.Now().UTC()

	// Validate against the prospective snapshot: new quotation active, old
	// ones deactivated, quoted_at stamped.
	prospective := snap.WithMilestone(order.MilestoneQuoted, quotedAt)
	quotations := make([]order.QuotationRef, 0, len(snap.Quotations)+1)
	for _, q := range snap.Quotations {
		q.IsActive = false
		quotations = append(quotations, q)
	}
	prospective.Quotations = append(quotations, order.QuotationRef{
		ID:         cmd.QuotationID(),
		ValidUntil: cmd.ValidUntil(),
		IsActive:   true,
	})

	result := h.validator.DecideOrderTransition(snap, prospective, order.Quoted, services.TransitionContext{})
	if !result.IsValid {
		return fmt.Errorf("%w: %s", ErrTransitionNotAllowed, strings.Join(result.Errors, "; "))
	}

	quotation := order.QuotationRef{
		ID:         cmd.QuotationID(),
		ValidUntil: cmd.ValidUntil(),
		IsActive:   true,
	}
	if err = orderRepo.AddQuotation(ctx, cmd.OrderID(), quotation, quotedAt); err != nil {
		return err
	}

	ledger := services.NewStatusHistoryLedger(uow.StatusChangeStore())
	_, err = ledger.Record(ctx, history.EntityTypeOrder, cmd.OrderID(),
		fromStatus.String(), order.Quoted.String(), services.RecordOptions{
			Reason:   "quotation attached",
			Metadata: map[string]string{"quotation_id": cmd.QuotationID().String()},
		})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
