package commands

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The new order row and its opening ledger record land in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The order starts with no
// lifecycle timestamps, so its derived status is requested; the opening
// ledger record documents that.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	snap := order.Snapshot{
		ID:          cmd.OrderID(),
		OrderNumber: cmd.OrderNumber(),
		CreatedAt:   time.Now().UTC(),
	}
	if err := uow.OrderRepository().Add(ctx, snap); err != nil {
		return err
	}

	ledger := services.NewStatusHistoryLedger(uow.StatusChangeStore())
	_, err := ledger.Record(ctx, history.EntityTypeOrder, cmd.OrderID(),
		"", order.Requested.String(), services.RecordOptions{Reason: "order created"})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
