package queries

import (
	"context"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/core/ports"
)

// GetOrderStatusQueryHandler computes an order's status on demand. Nothing is
// read from a status column because none exists; the snapshot is fetched and
// the engine derives the answer.
type GetOrderStatusQueryHandler struct {
	orders ports.OrderRepository
	engine services.OrderStatusEngine
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
func NewGetOrderStatusQueryHandler(orders ports.OrderRepository) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{
		orders: orders,
		engine: services.NewOrderStatusEngine(),
	}
}

// Handle fetches the order snapshot and derives its status. Snapshot problems
// (inconsistent dates) do not fail the query; they are reported alongside the
// status so callers can surface them.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context, query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	snap, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	computation := h.engine.ComputeStatus(snap)

	next := make([]string, 0, len(computation.CanTransitionTo))
	for _, status := range computation.CanTransitionTo {
		next = append(next, status.String())
	}

	return GetOrderStatusQueryResponse{
		OrderID:         snap.ID,
		OrderNumber:     snap.OrderNumber,
		Status:          computation.Status.String(),
		ComputedAt:      computation.ComputedAt,
		Factors:         computation.Factors,
		IsTerminal:      computation.IsTerminal,
		CanTransitionTo: next,
		Problems:        h.engine.ValidateSnapshot(snap),
	}, nil
}
