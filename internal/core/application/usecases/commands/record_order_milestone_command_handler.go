package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/core/ports"
)

// RecordOrderMilestoneCommandHandler handles milestone recording, the write
// path that moves an order's derived status. The milestone stamp and its
// ledger record commit together; the notifier is invoked only after commit,
// and a notify failure is logged rather than undoing the change.
type RecordOrderMilestoneCommandHandler struct {
	uowFactory  OrderUoWFactory
	notifier    ports.StatusNotifier
	logger      *slog.Logger
	orderEngine services.OrderStatusEngine
	validator   services.TransitionValidator
}

// NewRecordOrderMilestoneCommandHandler creates a handler for milestone
// recording. The notifier may be nil when no broker is configured.
func NewRecordOrderMilestoneCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.StatusNotifier, logger *slog.Logger,
) RecordOrderMilestoneCommandHandler {
	orderEngine := services.NewOrderStatusEngine()
	return RecordOrderMilestoneCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		logger:      logger.With("component", "record_order_milestone"),
		orderEngine: orderEngine,
		validator:   services.NewTransitionValidator(orderEngine, services.NewInquiryStatusEngine()),
	}
}

// Handle validates the transition against the prospective snapshot (current
// state plus the new stamp), persists the stamp, and appends the ledger
// record.
func (h *RecordOrderMilestoneCommandHandler) Handle(ctx context.Context, cmd RecordOrderMilestoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	at := cmd.At()
	if at.IsZero() {
		at = time.Now().UTC()
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
	target := cmd.Milestone().TargetStatus()

	tctx := services.TransitionContext{
		AllowForceTransition: cmd.Force(),
		ChangedBy:            cmd.ChangedBy(),
		Reason:               cmd.Reason(),
	}
	// The table check runs against the pre-stamp status; readiness runs
	// against the prospective snapshot that already carries the stamp.
	result := h.validator.DecideOrderTransition(snap, snap.WithMilestone(cmd.Milestone(), at), target, tctx)
	if !result.IsValid {
		return fmt.Errorf("%w: %s", ErrTransitionNotAllowed, strings.Join(result.Errors, "; "))
	}

	if err = orderRepo.SetMilestone(ctx, cmd.OrderID(), cmd.Milestone(), at); err != nil {
		return err
	}

	ledger := services.NewStatusHistoryLedger(uow.StatusChangeStore())
	record, err := ledger.Record(ctx, history.EntityTypeOrder, cmd.OrderID(),
		fromStatus.String(), target.String(), services.RecordOptions{
			ChangedBy: cmd.ChangedBy(),
			Reason:    cmd.Reason(),
			Metadata:  map[string]string{"milestone": cmd.Milestone().String()},
		})
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, record)
	return nil
}

func (h *RecordOrderMilestoneCommandHandler) notify(ctx context.Context, record history.ChangeRecord) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.NotifyStatusChanged(ctx, record); err != nil {
		h.logger.Warn("failed to publish status change",
			"entity_id", record.EntityID.String(),
			"to_status", record.ToStatus,
			"error", err,
		)
	}
}
