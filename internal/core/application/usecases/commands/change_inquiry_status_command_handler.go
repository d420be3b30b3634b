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

// ChangeInquiryStatusCommandHandler handles inquiry status changes. The code
// update, the decision timestamp, and the ledger record commit together; the
// notifier runs after commit.
type ChangeInquiryStatusCommandHandler struct {
	uowFactory    InquiryUoWFactory
	notifier      ports.StatusNotifier
	logger        *slog.Logger
	inquiryEngine services.InquiryStatusEngine
	validator     services.TransitionValidator
}

// NewChangeInquiryStatusCommandHandler creates a handler for inquiry status
// changes. The notifier may be nil when no broker is configured.
func NewChangeInquiryStatusCommandHandler(
	uowFactory InquiryUoWFactory, notifier ports.StatusNotifier, logger *slog.Logger,
) ChangeInquiryStatusCommandHandler {
	inquiryEngine := services.NewInquiryStatusEngine()
	return ChangeInquiryStatusCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		logger:        logger.With("component", "change_inquiry_status"),
		inquiryEngine: inquiryEngine,
		validator:     services.NewTransitionValidator(services.NewOrderStatusEngine(), inquiryEngine),
	}
}

// Handle validates the transition against the stored snapshot, writes the new
// code (and decision timestamp), and appends the ledger record.
func (h *ChangeInquiryStatusCommandHandler) Handle(ctx context.Context, cmd ChangeInquiryStatusCommand) error {
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

	inquiryRepo := uow.InquiryRepository()
	snap, err := inquiryRepo.Get(ctx, cmd.InquiryID())
	if err != nil {
		return err
	}

	fromStatus := h.inquiryEngine.ComputeStatus(snap).Status

	tctx := services.TransitionContext{
		AllowForceTransition: cmd.Force(),
		ChangedBy:            cmd.ChangedBy(),
		Reason:               cmd.Reason(),
	}
	result := h.validator.ValidateInquiryTransition(snap, cmd.Target(), tctx)
	if !result.IsValid {
		return fmt.Errorf("%w: %s", ErrTransitionNotAllowed, strings.Join(result.Errors, "; "))
	}

	at := time.Now().UTC()
	if err = inquiryRepo.SetStatus(ctx, cmd.InquiryID(), cmd.Target(), at); err != nil {
		return err
	}

	ledger := services.NewStatusHistoryLedger(uow.StatusChangeStore())
	record, err := ledger.Record(ctx, history.EntityTypeInquiry, cmd.InquiryID(),
		fromStatus.String(), cmd.Target().String(), services.RecordOptions{
			ChangedBy: cmd.ChangedBy(),
			Reason:    cmd.Reason(),
		})
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.notifier != nil {
		if err = h.notifier.NotifyStatusChanged(ctx, record); err != nil {
			h.logger.Warn("failed to publish status change",
				"entity_id", record.EntityID.String(),
				"to_status", record.ToStatus,
				"error", err,
			)
		}
	}
	return nil
}
