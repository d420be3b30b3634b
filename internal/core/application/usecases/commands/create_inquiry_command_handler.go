package commands

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/services"
)

// CreateInquiryCommandHandler handles the business logic for inquiry creation.
type CreateInquiryCommandHandler struct {
	uowFactory InquiryUoWFactory
}

// NewCreateInquiryCommandHandler creates a handler for inquiry creation.
func NewCreateInquiryCommandHandler(uowFactory InquiryUoWFactory) CreateInquiryCommandHandler {
	return CreateInquiryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the inquiry in status new together with its opening ledger
// record.
func (h *CreateInquiryCommandHandler) Handle(ctx context.Context, cmd CreateInquiryCommand) error {
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

	snap := inquiry.Snapshot{
		ID:         cmd.InquiryID(),
		StatusCode: int(inquiry.New),
		CreatedAt:  time.Now().UTC(),
	}
	if err := uow.InquiryRepository().Add(ctx, snap); err != nil {
		return err
	}

	ledger := services.NewStatusHistoryLedger(uow.StatusChangeStore())
	_, err := ledger.Record(ctx, history.EntityTypeInquiry, cmd.InquiryID(),
		"", inquiry.New.String(), services.RecordOptions{Reason: "inquiry created"})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
