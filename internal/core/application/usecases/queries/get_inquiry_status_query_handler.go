package queries

import (
	"context"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/core/ports"
)

// GetInquiryStatusQueryHandler resolves an inquiry's stored status code to its
// label. An out-of-range code does not fail the query; the engine degrades it
// to new and says so in the factors.
type GetInquiryStatusQueryHandler struct {
	inquiries ports.InquiryRepository
	engine    services.InquiryStatusEngine
}

// NewGetInquiryStatusQueryHandler creates a handler for inquiry status queries.
func NewGetInquiryStatusQueryHandler(inquiries ports.InquiryRepository) GetInquiryStatusQueryHandler {
	return GetInquiryStatusQueryHandler{
		inquiries: inquiries,
		engine:    services.NewInquiryStatusEngine(),
	}
}

// Handle fetches the inquiry snapshot and resolves its status.
func (h GetInquiryStatusQueryHandler) Handle(
	ctx context.Context, query GetInquiryStatusQuery,
) (GetInquiryStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInquiryStatusQueryResponse{}, err
	}

	snap, err := h.inquiries.Get(ctx, query.InquiryID())
	if err != nil {
		return GetInquiryStatusQueryResponse{}, err
	}

	computation := h.engine.ComputeStatus(snap)

	next := make([]string, 0, len(computation.CanTransitionTo))
	for _, status := range computation.CanTransitionTo {
		next = append(next, status.String())
	}

	return GetInquiryStatusQueryResponse{
		InquiryID:       snap.ID,
		Status:          computation.Status.String(),
		StatusCode:      snap.StatusCode,
		ComputedAt:      computation.ComputedAt,
		Factors:         computation.Factors,
		IsTerminal:      computation.IsTerminal,
		CanTransitionTo: next,
		Problems:        h.engine.ValidateSnapshot(snap),
	}, nil
}
