package queries

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/core/ports"
)

// GetConsistencyReportQueryHandler runs the consistency checker over the full
// order and inquiry collections. The same audit backs the scheduled job; this
// handler exposes it on demand.
type GetConsistencyReportQueryHandler struct {
	orders    ports.OrderRepository
	inquiries ports.InquiryRepository
	checker   services.ConsistencyChecker
}

// NewGetConsistencyReportQueryHandler creates a handler for consistency
// report queries.
func NewGetConsistencyReportQueryHandler(
	orders ports.OrderRepository, inquiries ports.InquiryRepository,
) GetConsistencyReportQueryHandler {
	return GetConsistencyReportQueryHandler{
		orders:    orders,
		inquiries: inquiries,
		checker: services.NewConsistencyChecker(
			services.NewOrderStatusEngine(), services.NewInquiryStatusEngine()),
	}
}

// Handle audits every order and inquiry and merges the findings into one
// report.
func (h GetConsistencyReportQueryHandler) Handle(
	ctx context.Context, query GetConsistencyReportQuery,
) (GetConsistencyReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetConsistencyReportQueryResponse{}, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return GetConsistencyReportQueryResponse{}, err
	}
	inquiries, err := h.inquiries.GetAll(ctx)
	if err != nil {
		return GetConsistencyReportQueryResponse{}, err
	}

	orderFindings := h.checker.CheckOrders(orders)
	inquiryFindings := h.checker.CheckInquiries(inquiries)

	return GetConsistencyReportQueryResponse{
		IsConsistent:     orderFindings.IsValid && inquiryFindings.IsValid,
		Errors:           append(orderFindings.Errors, inquiryFindings.Errors...),
		Warnings:         append(orderFindings.Warnings, inquiryFindings.Warnings...),
		CheckedOrders:    len(orders),
		CheckedInquiries: len(inquiries),
		GeneratedAt:      time.Now().UTC(),
	}, nil
}
