package queries

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/core/ports"
)

// GetStatusStatisticsQueryHandler aggregates current statuses across a whole
// collection and mean time-in-status from the ledger. Counts are computed by
// running the engines over every snapshot since no status column exists to
// group by.
type GetStatusStatisticsQueryHandler struct {
	orders        ports.OrderRepository
	inquiries     ports.InquiryRepository
	ledger        services.StatusHistoryLedger
	orderEngine   services.OrderStatusEngine
	inquiryEngine services.InquiryStatusEngine
}

// NewGetStatusStatisticsQueryHandler creates a handler for statistics queries.
func NewGetStatusStatisticsQueryHandler(
	orders ports.OrderRepository,
	inquiries ports.InquiryRepository,
	store ports.StatusChangeStore,
) GetStatusStatisticsQueryHandler {
	return GetStatusStatisticsQueryHandler{
		orders:        orders,
		inquiries:     inquiries,
		ledger:        services.NewStatusHistoryLedger(store),
		orderEngine:   services.NewOrderStatusEngine(),
		inquiryEngine: services.NewInquiryStatusEngine(),
	}
}

// Handle returns per-status counts for the entity type and, when the query
// names a status, the mean time entities spent in it.
func (h GetStatusStatisticsQueryHandler) Handle(
	ctx context.Context, query GetStatusStatisticsQuery,
) (GetStatusStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatusStatisticsQueryResponse{}, err
	}

	counts, err := h.countStatuses(ctx, query.EntityType())
	if err != nil {
		return GetStatusStatisticsQueryResponse{}, err
	}

	response := GetStatusStatisticsQueryResponse{
		EntityType:   string(query.EntityType()),
		StatusCounts: counts,
		Status:       query.Status(),
		GeneratedAt:  time.Now().UTC(),
	}

	if query.Status() != "" {
		from, to := query.Window()
		avg, ok, err := h.ledger.AverageDuration(ctx, query.EntityType(), query.Status(), from, to)
		if err != nil {
			return GetStatusStatisticsQueryResponse{}, err
		}
		response.AverageDuration = avg
		response.HasSamples = ok
	}

	return response, nil
}

func (h GetStatusStatisticsQueryHandler) countStatuses(
	ctx context.Context, entityType history.EntityType,
) (map[string]int, error) {
	counts := make(map[string]int)

	if entityType == history.EntityTypeOrder {
		snapshots, err := h.orders.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, snap := range snapshots {
			counts[h.orderEngine.ComputeStatus(snap).Status.String()]++
		}
		return counts, nil
	}

	snapshots, err := h.inquiries.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, snap := range snapshots {
		counts[h.inquiryEngine.ComputeStatus(snap).Status.String()]++
	}
	return counts, nil
}
