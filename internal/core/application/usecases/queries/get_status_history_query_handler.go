package queries

import (
	"context"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/core/ports"
)

// GetStatusHistoryQueryHandler reads the ledger through the shared store.
type GetStatusHistoryQueryHandler struct {
	ledger services.StatusHistoryLedger
}

// NewGetStatusHistoryQueryHandler creates a handler for history queries.
func NewGetStatusHistoryQueryHandler(store ports.StatusChangeStore) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{
		ledger: services.NewStatusHistoryLedger(store),
	}
}

// Handle returns ledger records matching the query's filter, newest first.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context, query GetStatusHistoryQuery,
) ([]StatusChangeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.ledger.Query(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	responses := make([]StatusChangeResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, statusChangeFromRecord(record))
	}
	return responses, nil
}
