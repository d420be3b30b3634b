package queries

import (
	"context"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/core/ports"
)

// GetStatusTimelineQueryHandler builds per-entity timelines from the ledger.
type GetStatusTimelineQueryHandler struct {
	ledger services.StatusHistoryLedger
}

// NewGetStatusTimelineQueryHandler creates a handler for timeline queries.
func NewGetStatusTimelineQueryHandler(store ports.StatusChangeStore) GetStatusTimelineQueryHandler {
	return GetStatusTimelineQueryHandler{
		ledger: services.NewStatusHistoryLedger(store),
	}
}

// Handle returns the entity's timeline, oldest first. An entity with no
// history yields an empty timeline, not an error.
func (h GetStatusTimelineQueryHandler) Handle(
	ctx context.Context, query GetStatusTimelineQuery,
) ([]TimelineEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.ledger.Timeline(ctx, query.EntityType(), query.EntityID())
	if err != nil {
		return nil, err
	}

	responses := make([]TimelineEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, TimelineEntryResponse{
			StatusChangeResponse: statusChangeFromRecord(entry.ChangeRecord),
			Duration:             entry.Duration,
			IsActive:             entry.IsActive,
		})
	}
	return responses, nil
}
