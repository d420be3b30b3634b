package queries

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrGetStatusTimelineQueryIsNotConstructed = errors.New(
	"GetStatusTimelineQuery must be created via NewGetStatusTimelineQuery constructor",
)

// GetStatusTimelineQuery retrieves one entity's status history annotated with
// how long each status held.
type GetStatusTimelineQuery struct {
	entityType history.EntityType
	entityID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusTimelineQuery creates a timeline query for one entity.
func NewGetStatusTimelineQuery(entityType string, entityID kernel.UUID) (GetStatusTimelineQuery, error) {
	if entityType != string(history.EntityTypeOrder) && entityType != string(history.EntityTypeInquiry) {
		return GetStatusTimelineQuery{}, ErrUnknownEntityType
	}
	if err := entityID.Validate(); err != nil {
		return GetStatusTimelineQuery{}, err
	}

	return GetStatusTimelineQuery{
		entityType: history.EntityType(entityType),
		entityID:   entityID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusTimelineQueryIsNotConstructed)
}

// EntityType returns the entity type being queried.
func (q GetStatusTimelineQuery) EntityType() history.EntityType {
	return q.entityType
}

// EntityID returns the entity being queried.
func (q GetStatusTimelineQuery) EntityID() kernel.UUID {
	return q.entityID
}

// TimelineEntryResponse is one annotated history record. Duration is how long
// the status held; for the active (most recent) entry it is time held so far.
type TimelineEntryResponse struct {
	StatusChangeResponse
	Duration time.Duration
	IsActive bool
}
