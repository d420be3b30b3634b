package queries

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/pkg/guard"
)

var ErrGetStatusStatisticsQueryIsNotConstructed = errors.New(
	"GetStatusStatisticsQuery must be created via NewGetStatusStatisticsQuery constructor",
)

// GetStatusStatisticsQuery retrieves per-status counts for an entity type and,
// when a status is named, the mean time entities spent in it.
type GetStatusStatisticsQuery struct {
	entityType history.EntityType
	status     string
	from       *time.Time
	to         *time.Time

	guard guard.ConstructorGuard
}

// NewGetStatusStatisticsQuery creates a statistics query. status may be empty
// to skip the duration computation; from and to bound which ledger records the
// duration samples are drawn from.
func NewGetStatusStatisticsQuery(
	entityType, status string, from, to *time.Time,
) (GetStatusStatisticsQuery, error) {
	if entityType != string(history.EntityTypeOrder) && entityType != string(history.EntityTypeInquiry) {
		return GetStatusStatisticsQuery{}, ErrUnknownEntityType
	}

	return GetStatusStatisticsQuery{
		entityType: history.EntityType(entityType),
		status:     status,
		from:       from,
		to:         to,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusStatisticsQueryIsNotConstructed)
}

// EntityType returns the entity type being queried.
func (q GetStatusStatisticsQuery) EntityType() history.EntityType {
	return q.entityType
}

// Status returns the status whose mean duration is requested, or empty.
func (q GetStatusStatisticsQuery) Status() string {
	return q.status
}

// Window returns the optional time bounds for duration samples.
func (q GetStatusStatisticsQuery) Window() (*time.Time, *time.Time) {
	return q.from, q.to
}

// GetStatusStatisticsQueryResponse is the statistics for one entity type.
// AverageDuration is meaningful only when HasSamples is true.
type GetStatusStatisticsQueryResponse struct {
	EntityType      string
	StatusCounts    map[string]int
	Status          string
	AverageDuration time.Duration
	HasSamples      bool
	GeneratedAt     time.Time
}
