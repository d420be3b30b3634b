package queries

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var (
	ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
		"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
	)
	ErrUnknownEntityType = errors.New("entity type must be order or inquiry")
	ErrLimitIsInvalid    = errors.New("limit must be between 1 and 200")
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// GetStatusHistoryQuery retrieves ledger records matching a filter, newest
// first, paginated.
type GetStatusHistoryQuery struct {
	filter history.Filter

	guard guard.ConstructorGuard
}

// NewGetStatusHistoryQuery creates a history query. entityType may be empty
// to span both entity types; entityID, changedBy, from, and to are optional
// narrowing filters. Page is 1-based; limit 0 selects the default page size.
func NewGetStatusHistoryQuery(
	entityType string,
	entityID *kernel.UUID,
	changedBy string,
	from, to *time.Time,
	page, limit int,
) (GetStatusHistoryQuery, error) {
	if entityType != "" &&
		entityType != string(history.EntityTypeOrder) &&
		entityType != string(history.EntityTypeInquiry) {
		return GetStatusHistoryQuery{}, ErrUnknownEntityType
	}
	if entityID != nil {
		if err := entityID.Validate(); err != nil {
			return GetStatusHistoryQuery{}, err
		}
	}
	if limit < 0 || limit > maxHistoryLimit {
		return GetStatusHistoryQuery{}, ErrLimitIsInvalid
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if page < 1 {
		page = 1
	}

	return GetStatusHistoryQuery{
		filter: history.Filter{
			EntityType: history.EntityType(entityType),
			EntityID:   entityID,
			ChangedBy:  changedBy,
			From:       from,
			To:         to,
			Page:       page,
			Limit:      limit,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

// Filter returns the assembled ledger filter.
func (q GetStatusHistoryQuery) Filter() history.Filter {
	return q.filter
}

// StatusChangeResponse is one ledger record in a query response.
type StatusChangeResponse struct {
	ID         kernel.UUID
	EntityType string
	EntityID   kernel.UUID
	FromStatus string
	ToStatus   string
	ChangedAt  time.Time
	ChangedBy  string
	Reason     string
	Metadata   map[string]string
}

func statusChangeFromRecord(record history.ChangeRecord) StatusChangeResponse {
	return StatusChangeResponse{
		ID:         record.ID,
		EntityType: string(record.EntityType),
		EntityID:   record.EntityID,
		FromStatus: record.FromStatus,
		ToStatus:   record.ToStatus,
		ChangedAt:  record.ChangedAt,
		ChangedBy:  record.ChangedBy,
		Reason:     record.Reason,
		Metadata:   record.Metadata,
	}
}
