package queries

import (
	"errors"
	"time"

	"manufacturing/internal/pkg/guard"
)

var ErrGetConsistencyReportQueryIsNotConstructed = errors.New(
	"GetConsistencyReportQuery must be created via NewGetConsistencyReportQuery constructor",
)

// GetConsistencyReportQuery runs the consistency audit over every order and
// inquiry and returns the findings.
type GetConsistencyReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetConsistencyReportQuery creates a consistency report query.
func NewGetConsistencyReportQuery() GetConsistencyReportQuery {
	return GetConsistencyReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetConsistencyReportQuery) Validate() error {
	return q.guard.Validate(ErrGetConsistencyReportQueryIsNotConstructed)
}

// GetConsistencyReportQueryResponse is the outcome of one audit run. Errors
// are hard inconsistencies; warnings are oddities and staleness findings.
type GetConsistencyReportQueryResponse struct {
	IsConsistent     bool
	Errors           []string
	Warnings         []string
	CheckedOrders    int
	CheckedInquiries int
	GeneratedAt      time.Time
}
