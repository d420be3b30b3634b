package queries

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrGetInquiryStatusQueryIsNotConstructed = errors.New(
	"GetInquiryStatusQuery must be created via NewGetInquiryStatusQuery constructor",
)

// GetInquiryStatusQuery retrieves the resolved status of one inquiry.
type GetInquiryStatusQuery struct {
	inquiryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInquiryStatusQuery creates a query for one inquiry's status.
func NewGetInquiryStatusQuery(inquiryID kernel.UUID) (GetInquiryStatusQuery, error) {
	if err := inquiryID.Validate(); err != nil {
		return GetInquiryStatusQuery{}, err
	}

	return GetInquiryStatusQuery{
		inquiryID: inquiryID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInquiryStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetInquiryStatusQueryIsNotConstructed)
}

// InquiryID returns the inquiry being queried.
func (q GetInquiryStatusQuery) InquiryID() kernel.UUID {
	return q.inquiryID
}

// GetInquiryStatusQueryResponse is the resolved status of one inquiry.
type GetInquiryStatusQueryResponse struct {
	InquiryID       kernel.UUID
	Status          string
	StatusCode      int
	ComputedAt      time.Time
	Factors         []string
	IsTerminal      bool
	CanTransitionTo []string
	Problems        []string
}
