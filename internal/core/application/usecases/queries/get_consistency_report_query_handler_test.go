package queries_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetConsistencyReportQueryHandler_Handle_CleanCollections(t *testing.T) {
	now := time.Now()

	orders := &MockOrderRepository{}
	orders.On("GetAll", mock.Anything).Return([]order.Snapshot{
		{ID: kernel.NewUUID(), OrderNumber: "MO-1", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	inquiries := &MockInquiryRepository{}
	inquiries.On("GetAll", mock.Anything).Return([]inquiry.Snapshot{
		{ID: kernel.NewUUID(), StatusCode: int(inquiry.New), CreatedAt: now.Add(-time.Hour)},
	}, nil)

	handler := queries.NewGetConsistencyReportQueryHandler(orders, inquiries)
	query := queries.NewGetConsistencyReportQuery()

	report, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	assert.True(t, report.IsConsistent)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, 1, report.CheckedOrders)
	assert.Equal(t, 1, report.CheckedInquiries)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestGetConsistencyReportQueryHandler_Handle_MergesFindings(t *testing.T) {
	now := time.Now()
	created := now.Add(-30 * 24 * time.Hour)
	delivered := now.Add(-time.Hour)

	orders := &MockOrderRepository{}
	orders.On("GetAll", mock.Anything).Return([]order.Snapshot{
		// delivered without shipped_at and completed_at, and without confirmed_at
		{ID: kernel.NewUUID(), OrderNumber: "MO-BAD", CreatedAt: created,
			DeliveredAt: &delivered},
	}, nil)

	inquiries := &MockInquiryRepository{}
	inquiries.On("GetAll", mock.Anything).Return([]inquiry.Snapshot{
		// stuck in new for 30 days
		{ID: kernel.NewUUID(), StatusCode: int(inquiry.New), CreatedAt: created},
	}, nil)

	handler := queries.NewGetConsistencyReportQueryHandler(orders, inquiries)
	query := queries.NewGetConsistencyReportQuery()

	report, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	assert.False(t, report.IsConsistent)
	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "completed_at is missing")
	assert.Contains(t, report.Errors[1], "shipped_at is missing")
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "has no confirmed_at")
	assert.Contains(t, report.Warnings[len(report.Warnings)-1], "has been new for")
}

func TestGetConsistencyReportQueryHandler_Handle_InvalidQuery(t *testing.T) {
	handler := queries.NewGetConsistencyReportQueryHandler(
		&MockOrderRepository{}, &MockInquiryRepository{})

	_, err := handler.Handle(t.Context(), queries.GetConsistencyReportQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetConsistencyReportQueryIsNotConstructed)
}
