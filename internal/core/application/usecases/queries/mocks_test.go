package queries_test

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, snap order.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (order.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Snapshot), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]order.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Snapshot), args.Error(1)
}

func (m *MockOrderRepository) SetMilestone(
	ctx context.Context, id kernel.UUID, milestone order.Milestone, at time.Time,
) error {
	args := m.Called(ctx, id, milestone, at)
	return args.Error(0)
}

func (m *MockOrderRepository) AddQuotation(
	ctx context.Context, id kernel.UUID, q order.QuotationRef, quotedAt time.Time,
) error {
	args := m.Called(ctx, id, q, quotedAt)
	return args.Error(0)
}

type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Add(ctx context.Context, snap inquiry.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockInquiryRepository) Get(ctx context.Context, id kernel.UUID) (inquiry.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(inquiry.Snapshot), args.Error(1)
}

func (m *MockInquiryRepository) GetAll(ctx context.Context) ([]inquiry.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inquiry.Snapshot), args.Error(1)
}

func (m *MockInquiryRepository) SetStatus(
	ctx context.Context, id kernel.UUID, status inquiry.Status, at time.Time,
) error {
	args := m.Called(ctx, id, status, at)
	return args.Error(0)
}
