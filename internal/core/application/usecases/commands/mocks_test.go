package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

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

type MockInquiryRepository struct{ mock.Mock }

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
	return args.Get(0).([]inquiry.Snapshot), args.Error(1)
}

func (m *MockInquiryRepository) SetStatus(
	ctx context.Context, id kernel.UUID, status inquiry.Status, at time.Time,
) error {
	args := m.Called(ctx, id, status, at)
	return args.Error(0)
}

type MockStatusChangeStore struct{ mock.Mock }

func (m *MockStatusChangeStore) Append(ctx context.Context, record history.ChangeRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStatusChangeStore) ListByEntity(
	ctx context.Context, entityType history.EntityType, entityID kernel.UUID,
) ([]history.ChangeRecord, error) {
	args := m.Called(ctx, entityType, entityID)
	return args.Get(0).([]history.ChangeRecord), args.Error(1)
}

func (m *MockStatusChangeStore) ListByEntityType(
	ctx context.Context, entityType history.EntityType,
) ([]history.ChangeRecord, error) {
	args := m.Called(ctx, entityType)
	return args.Get(0).([]history.ChangeRecord), args.Error(1)
}

func (m *MockStatusChangeStore) Query(
	ctx context.Context, filter history.Filter,
) ([]history.ChangeRecord, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]history.ChangeRecord), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) StatusChangeStore() ports.StatusChangeStore {
	args := m.Called()
	return args.Get(0).(ports.StatusChangeStore)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockInquiryUoW struct{ mock.Mock }

func (m *MockInquiryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInquiryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInquiryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInquiryUoW) InquiryRepository() ports.InquiryRepository {
	args := m.Called()
	return args.Get(0).(ports.InquiryRepository)
}

func (m *MockInquiryUoW) StatusChangeStore() ports.StatusChangeStore {
	args := m.Called()
	return args.Get(0).(ports.StatusChangeStore)
}

type MockInquiryUoWFactory struct{ mock.Mock }

func (m *MockInquiryUoWFactory) Create() commands.InquiryUoW {
	args := m.Called()
	return args.Get(0).(commands.InquiryUoW)
}

type MockStatusNotifier struct{ mock.Mock }

func (m *MockStatusNotifier) NotifyStatusChanged(ctx context.Context, record history.ChangeRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
