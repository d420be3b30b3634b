package commands_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddQuotationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	quotationID := kernel.NewUUID()
	validUntil := time.Now().Add(14 * 24 * time.Hour)
	cmd, err := commands.NewAddQuotationCommand(id, quotationID, validUntil)
	require.NoError(t, err)

	snap := order.Snapshot{
		ID:          id,
		OrderNumber: "MO-2025-0042",
		CreatedAt:   time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}

	repo := new(MockOrderRepository)
	store := new(MockStatusChangeStore)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(snap, nil).Once(),
		repo.On("AddQuotation", mock.Anything, id, mock.AnythingOfType("order.QuotationRef"),
			mock.AnythingOfType("time.Time")).Return(nil).Once(),
		uow.On("StatusChangeStore").Return(store).Once(),
		store.On("Append", mock.Anything, mock.AnythingOfType("history.ChangeRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddQuotationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	store.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddQuotationCommandHandler_Handle_ConfirmedOrderCannotBeRequoted(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAddQuotationCommand(id, kernel.NewUUID(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	createdAt := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	confirmedAt := createdAt.Add(48 * time.Hour)
	snap := order.Snapshot{
		ID:          id,
		OrderNumber: "MO-2025-0042",
		CreatedAt:   createdAt,
		ConfirmedAt: &confirmedAt,
	}

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(snap, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddQuotationCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransitionNotAllowed)
	repo.AssertNotCalled(t, "AddQuotation",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNewAddQuotationCommand_ZeroValidUntil(t *testing.T) {
	_, err := commands.NewAddQuotationCommand(kernel.NewUUID(), kernel.NewUUID(), time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrValidUntilIsRequired)
}
