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

func quotedOrderSnapshot(id kernel.UUID) order.Snapshot {
	createdAt := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	quotedAt := createdAt.Add(24 * time.Hour)
	return order.Snapshot{
		ID:          id,
		OrderNumber: "MO-2025-0042",
		CreatedAt:   createdAt,
		QuotedAt:    &quotedAt,
	}
}

func TestRecordOrderMilestoneCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	at := time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRecordOrderMilestoneCommand(
		id, order.MilestoneConfirmed, at, false, "planner", "customer signed off")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	store := new(MockStatusChangeStore)
	uow := new(MockOrderUoW)
	notifier := new(MockStatusNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(quotedOrderSnapshot(id), nil).Once(),
		repo.On("SetMilestone", mock.Anything, id, order.MilestoneConfirmed, at).Return(nil).Once(),
		uow.On("StatusChangeStore").Return(store).Once(),
		store.On("Append", mock.Anything, mock.AnythingOfType("history.ChangeRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyStatusChanged", mock.Anything, mock.AnythingOfType("history.ChangeRecord")).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordOrderMilestoneCommandHandler(factory, notifier, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordOrderMilestoneCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	// Quoted order, asked to jump straight to shipped.
	cmd, err := commands.NewRecordOrderMilestoneCommand(
		id, order.MilestoneShipped, time.Time{}, false, "", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(quotedOrderSnapshot(id), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordOrderMilestoneCommandHandler(factory, nil, discardLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransitionNotAllowed)
	repo.AssertNotCalled(t, "SetMilestone", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRecordOrderMilestoneCommandHandler_Handle_ForceOverridesTable(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	at := time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRecordOrderMilestoneCommand(
		id, order.MilestoneShipped, at, true, "ops", "correcting missed scan")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	store := new(MockStatusChangeStore)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(quotedOrderSnapshot(id), nil).Once(),
		repo.On("SetMilestone", mock.Anything, id, order.MilestoneShipped, at).Return(nil).Once(),
		uow.On("StatusChangeStore").Return(store).Once(),
		store.On("Append", mock.Anything, mock.AnythingOfType("history.ChangeRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordOrderMilestoneCommandHandler(factory, nil, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertExpectations(t)
}

func TestRecordOrderMilestoneCommandHandler_Handle_NotifierFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	at := time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRecordOrderMilestoneCommand(
		id, order.MilestoneConfirmed, at, false, "", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	store := new(MockStatusChangeStore)
	uow := new(MockOrderUoW)
	notifier := new(MockStatusNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(quotedOrderSnapshot(id), nil).Once(),
		repo.On("SetMilestone", mock.Anything, id, order.MilestoneConfirmed, at).Return(nil).Once(),
		uow.On("StatusChangeStore").Return(store).Once(),
		store.On("Append", mock.Anything, mock.AnythingOfType("history.ChangeRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyStatusChanged", mock.Anything, mock.AnythingOfType("history.ChangeRecord")).
			Return(assertableError("broker down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordOrderMilestoneCommandHandler(factory, notifier, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err, "publish failure must not fail the committed change")
	notifier.AssertExpectations(t)
}

type assertableError string

func (e assertableError) Error() string { return string(e) }

func TestNewRecordOrderMilestoneCommand_InvalidMilestone(t *testing.T) {
	_, err := commands.NewRecordOrderMilestoneCommand(
		kernel.NewUUID(), order.Milestone(42), time.Time{}, false, "", "")

	require.Error(t, err)
}
