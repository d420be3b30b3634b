package commands_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInquirySnapshot(id kernel.UUID) inquiry.Snapshot {
	return inquiry.Snapshot{
		ID:         id,
		StatusCode: int(inquiry.New),
		CreatedAt:  time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestChangeInquiryStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeInquiryStatusCommand(id, inquiry.Accepted, false, "sales", "")
	require.NoError(t, err)

	repo := new(MockInquiryRepository)
	store := new(MockStatusChangeStore)
	uow := new(MockInquiryUoW)
	notifier := new(MockStatusNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InquiryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(newInquirySnapshot(id), nil).Once(),
		repo.On("SetStatus", mock.Anything, id, inquiry.Accepted, mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
		uow.On("StatusChangeStore").Return(store).Once(),
		store.On("Append", mock.Anything, mock.AnythingOfType("history.ChangeRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyStatusChanged", mock.Anything, mock.AnythingOfType("history.ChangeRecord")).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInquiryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeInquiryStatusCommandHandler(factory, notifier, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeInquiryStatusCommandHandler_Handle_NewCannotBeClosed(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeInquiryStatusCommand(id, inquiry.Closed, false, "", "")
	require.NoError(t, err)

	repo := new(MockInquiryRepository)
	uow := new(MockInquiryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InquiryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(newInquirySnapshot(id), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInquiryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeInquiryStatusCommandHandler(factory, nil, discardLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransitionNotAllowed)
	assert.Contains(t, err.Error(), "accepted or rejected before it can be closed")
	repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeInquiryStatusCommandHandler_Handle_RejectedCannotBeAccepted(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeInquiryStatusCommand(id, inquiry.Accepted, false, "", "")
	require.NoError(t, err)

	snap := newInquirySnapshot(id)
	snap.StatusCode = int(inquiry.Rejected)
	rejectedAt := snap.CreatedAt.Add(time.Hour)
	snap.RejectedAt = &rejectedAt

	repo := new(MockInquiryRepository)
	uow := new(MockInquiryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InquiryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(snap, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInquiryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeInquiryStatusCommandHandler(factory, nil, discardLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransitionNotAllowed)
}

func TestCreateInquiryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateInquiryCommand(id)
	require.NoError(t, err)

	repo := new(MockInquiryRepository)
	store := new(MockStatusChangeStore)
	uow := new(MockInquiryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InquiryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("inquiry.Snapshot")).Return(nil).Once(),
		uow.On("StatusChangeStore").Return(store).Once(),
		store.On("Append", mock.Anything, mock.AnythingOfType("history.ChangeRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInquiryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInquiryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
