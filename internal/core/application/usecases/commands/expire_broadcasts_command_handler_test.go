package commands_test

import (
	"errors"
	"testing"

	"relomarket/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireBroadcastsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireBroadcastsCommand()

	broadcastRepo := new(MockBroadcastRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BroadcastRepository").Return(broadcastRepo).Once(),
		broadcastRepo.On("ExpireAllPending", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireBroadcastsCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)
	broadcastRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireBroadcastsCommandHandler_Handle_SweepError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireBroadcastsCommand()

	broadcastRepo := new(MockBroadcastRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BroadcastRepository").Return(broadcastRepo).Once(),
		broadcastRepo.On("ExpireAllPending", ctx, mock.AnythingOfType("time.Time")).
			Return(int64(0), errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireBroadcastsCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
}

func TestExpireBroadcastsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.ExpireBroadcastsCommand // not constructed properly

	factory := new(MockSweepUoWFactory)
	handler := commands.NewExpireBroadcastsCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrExpireBroadcastsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
