package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationCommand(t *testing.T) {
	cmd, err := commands.NewNotificationCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewNotificationCommand(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero commands.NotificationCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrNotificationCommandIsNotConstructed)
}

func TestMarkNotificationReadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewNotificationCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("MarkRead", ctx, cmd.NotificationID(), cmd.RecipientID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewMarkNotificationReadCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMarkNotificationReadCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewNotificationCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("MarkRead", ctx, cmd.NotificationID(), cmd.RecipientID()).
			Return(errs.NewObjectNotFoundError("notification", cmd.NotificationID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewMarkNotificationReadCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestDeleteNotificationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewNotificationCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Delete", ctx, cmd.NotificationID(), cmd.RecipientID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewDeleteNotificationCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteNotificationCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewNotificationCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockNotificationUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewDeleteNotificationCommandHandler(factory).Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
