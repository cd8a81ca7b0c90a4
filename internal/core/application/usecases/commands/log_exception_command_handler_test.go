package commands_test

import (
	"testing"

	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/exception"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogExceptionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	theDispatch := makeDispatchAt(t, dispatch.InTransit)
	exceptionID := kernel.NewUUID()
	cmd, err := commands.NewLogExceptionCommand(
		exceptionID, theDispatch.ID(), exception.Delay, "stuck at the quarry gate", "operator-7")
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	exceptionRepo := new(MockExceptionRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		dispatchRepo.On("Get", ctx, theDispatch.ID()).Return(theDispatch, nil).Once(),
		uow.On("ExceptionRepository").Return(exceptionRepo).Once(),
		exceptionRepo.On("Add", ctx, mock.AnythingOfType("*exception.Exception")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExceptionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLogExceptionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	logged := exceptionRepo.Calls[0].Arguments.Get(1).(*exception.Exception)
	assert.True(t, logged.ID().IsEqual(exceptionID))
	assert.True(t, logged.DispatchID().IsEqual(theDispatch.ID()))
	assert.Equal(t, exception.Delay, logged.Category())
	assert.Equal(t, "stuck at the quarry gate", logged.Description())
	assert.False(t, logged.IsResolved())
	exceptionRepo.AssertExpectations(t)
}

func TestLogExceptionCommandHandler_Handle_TerminalDispatchRejected(t *testing.T) {
	ctx := t.Context()

	theDispatch := makeDispatchAt(t, dispatch.Completed)
	cmd, err := commands.NewLogExceptionCommand(
		kernel.NewUUID(), theDispatch.ID(), exception.Equipment, "hydraulics leak", "operator-7")
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	exceptionRepo := new(MockExceptionRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		dispatchRepo.On("Get", ctx, theDispatch.ID()).Return(theDispatch, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExceptionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLogExceptionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	exceptionRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestLogExceptionCommandHandler_Handle_DispatchNotFound(t *testing.T) {
	ctx := t.Context()

	dispatchID := kernel.NewUUID()
	cmd, err := commands.NewLogExceptionCommand(
		kernel.NewUUID(), dispatchID, exception.Safety, "no hard hat on site", "operator-7")
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		dispatchRepo.On("Get", ctx, dispatchID).
			Return(nil, errs.NewObjectNotFoundError("dispatch", dispatchID.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExceptionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLogExceptionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestLogExceptionCommand_Validation(t *testing.T) {
	dispatchID := kernel.NewUUID()

	t.Run("rejects_unconstructed_command", func(t *testing.T) {
		cmd := commands.LogExceptionCommand{} // not constructed properly

		err := cmd.Validate()

		require.ErrorIs(t, err, commands.ErrLogExceptionCommandIsNotConstructed)
	})

	t.Run("rejects_empty_description", func(t *testing.T) {
		_, err := commands.NewLogExceptionCommand(
			kernel.NewUUID(), dispatchID, exception.General, "", "operator-7")

		require.ErrorIs(t, err, commands.ErrDescriptionIsRequired)
	})

	t.Run("rejects_empty_reporter", func(t *testing.T) {
		_, err := commands.NewLogExceptionCommand(
			kernel.NewUUID(), dispatchID, exception.General, "spilled load", "")

		require.ErrorIs(t, err, commands.ErrLoggedByIsRequired)
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		_, err := commands.NewLogExceptionCommand(
			kernel.NewUUID(), dispatchID, exception.Category(99), "spilled load", "operator-7")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
