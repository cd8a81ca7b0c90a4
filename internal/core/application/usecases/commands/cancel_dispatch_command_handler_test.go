package commands_test

import (
	"testing"

	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/order"
	"haulage/internal/core/domain/model/truck"
	"haulage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelDispatchCommandHandler_Handle_PendingOrderStaysPending(t *testing.T) {
	ctx := t.Context()

	// Journey never started: the order is still pending and goes back to
	// the allocation pool.
	theDispatch := makeDispatchAt(t, dispatch.Assigned)
	theOrder := makePendingOrder(t, 10)
	theTruck := makeTruck(t, 40)
	require.NoError(t, theTruck.Claim())

	cmd, err := commands.NewCancelDispatchCommand(theDispatch.ID())
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	orderRepo := new(MockOrderRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		dispatchRepo.On("Get", ctx, theDispatch.ID()).Return(theDispatch, nil).Once(),
		truckRepo.On("Get", ctx, theDispatch.TruckID()).Return(theTruck, nil).Once(),
		orderRepo.On("Get", ctx, theDispatch.OrderID()).Return(theOrder, nil).Once(),
		dispatchRepo.On("UpdateFrom", ctx, theDispatch, dispatch.Assigned).Return(nil).Once(),
		truckRepo.On("Update", ctx, theTruck).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDispatchCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, dispatch.Cancelled, theDispatch.Status())
	assert.Equal(t, truck.Idle, theTruck.Status())
	assert.Equal(t, order.Pending, theOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestCancelDispatchCommandHandler_Handle_InProgressOrderIsCancelled(t *testing.T) {
	ctx := t.Context()

	theDispatch := makeDispatchAt(t, dispatch.WeighIn)
	theOrder := makePendingOrder(t, 10)
	require.NoError(t, theOrder.Start())
	theTruck := makeTruck(t, 40)
	require.NoError(t, theTruck.Claim())

	cmd, err := commands.NewCancelDispatchCommand(theDispatch.ID())
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	orderRepo := new(MockOrderRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		dispatchRepo.On("Get", ctx, theDispatch.ID()).Return(theDispatch, nil).Once(),
		truckRepo.On("Get", ctx, theDispatch.TruckID()).Return(theTruck, nil).Once(),
		orderRepo.On("Get", ctx, theDispatch.OrderID()).Return(theOrder, nil).Once(),
		dispatchRepo.On("UpdateFrom", ctx, theDispatch, dispatch.WeighIn).Return(nil).Once(),
		truckRepo.On("Update", ctx, theTruck).Return(nil).Once(),
		orderRepo.On("Update", ctx, theOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDispatchCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, dispatch.Cancelled, theDispatch.Status())
	assert.Equal(t, order.Cancelled, theOrder.Status())
	assert.Equal(t, truck.Idle, theTruck.Status())
	// Recorded weighing data survives for audit.
	assert.NotNil(t, theDispatch.GrossWeight())
}

func TestCancelDispatchCommandHandler_Handle_AlreadyTerminal(t *testing.T) {
	ctx := t.Context()

	theDispatch := makeDispatchAt(t, dispatch.Completed)
	cmd, err := commands.NewCancelDispatchCommand(theDispatch.ID())
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	orderRepo := new(MockOrderRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		dispatchRepo.On("Get", ctx, theDispatch.ID()).Return(theDispatch, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDispatchCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, dispatch.Completed, theDispatch.Status())
}

func TestCancelDispatchCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelDispatchCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCancelDispatchCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelDispatchCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
