package commands_test

import (
	"context"

	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/domain/model/customer"
	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/exception"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/material"
	"haulage/internal/core/domain/model/operator"
	"haulage/internal/core/domain/model/order"
	"haulage/internal/core/domain/model/truck"
	"haulage/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared repository and unit-of-work mocks for the command handler tests.

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Add(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTruckRepository) Update(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetAll(ctx context.Context) ([]*truck.Truck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetAllIdle(ctx context.Context) ([]*truck.Truck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) Claim(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDispatchRepository struct{ mock.Mock }

func (m *MockDispatchRepository) Add(ctx context.Context, d *dispatch.Dispatch) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDispatchRepository) UpdateFrom(
	ctx context.Context, d *dispatch.Dispatch, expected dispatch.Status,
) error {
	args := m.Called(ctx, d, expected)
	return args.Error(0)
}

func (m *MockDispatchRepository) Update(ctx context.Context, d *dispatch.Dispatch) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDispatchRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.Dispatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.Dispatch), args.Error(1)
}

func (m *MockDispatchRepository) GetAllActive(ctx context.Context) ([]*dispatch.Dispatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dispatch.Dispatch), args.Error(1)
}

func (m *MockDispatchRepository) GetActiveByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*dispatch.Dispatch, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.Dispatch), args.Error(1)
}

type MockMaterialRepository struct{ mock.Mock }

func (m *MockMaterialRepository) Add(ctx context.Context, a *material.Material) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockMaterialRepository) Update(ctx context.Context, a *material.Material) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.Material), args.Error(1)
}

func (m *MockMaterialRepository) GetByName(ctx context.Context, name string) (*material.Material, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.Material), args.Error(1)
}

func (m *MockMaterialRepository) GetAll(ctx context.Context) ([]*material.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*material.Material), args.Error(1)
}

func (m *MockMaterialRepository) DeductStock(
	ctx context.Context, materialID kernel.UUID, net kernel.Weight, movementKey string,
) (ports.StockDeduction, error) {
	args := m.Called(ctx, materialID, net, movementKey)
	return args.Get(0).(ports.StockDeduction), args.Error(1)
}

type MockExceptionRepository struct{ mock.Mock }

func (m *MockExceptionRepository) Add(ctx context.Context, e *exception.Exception) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExceptionRepository) Update(ctx context.Context, e *exception.Exception) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExceptionRepository) Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exception.Exception), args.Error(1)
}

func (m *MockExceptionRepository) GetAllUnresolved(ctx context.Context) ([]*exception.Exception, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*exception.Exception), args.Error(1)
}

func (m *MockExceptionRepository) GetByDispatch(
	ctx context.Context, dispatchID kernel.UUID,
) ([]*exception.Exception, error) {
	args := m.Called(ctx, dispatchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*exception.Exception), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

type MockOperatorRepository struct{ mock.Mock }

func (m *MockOperatorRepository) Add(ctx context.Context, o *operator.Operator) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOperatorRepository) Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operator.Operator), args.Error(1)
}

func (m *MockOperatorRepository) GetAll(ctx context.Context) ([]*operator.Operator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operator.Operator), args.Error(1)
}

// MockUoW satisfies every unit-of-work flavour the handlers use.

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DispatchRepository() ports.DispatchRepository {
	args := m.Called()
	return args.Get(0).(ports.DispatchRepository)
}

func (m *MockUoW) MaterialRepository() ports.MaterialRepository {
	args := m.Called()
	return args.Get(0).(ports.MaterialRepository)
}

func (m *MockUoW) ExceptionRepository() ports.ExceptionRepository {
	args := m.Called()
	return args.Get(0).(ports.ExceptionRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) OperatorRepository() ports.OperatorRepository {
	args := m.Called()
	return args.Get(0).(ports.OperatorRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFleetUoWFactory struct{ mock.Mock }

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}

type MockMaterialUoWFactory struct{ mock.Mock }

func (m *MockMaterialUoWFactory) Create() commands.MaterialUoW {
	args := m.Called()
	return args.Get(0).(commands.MaterialUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockOperatorUoWFactory struct{ mock.Mock }

func (m *MockOperatorUoWFactory) Create() commands.OperatorUoW {
	args := m.Called()
	return args.Get(0).(commands.OperatorUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockExceptionUoWFactory struct{ mock.Mock }

func (m *MockExceptionUoWFactory) Create() commands.ExceptionUoW {
	args := m.Called()
	return args.Get(0).(commands.ExceptionUoW)
}
