package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"haulage/internal/adapters/out/postgres/dispatchrepo"
	"haulage/internal/adapters/out/postgres/orderrepo"
	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/order"
	"haulage/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	repository   *orderrepo.GormOrderRepository
	dispatchRepo *dispatchrepo.GormDispatchRepository
	tracker      *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&dispatchrepo.DispatchDTO{},
		&dispatchrepo.AttachmentDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, dispatches, dispatch_attachments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.dispatchRepo = dispatchrepo.NewGormDispatchRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_RoundTrips() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder(25)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.True(retrieved.CustomerID().IsEqual(testOrder.CustomerID()))
	suite.Equal("Sand", retrieved.MaterialType())
	suite.True(retrieved.Quantity().IsEqual(testOrder.Quantity()))
	suite.Equal(order.Pending, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleTransition_Persists() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder(25)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Start())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createPendingOrder(25))
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPending_ReturnsOldestFirst() {
	ctx := context.Background()

	first := suite.createPendingOrder(10)
	second := suite.createPendingOrder(20)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	started := suite.createPendingOrder(30)
	suite.Require().NoError(started.Start())
	suite.Require().NoError(suite.repository.Add(ctx, started))

	pending, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID().IsEqual(first.ID()))
	suite.True(pending[1].ID().IsEqual(second.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPending_ExcludesOrdersWithActiveDispatch() {
	ctx := context.Background()

	allocated := suite.createPendingOrder(10)
	waiting := suite.createPendingOrder(20)
	suite.Require().NoError(suite.repository.Add(ctx, allocated))
	suite.Require().NoError(suite.repository.Add(ctx, waiting))

	// The allocated order stays pending but already has an assigned dispatch.
	activeDispatch, err := dispatch.NewDispatch(kernel.NewUUID(), kernel.NewUUID(), allocated.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dispatchRepo.Add(ctx, activeDispatch))

	pending, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].ID().IsEqual(waiting.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPending_CancelledDispatchFreesOrder() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder(10)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	abandoned, err := dispatch.NewDispatch(kernel.NewUUID(), kernel.NewUUID(), testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dispatchRepo.Add(ctx, abandoned))

	previous := abandoned.Status()
	suite.Require().NoError(abandoned.Cancel())
	suite.Require().NoError(suite.dispatchRepo.UpdateFrom(ctx, abandoned, previous))

	// The order goes back into the allocation pool.
	pending, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].ID().IsEqual(testOrder.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) createPendingOrder(quantity float64) *order.Order {
	weight, err := kernel.NewWeight(quantity)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Sand", weight)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
