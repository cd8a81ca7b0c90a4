package materialrepo_test

import (
	"context"
	"testing"
	"time"

	"haulage/internal/adapters/out/postgres/materialrepo"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/material"
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

// MaterialRepositoryIntegrationTestSuite provides integration tests for
// MaterialRepository, in particular the exactly-once stock ledger.
type MaterialRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *materialrepo.GormMaterialRepository
	tracker    *MockAggregateTracker
}

func (suite *MaterialRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError turns duplicate ledger keys into gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&materialrepo.MaterialDTO{},
		&materialrepo.StockMovementDTO{},
	))
}

func (suite *MaterialRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE materials, stock_movements").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.repository = materialrepo.NewGormMaterialRepository(suite.db, suite.tracker)
}

func (suite *MaterialRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestAdd_ValidMaterial_RoundTrips() {
	ctx := context.Background()

	testMaterial := suite.createMaterial("Sand", 100)
	suite.Require().NoError(suite.repository.Add(ctx, testMaterial))

	retrieved, err := suite.repository.Get(ctx, testMaterial.ID())
	suite.Require().NoError(err)
	suite.Equal("Sand", retrieved.Name())
	suite.InDelta(100, retrieved.StockQuantity(), 0.001)
	suite.Equal("tonnes", retrieved.Unit())
	suite.False(retrieved.IsLowStock())
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestAdd_DuplicateName_ReturnsConflictError() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createMaterial("Sand", 100)))

	err := suite.repository.Add(ctx, suite.createMaterial("Sand", 50))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestGetByName_MissingMaterial_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByName(ctx, "Bitumen")

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestDeductStock_FirstMovement_Applies() {
	ctx := context.Background()

	testMaterial := suite.createMaterial("Sand", 100)
	suite.Require().NoError(suite.repository.Add(ctx, testMaterial))

	net, err := kernel.NewWeight(20)
	suite.Require().NoError(err)

	deduction, err := suite.repository.DeductStock(ctx, testMaterial.ID(), net, "dispatch-1:complete")
	suite.Require().NoError(err)
	suite.True(deduction.Applied)
	suite.False(deduction.Clamped)

	retrieved, err := suite.repository.Get(ctx, testMaterial.ID())
	suite.Require().NoError(err)
	suite.InDelta(80, retrieved.StockQuantity(), 0.001)
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestDeductStock_ReplayedMovementKey_IsNoOp() {
	ctx := context.Background()

	testMaterial := suite.createMaterial("Sand", 100)
	suite.Require().NoError(suite.repository.Add(ctx, testMaterial))

	net, err := kernel.NewWeight(20)
	suite.Require().NoError(err)

	deduction, err := suite.repository.DeductStock(ctx, testMaterial.ID(), net, "dispatch-1:complete")
	suite.Require().NoError(err)
	suite.True(deduction.Applied)

	// A replay of the same completion must not deduct again.
	deduction, err = suite.repository.DeductStock(ctx, testMaterial.ID(), net, "dispatch-1:complete")
	suite.Require().NoError(err)
	suite.False(deduction.Applied)

	retrieved, err := suite.repository.Get(ctx, testMaterial.ID())
	suite.Require().NoError(err)
	suite.InDelta(80, retrieved.StockQuantity(), 0.001)
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestDeductStock_Underflow_ClampsAtZero() {
	ctx := context.Background()

	testMaterial := suite.createMaterial("Gravel", 5)
	suite.Require().NoError(suite.repository.Add(ctx, testMaterial))

	net, err := kernel.NewWeight(20)
	suite.Require().NoError(err)

	deduction, err := suite.repository.DeductStock(ctx, testMaterial.ID(), net, "dispatch-2:complete")
	suite.Require().NoError(err)
	suite.True(deduction.Applied)
	suite.True(deduction.Clamped)

	retrieved, err := suite.repository.Get(ctx, testMaterial.ID())
	suite.Require().NoError(err)
	suite.InDelta(0, retrieved.StockQuantity(), 0.001)
	suite.True(retrieved.IsLowStock())
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestDeductStock_ExactStock_NotClamped() {
	ctx := context.Background()

	testMaterial := suite.createMaterial("Gravel", 20)
	suite.Require().NoError(suite.repository.Add(ctx, testMaterial))

	net, err := kernel.NewWeight(20)
	suite.Require().NoError(err)

	deduction, err := suite.repository.DeductStock(ctx, testMaterial.ID(), net, "dispatch-3:complete")
	suite.Require().NoError(err)
	suite.True(deduction.Applied)
	suite.False(deduction.Clamped)

	retrieved, err := suite.repository.Get(ctx, testMaterial.ID())
	suite.Require().NoError(err)
	suite.InDelta(0, retrieved.StockQuantity(), 0.001)
}

func (suite *MaterialRepositoryIntegrationTestSuite) TestDeductStock_DistinctDispatches_BothApply() {
	ctx := context.Background()

	testMaterial := suite.createMaterial("Sand", 100)
	suite.Require().NoError(suite.repository.Add(ctx, testMaterial))

	net, err := kernel.NewWeight(20)
	suite.Require().NoError(err)

	deduction, err := suite.repository.DeductStock(ctx, testMaterial.ID(), net, "dispatch-1:complete")
	suite.Require().NoError(err)
	suite.True(deduction.Applied)

	deduction, err = suite.repository.DeductStock(ctx, testMaterial.ID(), net, "dispatch-2:complete")
	suite.Require().NoError(err)
	suite.True(deduction.Applied)

	retrieved, err := suite.repository.Get(ctx, testMaterial.ID())
	suite.Require().NoError(err)
	suite.InDelta(60, retrieved.StockQuantity(), 0.001)
}

func (suite *MaterialRepositoryIntegrationTestSuite) createMaterial(name string, stock float64) *material.Material {
	testMaterial, err := material.NewMaterial(kernel.NewUUID(), name, stock, "tonnes")
	suite.Require().NoError(err)
	return testMaterial
}

func TestMaterialRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MaterialRepositoryIntegrationTestSuite))
}
