package truckrepo_test

import (
	"context"
	"testing"
	"time"

	"haulage/internal/adapters/out/postgres/truckrepo"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/truck"
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

// TruckRepositoryIntegrationTestSuite provides integration tests for TruckRepository
// using PostgreSQL containers to verify persistence and claim semantics.
type TruckRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *truckrepo.GormTruckRepository
	tracker    *MockAggregateTracker
}

func (suite *TruckRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&truckrepo.TruckDTO{}))
}

func (suite *TruckRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE trucks").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = truckrepo.NewGormTruckRepository(suite.db, suite.tracker)
}

func (suite *TruckRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TruckRepositoryIntegrationTestSuite) TestAdd_ValidTruck_Success() {
	ctx := context.Background()

	testTruck := suite.createTestTruck("KA-01-1234", 32)
	suite.tracker.On("TrackAggregate", testTruck.ID(), testTruck).Once()

	err := suite.repository.Add(ctx, testTruck)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testTruck.ID())
	suite.Require().NoError(err)
	suite.Equal("KA-01-1234", retrieved.Plate())
	suite.Equal("R. Kumar", retrieved.DriverName())
	suite.True(retrieved.Capacity().IsEqual(testTruck.Capacity()))
	suite.Equal(truck.Idle, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGet_NonExistentTruck_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGetAllIdle_ExcludesClaimedTrucks() {
	ctx := context.Background()

	idleTruck := suite.createTestTruck("KA-01-0001", 20)
	busyTruck := suite.createTestTruck("KA-01-0002", 30)
	suite.Require().NoError(busyTruck.Claim())

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, idleTruck))
	suite.Require().NoError(suite.repository.Add(ctx, busyTruck))

	idle, err := suite.repository.GetAllIdle(ctx)
	suite.Require().NoError(err)
	suite.Len(idle, 1)
	suite.True(idle[0].ID().IsEqual(idleTruck.ID()))
}

func (suite *TruckRepositoryIntegrationTestSuite) TestClaim_IdleTruck_FlipsStatus() {
	ctx := context.Background()

	testTruck := suite.createTestTruck("KA-01-1234", 32)
	suite.tracker.On("TrackAggregate", testTruck.ID(), testTruck).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testTruck))

	suite.Require().NoError(testTruck.Claim())
	err := suite.repository.Claim(ctx, testTruck)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testTruck.ID())
	suite.Require().NoError(err)
	suite.Equal(truck.InTransit, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestClaim_LostRace_ReturnsConflictError() {
	ctx := context.Background()

	testTruck := suite.createTestTruck("KA-01-1234", 32)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTruck))

	// First claimant wins.
	winner, err := suite.repository.Get(ctx, testTruck.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(winner.Claim())
	suite.Require().NoError(suite.repository.Claim(ctx, winner))

	// Second claimant read the same idle snapshot and loses the row race.
	loser, err := truck.RestoreTruck(
		testTruck.ID(), testTruck.Plate(), testTruck.Capacity(), testTruck.DriverName(), truck.Idle)
	suite.Require().NoError(err)
	suite.Require().NoError(loser.Claim())

	err = suite.repository.Claim(ctx, loser)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestClaim_ConcurrentClaimants_ExactlyOneWins() {
	ctx := context.Background()

	testTruck := suite.createTestTruck("KA-01-1234", 32)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTruck))

	const claimants = 5
	results := make(chan error, claimants)

	for range claimants {
		go func() {
			candidate, err := truck.RestoreTruck(
				testTruck.ID(), testTruck.Plate(), testTruck.Capacity(), testTruck.DriverName(), truck.Idle)
			if err != nil {
				results <- err
				return
			}
			if err = candidate.Claim(); err != nil {
				results <- err
				return
			}
			results <- suite.repository.Claim(ctx, candidate)
		}()
	}

	wins, conflicts := 0, 0
	for range claimants {
		err := <-results
		if err == nil {
			wins++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrConflict)
		conflicts++
	}

	suite.Equal(1, wins)
	suite.Equal(claimants-1, conflicts)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestUpdate_ReleasedTruck_PersistsIdleStatus() {
	ctx := context.Background()

	testTruck := suite.createTestTruck("KA-01-1234", 32)
	suite.Require().NoError(testTruck.Claim())
	suite.tracker.On("TrackAggregate", testTruck.ID(), testTruck).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testTruck))

	suite.Require().NoError(testTruck.Release())
	suite.Require().NoError(suite.repository.Update(ctx, testTruck))

	retrieved, err := suite.repository.Get(ctx, testTruck.ID())
	suite.Require().NoError(err)
	suite.Equal(truck.Idle, retrieved.Status())
}

func (suite *TruckRepositoryIntegrationTestSuite) createTestTruck(plate string, capacity float64) *truck.Truck {
	weight, err := kernel.NewWeight(capacity)
	suite.Require().NoError(err)

	testTruck, err := truck.NewTruck(kernel.NewUUID(), plate, weight, "R. Kumar")
	suite.Require().NoError(err)
	return testTruck
}

func TestTruckRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TruckRepositoryIntegrationTestSuite))
}
