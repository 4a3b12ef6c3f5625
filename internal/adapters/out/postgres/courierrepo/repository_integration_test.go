package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"smartdelivery/internal/adapters/out/postgres/courierrepo"
	"smartdelivery/internal/core/domain/model/courier"
	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"

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

// CourierRepositoryIntegrationTestSuite provides integration tests for CourierRepository
// using PostgreSQL containers to verify database persistence behavior.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) createTestCourier(email string) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), "Test Courier", email, nil)
	suite.Require().NoError(err)
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ValidCourier_Success() {
	ctx := context.Background()
	testCourier := suite.createTestCourier("alice@couriers.example")

	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Once()

	err := suite.repository.Add(ctx, testCourier)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(testCourier.ID(), restored.ID())
	suite.Equal("alice@couriers.example", restored.Email())
	suite.Nil(restored.Manager())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsAlreadyExists() {
	ctx := context.Background()
	first := suite.createTestCourier("bob@couriers.example")
	second := suite.createTestCourier("bob@couriers.example")

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_WithManager_RoundTrip() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	manager := suite.createTestCourier("carol@couriers.example")
	suite.Require().NoError(suite.repository.Add(ctx, manager))

	managerID := manager.ID()
	report, err := courier.NewCourier(kernel.NewUUID(), "Dave", "dave@couriers.example", &managerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, report))

	restored, err := suite.repository.Get(ctx, report.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(restored.Manager())
	suite.Equal(managerID, *restored.Manager())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_PositionRoundTrip() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testCourier := suite.createTestCourier("erin@couriers.example")
	suite.Require().NoError(suite.repository.Add(ctx, testCourier))

	suite.Require().NoError(testCourier.ReportPosition(52.52, 13.405))
	suite.Require().NoError(suite.repository.Update(ctx, testCourier))

	restored, err := suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	lat, lng := restored.LastPosition()
	suite.Require().NotNil(lat)
	suite.Require().NotNil(lng)
	suite.InDelta(52.52, *lat, 1e-9)
	suite.InDelta(13.405, *lng, 1e-9)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()
	testCourier := suite.createTestCourier("frank@couriers.example")

	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testCourier))

	exists, err := suite.repository.Exists(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
