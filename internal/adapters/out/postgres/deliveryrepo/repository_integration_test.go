package deliveryrepo_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"trackledger/internal/adapters/out/postgres/deliveryrepo"
	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"

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

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()

	record := suite.newDelivery(2000)
	suite.tracker.On("TrackAggregate", record.ID(), record).Once()

	suite.Require().NoError(suite.repository.Add(ctx, record))

	retrieved, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(record.ID()))
	suite.True(retrieved.Operator().IsEqual(record.Operator()))
	suite.True(retrieved.Supplier().IsEqual(record.Supplier()))
	suite.True(retrieved.Recipient().IsEqual(record.Recipient()))
	suite.Equal(record.StartTime(), retrieved.StartTime())
	suite.Equal(record.ExpectedArrival(), retrieved.ExpectedArrival())
	suite.True(retrieved.PayloadFingerprint().IsEqual(record.PayloadFingerprint()))
	suite.Equal(delivery.Pending, retrieved.Status())
	suite.Equal(uint32(0), retrieved.Sequence())
	suite.False(retrieved.IsCompleted())
	suite.Nil(retrieved.ActualArrival())
	suite.Nil(retrieved.FailureReason())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PersistsTrackingProgress() {
	ctx := context.Background()

	record := suite.newDelivery(2000)
	suite.tracker.On("TrackAggregate", record.ID(), record).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	point, err := kernel.NewGeoPoint("52.52", "13.40", 34)
	suite.Require().NoError(err)

	_, err = record.Track(point, delivery.Delivered, record.Operator(), "dropped off", false, 1800)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, record))

	retrieved, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)

	suite.Equal(delivery.Delivered, retrieved.Status())
	suite.Equal(uint32(1), retrieved.Sequence())
	suite.True(retrieved.IsCompleted())
	suite.Require().NotNil(retrieved.ActualArrival())
	suite.Equal(uint64(1800), *retrieved.ActualArrival())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsError() {
	ctx := context.Background()

	record := suite.newDelivery(2000)
	err := suite.repository.Update(ctx, record)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()

	record := suite.newDelivery(2000)
	suite.tracker.On("TrackAggregate", record.ID(), record).Once()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	exists, err := suite.repository.Exists(ctx, record.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllOverdue_FiltersCompletedAndFuture() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	overdue := suite.newDelivery(500)
	suite.Require().NoError(suite.repository.Add(ctx, overdue))

	notYetDue := suite.newDelivery(5000)
	suite.Require().NoError(suite.repository.Add(ctx, notYetDue))

	completed := suite.newDelivery(500)
	suite.Require().NoError(completed.Fail("gone"))
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	results, err := suite.repository.GetAllOverdue(ctx, 1000)
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.True(results[0].ID().IsEqual(overdue.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetForUpdate_ReadsSameRecord() {
	ctx := context.Background()

	record := suite.newDelivery(2000)
	suite.tracker.On("TrackAggregate", record.ID(), record).Once()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := deliveryrepo.NewGormDeliveryRepository(tx, suite.tracker)
	locked, err := txRepo.GetForUpdate(ctx, record.ID())
	suite.Require().NoError(err)
	suite.True(locked.ID().IsEqual(record.ID()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) newDelivery(expectedArrival uint64) *delivery.Delivery {
	fp, err := kernel.FingerprintFromBytes(bytes.Repeat([]byte{0x5a}, kernel.FingerprintLength))
	suite.Require().NoError(err)

	record, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		expectedArrival, fp, 100)
	suite.Require().NoError(err)
	return record
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
