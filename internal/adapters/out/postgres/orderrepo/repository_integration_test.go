package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"relomarket/internal/adapters/out/postgres/orderrepo"
	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/order"
	"relomarket/internal/pkg/errs"

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
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	id := kernel.NewUUID()
	originalOrder, err := order.NewOrder(id, "House Relocation")
	suite.Require().NoError(err)

	price, err := kernel.NewPrice(250000)
	suite.Require().NoError(err)
	suite.Require().NoError(originalOrder.SetApproxPrice(price))

	suite.tracker.On("TrackAggregate", id, originalOrder).Once()

	err = suite.repository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedOrder.ID())
	suite.Equal("House Relocation", retrievedOrder.ServiceType())
	suite.Require().NotNil(retrievedOrder.ApproxPrice())
	suite.Equal(int64(250000), retrievedOrder.ApproxPrice().Amount())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Nil(retrievedOrder.AssignedVendor())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndPrice_Persisted() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	newPrice, err := kernel.NewPrice(300000)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.SetApproxPrice(newPrice))
	suite.Require().NoError(testOrder.MarkBroadcasted())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Broadcasted, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.ApproxPrice())
	suite.Equal(int64(300000), retrievedOrder.ApproxPrice().Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssign_UnassignedOrder_Succeeds() {
	ctx := context.Background()

	testOrder := suite.createQuotedOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	vendorID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignVendor(vendorID))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Assign(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.AssignedVendor())
	suite.Equal(vendorID, *retrievedOrder.AssignedVendor())

	suite.tracker.AssertExpectations(suite.T())
}

// TestAssign_RowAlreadyClaimed_SecondVendorLoses exercises the guarded
// update directly: once one vendor's assignment lands, a stale aggregate
// carrying a different vendor cannot overwrite it.
func (suite *OrderRepositoryIntegrationTestSuite) TestAssign_RowAlreadyClaimed_SecondVendorLoses() {
	ctx := context.Background()

	testOrder := suite.createQuotedOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two handlers load the same pending row.
	firstCopy, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	secondCopy, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	winner := kernel.NewUUID()
	loser := kernel.NewUUID()

	suite.Require().NoError(firstCopy.AssignVendor(winner))
	suite.tracker.On("TrackAggregate", firstCopy.ID(), firstCopy).Once()
	suite.Require().NoError(suite.repository.Assign(ctx, firstCopy))

	suite.Require().NoError(secondCopy.AssignVendor(loser))
	err = suite.repository.Assign(ctx, secondCopy)
	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrAlreadyAssigned)

	// The stored row still belongs to the winner.
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.AssignedVendor())
	suite.Equal(winner, *retrievedOrder.AssignedVendor())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssign_SameVendorTwice_Idempotent() {
	ctx := context.Background()

	testOrder := suite.createQuotedOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	vendorID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignVendor(vendorID))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Assign(ctx, testOrder))
	suite.Require().NoError(suite.repository.Assign(ctx, testOrder))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssign_ConcurrentVendors_ExactlyOneWins() {
	ctx := context.Background()

	testOrder := suite.createQuotedOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	const contenders = 5
	results := make(chan error, contenders)

	for range contenders {
		go func() {
			copyOrder, err := suite.repository.Get(ctx, testOrder.ID())
			if err != nil {
				results <- err
				return
			}
			if err = copyOrder.AssignVendor(kernel.NewUUID()); err != nil {
				results <- err
				return
			}
			results <- suite.repository.Assign(ctx, copyOrder)
		}()
	}

	wins := 0
	for range contenders {
		err := <-results
		if err == nil {
			wins++
		} else {
			suite.ErrorIs(err, order.ErrAlreadyAssigned)
		}
	}
	suite.Equal(1, wins, "exactly one contender should claim the order")
}

// createPendingOrder creates a fresh order without a price quote.
func (suite *OrderRepositoryIntegrationTestSuite) createPendingOrder() *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), "House Relocation")
	suite.Require().NoError(err)
	return testOrder
}

// createQuotedOrder creates an order with a price, ready for assignment.
func (suite *OrderRepositoryIntegrationTestSuite) createQuotedOrder() *order.Order {
	testOrder := suite.createPendingOrder()
	price, err := kernel.NewPrice(250000)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.SetApproxPrice(price))
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
