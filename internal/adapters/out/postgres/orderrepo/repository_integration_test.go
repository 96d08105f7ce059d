package orderrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
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

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder([]int64{1, 2}, 200)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestProduct(id int64, price float64) *product.Product {
	testProduct, err := product.RestoreProduct(id, "Wireless mouse", "Compact bluetooth mouse", price)
	suite.Require().NoError(err)
	return testProduct
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsDatabaseID() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything)

	firstOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, firstOrder))
	suite.Require().GreaterOrEqual(firstOrder.ID(), int64(1))

	secondOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, secondOrder))
	suite.NotEqual(firstOrder.ID(), secondOrder.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything)

	testOrder := suite.createTestOrder()
	testProduct := suite.createTestProduct(7, 49.99)
	suite.Require().NoError(testOrder.AddProduct(testProduct, 3))
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.Reference(), retrieved.Reference())
	suite.Equal([]int64{7}, retrieved.ProductIDs())
	suite.Equal([]order.Item{{ProductID: 7, Quantity: 3, UnitPrice: 49.99}}, retrieved.Items())
	suite.InDelta(149.97, retrieved.TotalPrice(), 0.0001)
	suite.Equal(order.Pending, retrieved.Status())
	suite.WithinDuration(testOrder.CreatedAt(), retrieved.CreatedAt(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_EmptyItems_RoundTrip() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything)

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Empty(retrieved.Items())
	suite.Equal([]int64{1, 2}, retrieved.ProductIDs())
	suite.InDelta(200, retrieved.TotalPrice(), 0.0001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 424242)

	suite.Require().Error(err)
	suite.Nil(retrieved)
	suite.True(errors.Is(err, errs.ErrObjectNotFound))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsMutation() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything)

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	testProduct := suite.createTestProduct(5, 10)
	suite.Require().NoError(testOrder.AddProduct(testProduct, 2))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal([]int64{5}, retrieved.ProductIDs())
	suite.Equal([]order.Item{{ProductID: 5, Quantity: 2, UnitPrice: 10}}, retrieved.Items())
	suite.InDelta(20, retrieved.TotalPrice(), 0.0001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder() {
	ctx := context.Background()

	missing, err := order.RestoreOrder(
		999, suite.createTestOrder().Reference(), nil, []int64{1}, 100, order.Pending, time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, missing)

	suite.Require().Error(err)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
