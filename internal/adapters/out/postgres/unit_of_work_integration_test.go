package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "ordertaking/internal/adapters/out/postgres"
	"ordertaking/internal/adapters/out/postgres/eventrepo"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&eventrepo.EventDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE outbox_events").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) makeEvents(orderID string) []order.PlaceOrderEvent {
	id, err := order.NewOrderID(orderID)
	suite.Require().NoError(err)
	customerInfo, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
	})
	suite.Require().NoError(err)
	address, err := order.NewAddress(order.UnvalidatedAddress{
		AddressLine1: "1 Main St",
		City:         "Springfield",
		ZipCode:      "12345",
	})
	suite.Require().NoError(err)
	validated, err := order.NewValidatedOrder(id, customerInfo, address, address, nil)
	suite.Require().NoError(err)
	priced, err := order.NewPricedOrder(validated, nil)
	suite.Require().NoError(err)

	events, err := order.CreateEvents(priced, nil)
	suite.Require().NoError(err)
	return events
}

func (suite *UnitOfWorkIntegrationTestSuite) countEvents() int64 {
	var count int64
	err := suite.db.Model(&eventrepo.EventDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create_ReturnsIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.EventRepository())
	suite.NotNil(uow2.EventRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOutboxWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EventRepository().Add(ctx, suite.makeEvents("order-001")))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(2), suite.countEvents())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOutboxWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EventRepository().Add(ctx, suite.makeEvents("order-001")))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countEvents())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsSafe() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestEventRepository_WithoutTransaction_WritesDirectly() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.EventRepository().Add(ctx, suite.makeEvents("order-002"))
	suite.Require().NoError(err)

	suite.Equal(int64(2), suite.countEvents())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
