package pgnotify_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"eats/internal/adapters/out/eventbus"
	"eats/internal/adapters/out/eventbus/pgnotify"
	"eats/internal/adapters/out/postgres/pgtest"
	"eats/internal/core/domain/model/event"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type BusIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	dsn       string
}

func (suite *BusIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	container, db, err := pgtest.Start(ctx)
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.dsn, err = container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
}

func (suite *BusIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BusIntegrationTestSuite) dial() *pgnotify.Bus {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bus, err := pgnotify.Dial(ctx, suite.dsn, suite.db, eventbus.NewHub(4, logger), logger)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { _ = bus.Close() })
	return bus
}

func (suite *BusIntegrationTestSuite) receive(sub interface{ Events() <-chan event.Message }) event.Message {
	select {
	case msg, ok := <-sub.Events():
		suite.Require().True(ok, "subscription ended")
		return msg
	case <-time.After(5 * time.Second):
		suite.FailNow("no notification received")
		return event.Message{}
	}
}

func (suite *BusIntegrationTestSuite) TestPublishReachesEveryInstance() {
	ctx := context.Background()
	first := suite.dial()
	second := suite.dial()

	onFirst, err := first.Subscribe(ctx, event.NewCookedOrder)
	suite.Require().NoError(err)
	onSecond, err := second.Subscribe(ctx, event.NewCookedOrder)
	suite.Require().NoError(err)

	driver := uint(9)
	suite.Require().NoError(first.Publish(ctx, event.Message{
		Channel: event.NewCookedOrder,
		Order:   event.Order{ID: 42, DriverID: &driver, Status: "Cooked"},
	}))

	for _, sub := range []interface{ Events() <-chan event.Message }{onFirst, onSecond} {
		msg := suite.receive(sub)
		suite.Equal(event.NewCookedOrder, msg.Channel)
		suite.EqualValues(42, msg.Order.ID)
		suite.Require().NotNil(msg.Order.DriverID)
		suite.EqualValues(9, *msg.Order.DriverID)
	}
}

func (suite *BusIntegrationTestSuite) TestChannelsStaySeparateAndOrdered() {
	ctx := context.Background()
	bus := suite.dial()

	updates, err := bus.Subscribe(ctx, event.NewOrderUpdate)
	suite.Require().NoError(err)
	pending, err := bus.Subscribe(ctx, event.NewPendingOrder)
	suite.Require().NoError(err)

	for id := uint(1); id <= 5; id++ {
		suite.Require().NoError(bus.Publish(ctx, event.Message{Channel: event.NewOrderUpdate, Order: event.Order{ID: id}}))
	}
	suite.Require().NoError(bus.Publish(ctx, event.Message{Channel: event.NewPendingOrder, Order: event.Order{ID: 77}}))

	for id := uint(1); id <= 5; id++ {
		suite.Equal(id, suite.receive(updates).Order.ID)
	}
	suite.EqualValues(77, suite.receive(pending).Order.ID)
}

func (suite *BusIntegrationTestSuite) TestCloseEndsSubscriptions() {
	bus := suite.dial()
	sub, err := bus.Subscribe(context.Background(), event.NewOrderUpdate)
	suite.Require().NoError(err)

	suite.Require().NoError(bus.Close())

	select {
	case _, ok := <-sub.Events():
		suite.False(ok)
	case <-time.After(5 * time.Second):
		suite.Fail("subscription still open after Close")
	}
	suite.NoError(bus.Close())
}

func TestBusIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(BusIntegrationTestSuite))
}
