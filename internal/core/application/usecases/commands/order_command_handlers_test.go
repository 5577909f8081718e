package commands_test

import (
	"errors"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/event"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func menuDishes(t *testing.T) []*restaurant.Dish {
	t.Helper()
	pizza, err := restaurant.RestoreDish(5, restaurantID, "Pizza Grande", 10000, "", "", []restaurant.DishOption{
		{Name: "Size", Extra: 2000},
	})
	require.NoError(t, err)
	curry, err := restaurant.RestoreDish(6, restaurantID, "Green Curry", 8000, "", "", []restaurant.DishOption{
		{Name: "Spice", Choices: []restaurant.DishChoice{{Name: "Hot", Extra: 500}}},
	})
	require.NoError(t, err)
	return []*restaurant.Dish{pizza, curry}
}

func onChannel(channel event.Channel) any {
	return mock.MatchedBy(func(msg event.Message) bool { return msg.Channel == channel })
}

func TestNewCreateOrderCommand(t *testing.T) {
	client := mustCaller(t, clientID, user.Client)

	_, err := commands.NewCreateOrderCommand(client, restaurantID, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOrderCommand(client, 0, []order.Selection{{DishID: 0}})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOrderCommand(user.Caller{}, restaurantID, []order.Selection{{DishID: 5}})
	require.ErrorIs(t, err, user.ErrCallerIsNotConstructed)

	selections := []order.Selection{{DishID: 5, Options: []order.ItemOption{{Name: "Size"}}}}
	cmd, err := commands.NewCreateOrderCommand(client, restaurantID, selections)
	require.NoError(t, err)
	selections[0].Options[0].Name = "changed"
	assert.Equal(t, "Size", cmd.Selections()[0].Options[0].Name)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(mustCaller(t, clientID, user.Client), restaurantID, []order.Selection{
		{DishID: 5, Options: []order.ItemOption{{Name: "Size"}}},
		{DishID: 6, Options: []order.ItemOption{{Name: "Spice", Choice: "Hot"}}},
	})
	require.NoError(t, err)

	restaurants := new(MockRestaurantRepository)
	dishes := new(MockDishRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	bus := new(MockEventBus)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurants).Once(),
		restaurants.On("Get", ctx, restaurantID).Return(ownedRestaurant(t), nil).Once(),
		uow.On("DishRepository").Return(dishes).Once(),
		dishes.On("GetAllByRestaurant", ctx, restaurantID).Return(menuDishes(t), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*order.Order).AssignID(orderID))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		bus.On("Publish", ctx, onChannel(event.NewPendingOrder)).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	id, err := commands.NewCreateOrderCommandHandler(factory, bus, discardLogger()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, orderID, id)

	created := orders.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, 20500, created.Total())
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, ownerID, created.OwnerID())
	assert.Nil(t, created.DriverID())
	require.Len(t, created.Items(), 2)
	assert.Equal(t, "Pizza Grande", created.Items()[0].DishName())

	msg := bus.Calls[0].Arguments.Get(1).(event.Message)
	assert.Equal(t, ownerID.Uint(), msg.Order.OwnerID)
	assert.Equal(t, 20500, msg.Order.Total)
	uow.AssertExpectations(t)
	bus.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DishNotOnMenu(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(mustCaller(t, clientID, user.Client), restaurantID, []order.Selection{
		{DishID: 99},
	})
	require.NoError(t, err)

	restaurants := new(MockRestaurantRepository)
	dishes := new(MockDishRepository)
	uow := new(MockUoW)
	bus := new(MockEventBus)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RestaurantRepository").Return(restaurants).Once()
	restaurants.On("Get", ctx, restaurantID).Return(ownedRestaurant(t), nil).Once()
	uow.On("DishRepository").Return(dishes).Once()
	dishes.On("GetAllByRestaurant", ctx, restaurantID).Return(menuDishes(t), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateOrderCommandHandler(factory, bus, discardLogger()).Handle(ctx, cmd)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Dish not found.", notFound.Reason())
	uow.AssertNotCalled(t, "OrderRepository")
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(mustCaller(t, clientID, user.Client), restaurantID, []order.Selection{
		{DishID: 5},
	})
	require.NoError(t, err)

	restaurants := new(MockRestaurantRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RestaurantRepository").Return(restaurants).Once()
	restaurants.On("Get", ctx, restaurantID).Return(nil, errs.NewObjectNotFoundError("restaurant", restaurantID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateOrderCommandHandler(factory, new(MockEventBus), discardLogger()).Handle(ctx, cmd)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Restaurant not found", notFound.Reason())
}

func TestCreateOrderCommandHandler_Handle_PublishFailureIsNotReturned(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(mustCaller(t, clientID, user.Client), restaurantID, []order.Selection{
		{DishID: 5},
	})
	require.NoError(t, err)

	restaurants := new(MockRestaurantRepository)
	dishes := new(MockDishRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	bus := new(MockEventBus)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RestaurantRepository").Return(restaurants).Once()
	restaurants.On("Get", ctx, restaurantID).Return(ownedRestaurant(t), nil).Once()
	uow.On("DishRepository").Return(dishes).Once()
	dishes.On("GetAllByRestaurant", ctx, restaurantID).Return(menuDishes(t), nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*order.Order).AssignID(orderID))
		}).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	bus.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	id, err := commands.NewCreateOrderCommandHandler(factory, bus, discardLogger()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, orderID, id)
}

func TestEditOrderCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		name     string
		caller   func(t *testing.T) user.Caller
		current  order.Status
		driver   *kernel.ID
		status   order.Status
		reason   string
		channels []event.Channel
	}{
		{
			name:     "owner marks cooked",
			caller:   func(t *testing.T) user.Caller { return mustCaller(t, ownerID, user.Owner) },
			current:  order.Cooking,
			status:   order.Cooked,
			channels: []event.Channel{event.NewOrderUpdate, event.NewCookedOrder},
		},
		{
			name:     "owner starts cooking",
			caller:   func(t *testing.T) user.Caller { return mustCaller(t, ownerID, user.Owner) },
			current:  order.Pending,
			status:   order.Cooking,
			channels: []event.Channel{event.NewOrderUpdate},
		},
		{
			name:     "driver delivers",
			caller:   func(t *testing.T) user.Caller { return mustCaller(t, driverID, user.Delivery) },
			current:  order.PickedUp,
			driver:   ptr(driverID),
			status:   order.Delivered,
			channels: []event.Channel{event.NewOrderUpdate},
		},
		{
			name:    "foreign owner cannot see the order",
			caller:  func(t *testing.T) user.Caller { return mustCaller(t, otherID, user.Owner) },
			current: order.Pending,
			status:  order.Cooking,
			reason:  commands.ReasonCannotEditOrder,
		},
		{
			name:    "owner cannot mark picked up",
			caller:  func(t *testing.T) user.Caller { return mustCaller(t, ownerID, user.Owner) },
			current: order.Cooked,
			status:  order.PickedUp,
			reason:  commands.ReasonCannotDoThat,
		},
		{
			name:    "client cannot change status",
			caller:  func(t *testing.T) user.Caller { return mustCaller(t, clientID, user.Client) },
			current: order.Pending,
			status:  order.Cooking,
			reason:  commands.ReasonCannotDoThat,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewEditOrderCommand(tc.caller(t), orderID, tc.status)
			require.NoError(t, err)

			o := storedOrder(t, tc.current, tc.driver)
			orders := new(MockOrderRepository)
			uow := new(MockUoW)
			bus := new(MockEventBus)

			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(orders).Once()
			orders.On("Get", ctx, orderID).Return(o, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			if tc.reason == "" {
				orders.On("UpdateStatus", ctx, o, tc.current).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
				for _, channel := range tc.channels {
					bus.On("Publish", ctx, onChannel(channel)).Return(nil).Once()
				}
			}

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewEditOrderCommandHandler(factory, services.NewOrderAccessPolicy(false), bus, discardLogger())
			err = handler.Handle(ctx, cmd)

			if tc.reason != "" {
				var forbidden *errs.ForbiddenError
				require.ErrorAs(t, err, &forbidden)
				assert.Equal(t, tc.reason, forbidden.Reason)
				assert.Equal(t, tc.current, o.Status())
				orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.status, o.Status())
			bus.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestEditOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewEditOrderCommand(mustCaller(t, ownerID, user.Owner), orderID, order.Cooking)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEditOrderCommandHandler(factory, services.NewOrderAccessPolicy(false), new(MockEventBus), discardLogger())
	err = handler.Handle(ctx, cmd)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Order not found", notFound.Reason())
}

func TestEditOrderCommandHandler_Handle_MonotonicPolicy(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewEditOrderCommand(mustCaller(t, ownerID, user.Owner), orderID, order.Cooking)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, orderID).Return(storedOrder(t, order.Cooked, nil), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEditOrderCommandHandler(factory, services.NewOrderAccessPolicy(true), new(MockEventBus), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestEditOrderCommandHandler_Handle_ConcurrentEdit(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewEditOrderCommand(mustCaller(t, ownerID, user.Owner), orderID, order.Cooked)
	require.NoError(t, err)

	o := storedOrder(t, order.Cooking, nil)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	bus := new(MockEventBus)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, orderID).Return(o, nil).Once()
	orders.On("UpdateStatus", ctx, o, order.Cooking).Return(errs.NewConflictError("order status changed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEditOrderCommandHandler(factory, services.NewOrderAccessPolicy(false), bus, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestTakeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTakeOrderCommand(mustCaller(t, driverID, user.Delivery), orderID)
	require.NoError(t, err)

	o := storedOrder(t, order.Cooked, nil)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	bus := new(MockEventBus)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, orderID).Return(o, nil).Once(),
		orders.On("AssignDriver", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		bus.On("Publish", ctx, onChannel(event.NewOrderUpdate)).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	require.NoError(t, commands.NewTakeOrderCommandHandler(factory, bus, discardLogger()).Handle(ctx, cmd))

	require.NotNil(t, o.DriverID())
	assert.Equal(t, driverID, *o.DriverID())
	msg := bus.Calls[0].Arguments.Get(1).(event.Message)
	require.NotNil(t, msg.Order.DriverID)
	assert.Equal(t, driverID.Uint(), *msg.Order.DriverID)
}

func TestTakeOrderCommandHandler_Handle_AlreadyTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTakeOrderCommand(mustCaller(t, driverID, user.Delivery), orderID)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	bus := new(MockEventBus)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, orderID).Return(storedOrder(t, order.Cooked, ptr(otherID)), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewTakeOrderCommandHandler(factory, bus, discardLogger()).Handle(ctx, cmd)

	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, order.ReasonDriverAlreadyAssigned, conflict.Reason)
	orders.AssertNotCalled(t, "AssignDriver", mock.Anything, mock.Anything)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestTakeOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTakeOrderCommand(mustCaller(t, driverID, user.Delivery), orderID)
	require.NoError(t, err)

	o := storedOrder(t, order.Cooked, nil)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	bus := new(MockEventBus)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, orderID).Return(o, nil).Once()
	orders.On("AssignDriver", ctx, o).Return(errs.NewConflictError(order.ReasonDriverAlreadyAssigned)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewTakeOrderCommandHandler(factory, bus, discardLogger()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
