package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

const (
	clientID     kernel.ID = 1
	ownerID      kernel.ID = 2
	driverID     kernel.ID = 3
	otherID      kernel.ID = 4
	restaurantID kernel.ID = 20
	orderID      kernel.ID = 30
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustCaller(t *testing.T, id kernel.ID, role user.Role) user.Caller {
	t.Helper()
	caller, err := user.NewCaller(id, role)
	require.NoError(t, err)
	return caller
}

func ownedRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	categoryID := kernel.ID(9)
	r, err := restaurant.RestoreRestaurant(restaurantID, "Pizza Planet", "1 Main St", "cover.png", ownerID, &categoryID, nil)
	require.NoError(t, err)
	return r
}

func storedOrder(t *testing.T, status order.Status, driver *kernel.ID) *order.Order {
	t.Helper()
	item, err := order.RestoreItem(1, 5, "Pizza Grande", 12000, []order.ItemOption{{Name: "Size"}})
	require.NoError(t, err)
	o, err := order.RestoreOrder(orderID, clientID, driver, restaurantID, ownerID, []*order.Item{item}, 12000, status, time.Now())
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T {
	return &v
}
