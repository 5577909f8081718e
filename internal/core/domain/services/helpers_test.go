package services_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

const (
	customerID kernel.ID = 1
	ownerID    kernel.ID = 2
	driverID   kernel.ID = 3
	strangerID kernel.ID = 4
)

func mustCaller(t *testing.T, id kernel.ID, role user.Role) user.Caller {
	t.Helper()
	caller, err := user.NewCaller(id, role)
	require.NoError(t, err)
	return caller
}

// newOrder builds order 10 of restaurant 20 placed by customerID with
// restaurant owner ownerID, optionally driven by driver.
func newOrder(t *testing.T, status order.Status, driver *kernel.ID) *order.Order {
	t.Helper()
	item, err := order.RestoreItem(1, 5, "Pepperoni", 10000, nil)
	require.NoError(t, err)
	o, err := order.RestoreOrder(10, customerID, driver, 20, ownerID, []*order.Item{item}, 10000, status, time.Now())
	require.NoError(t, err)
	return o
}

func ptr(id kernel.ID) *kernel.ID {
	return &id
}
