package order_test

import (
	"testing"

	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_ParseAndString(t *testing.T) {
	for _, status := range order.Statuses() {
		parsed, err := order.ParseStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := order.ParseStatus("Cancelled")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("Unknown")
	require.Error(t, err)

	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(6).Validate())
	require.NoError(t, order.PickedUp.Validate())
}

func TestStatus_IsAfter(t *testing.T) {
	statuses := order.Statuses()
	for i, later := range statuses {
		for j, earlier := range statuses {
			assert.Equal(t, i > j, later.IsAfter(earlier), "%s after %s", later, earlier)
		}
	}
}
