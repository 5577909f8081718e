package restaurant_test

import (
	"testing"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	c, err := restaurant.NewCategory("  Korean BBQ ")
	require.NoError(t, err)
	assert.Equal(t, "korean bbq", c.Name())
	assert.Equal(t, "korean-bbq", c.Slug())
	assert.True(t, c.ID().IsZero())

	withID := c.WithID(9)
	assert.Equal(t, uint(9), withID.ID().Uint())
	assert.True(t, c.ID().IsZero())

	_, err = restaurant.NewCategory("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestoreCategory(t *testing.T) {
	c, err := restaurant.RestoreCategory(2, "fast food", "fast-food", "https://cdn/ff.png")
	require.NoError(t, err)
	assert.Equal(t, "fast-food", c.Slug())
	assert.Equal(t, "https://cdn/ff.png", c.CoverImg())

	_, err = restaurant.RestoreCategory(0, "fast food", "fast-food", "")
	require.Error(t, err)
}
