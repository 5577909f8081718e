package user_test

import (
	"testing"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_ParseAndString(t *testing.T) {
	for _, role := range []user.Role{user.Client, user.Owner, user.Delivery} {
		parsed, err := user.ParseRole(role.String())
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
		require.NoError(t, role.Validate())
	}

	_, err := user.ParseRole("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = user.ParseRole("Admin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Equal(t, "Unknown", user.Role(99).String())
	require.Error(t, user.UnknownRole.Validate())
}

func TestAllowedRole_Allows(t *testing.T) {
	assert.True(t, user.AnyRole.Allows(user.Client))
	assert.True(t, user.AnyRole.Allows(user.Delivery))
	assert.True(t, user.AllowedOwner.Allows(user.Owner))
	assert.False(t, user.AllowedOwner.Allows(user.Client))
	assert.False(t, user.AllowedDelivery.Allows(user.Owner))
}

func TestNewCaller(t *testing.T) {
	caller, err := user.NewCaller(7, user.Delivery)
	require.NoError(t, err)
	require.NoError(t, caller.Validate())
	assert.Equal(t, uint(7), caller.ID().Uint())
	assert.True(t, caller.Is(user.Delivery))

	_, err = user.NewCaller(0, user.Delivery)
	require.Error(t, err)

	_, err = user.NewCaller(7, user.UnknownRole)
	require.Error(t, err)

	var zero user.Caller
	require.ErrorIs(t, zero.Validate(), user.ErrCallerIsNotConstructed)
}
