package user_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("normalises email and starts unverified", func(t *testing.T) {
		u, err := user.NewUser("  Nico@Example.COM ", "hash", user.Client)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "nico@example.com", u.Email())
		assert.False(t, u.Verified())
		assert.True(t, u.ID().IsZero())
	})

	t.Run("collects every validation error", func(t *testing.T) {
		_, err := user.NewUser("not-an-email", "", user.UnknownRole)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var u *user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
		require.ErrorIs(t, (&user.User{}).Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_AssignID(t *testing.T) {
	u, err := user.NewUser("a@b.io", "hash", user.Owner)
	require.NoError(t, err)

	require.NoError(t, u.AssignID(3))
	require.NoError(t, u.AssignID(3))
	require.Error(t, u.AssignID(4))
	require.Error(t, u.AssignID(0))

	caller, err := u.Caller()
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(3), caller.ID())
	assert.Equal(t, user.Owner, caller.Role())
}

func TestUser_ChangeEmail(t *testing.T) {
	u, err := user.RestoreUser(1, "a@b.io", "hash", user.Client, true)
	require.NoError(t, err)

	t.Run("same address keeps verification", func(t *testing.T) {
		changed, err := u.ChangeEmail("A@B.io")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.True(t, u.Verified())
	})

	t.Run("new address resets verification", func(t *testing.T) {
		changed, err := u.ChangeEmail("c@d.io")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, u.Verified())
		assert.Equal(t, "c@d.io", u.Email())

		u.Verify()
		assert.True(t, u.Verified())
	})

	t.Run("invalid address leaves user untouched", func(t *testing.T) {
		_, err := u.ChangeEmail("broken")
		require.Error(t, err)
		assert.Equal(t, "c@d.io", u.Email())
	})
}

func TestVerification(t *testing.T) {
	v, err := user.NewVerification(5)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(5), v.UserID())
	require.NoError(t, v.Code().Validate())

	restored, err := user.RestoreVerification(v.Code(), v.UserID())
	require.NoError(t, err)
	assert.True(t, restored.Code().IsEqual(v.Code()))

	_, err = user.NewVerification(0)
	require.Error(t, err)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "nico@example.com", user.NormalizeEmail("  Nico@Example.COM "))
}
