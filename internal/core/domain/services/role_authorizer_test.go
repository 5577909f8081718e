package services_test

import (
	"testing"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestRoleAuthorizer_Authorize(t *testing.T) {
	authorizer := services.NewRoleAuthorizer()
	roles := []user.Role{user.Client, user.Owner, user.Delivery}
	labels := []user.AllowedRole{user.AllowedClient, user.AllowedOwner, user.AllowedDelivery}

	t.Run("public operations admit everyone", func(t *testing.T) {
		assert.True(t, authorizer.Authorize(nil, nil))
		for _, role := range roles {
			caller := mustCaller(t, 1, role)
			assert.True(t, authorizer.Authorize([]user.AllowedRole{}, &caller))
		}
	})

	t.Run("unauthenticated callers are refused", func(t *testing.T) {
		assert.False(t, authorizer.Authorize([]user.AllowedRole{user.AnyRole}, nil))
		assert.False(t, authorizer.Authorize([]user.AllowedRole{user.AllowedOwner}, nil))
		assert.False(t, authorizer.Authorize(labels, nil))
	})

	t.Run("any admits every authenticated caller", func(t *testing.T) {
		for _, role := range roles {
			caller := mustCaller(t, 1, role)
			assert.True(t, authorizer.Authorize([]user.AllowedRole{user.AllowedOwner, user.AnyRole}, &caller))
		}
	})

	t.Run("membership decides otherwise", func(t *testing.T) {
		// every subset of the three labels against every role
		for mask := 0; mask < 1<<len(labels); mask++ {
			var required []user.AllowedRole
			for i, label := range labels {
				if mask&(1<<i) != 0 {
					required = append(required, label)
				}
			}
			if len(required) == 0 {
				continue
			}
			for i, role := range roles {
				caller := mustCaller(t, 1, role)
				expected := mask&(1<<i) != 0
				assert.Equal(t, expected, authorizer.Authorize(required, &caller), "required=%v role=%s", required, role)
			}
		}
	})
}
