package queries_test

import (
	"testing"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	testCases := []struct {
		name     string
		validate func() error
		expected error
	}{
		{"orders", queries.GetOrdersQuery{}.Validate, queries.ErrGetOrdersQueryIsNotConstructed},
		{"order", queries.GetOrderQuery{}.Validate, queries.ErrGetOrderQueryIsNotConstructed},
		{"all restaurants", queries.AllRestaurantsQuery{}.Validate, queries.ErrAllRestaurantsQueryIsNotConstructed},
		{"search", queries.SearchRestaurantsQuery{}.Validate, queries.ErrSearchRestaurantsQueryIsNotConstructed},
		{"restaurant", queries.GetRestaurantQuery{}.Validate, queries.ErrGetRestaurantQueryIsNotConstructed},
		{"categories", queries.AllCategoriesQuery{}.Validate, queries.ErrAllCategoriesQueryIsNotConstructed},
		{"category", queries.GetCategoryQuery{}.Validate, queries.ErrGetCategoryQueryIsNotConstructed},
		{"profile", queries.GetUserProfileQuery{}.Validate, queries.ErrGetUserProfileQueryIsNotConstructed},
		{"payments", queries.GetPaymentsQuery{}.Validate, queries.ErrGetPaymentsQueryIsNotConstructed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.validate(), tc.expected)
		})
	}
}

func TestNewGetOrdersQuery(t *testing.T) {
	caller, err := user.NewCaller(1, user.Client)
	require.NoError(t, err)

	query, err := queries.NewGetOrdersQuery(caller, nil)
	require.NoError(t, err)
	_, filtered := query.Status()
	assert.False(t, filtered)

	status := order.Cooked
	query, err = queries.NewGetOrdersQuery(caller, &status)
	require.NoError(t, err)
	status = order.Pending
	got, filtered := query.Status()
	assert.True(t, filtered)
	assert.Equal(t, order.Cooked, got)

	invalid := order.Unknown
	_, err = queries.NewGetOrdersQuery(caller, &invalid)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetOrdersQuery(user.Caller{}, nil)
	require.ErrorIs(t, err, user.ErrCallerIsNotConstructed)
}

func TestNewSearchRestaurantsQuery(t *testing.T) {
	page, err := kernel.NewPage(1, 0)
	require.NoError(t, err)

	query, err := queries.NewSearchRestaurantsQuery("  pizza ", page)
	require.NoError(t, err)
	assert.Equal(t, "pizza", query.Term())

	_, err = queries.NewSearchRestaurantsQuery("   ", page)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewSearchRestaurantsQuery("pizza", kernel.Page{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetCategoryQuery(t *testing.T) {
	page, err := kernel.NewPage(2, 0)
	require.NoError(t, err)

	query, err := queries.NewGetCategoryQuery("korean-bbq", page)
	require.NoError(t, err)
	assert.Equal(t, "korean-bbq", query.Slug())
	assert.Equal(t, 2, query.Page().Number())

	_, err = queries.NewGetCategoryQuery("", page)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewIDQueries_RejectZeroID(t *testing.T) {
	caller, err := user.NewCaller(1, user.Owner)
	require.NoError(t, err)

	_, err = queries.NewGetOrderQuery(caller, 0)
	require.Error(t, err)
	_, err = queries.NewGetRestaurantQuery(0)
	require.Error(t, err)
	_, err = queries.NewGetUserProfileQuery(0)
	require.Error(t, err)
}
