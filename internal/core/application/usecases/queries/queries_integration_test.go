package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/postgres/pgtest"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/payment"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// QueryHandlersTestSuite seeds data through the repositories and reads it
// back through the query handlers.
type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	uow       ports.UnitOfWork

	client *user.User
	owner  *user.User
	driver *user.User
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.uow = postgres_adapter.NewGormUnitOfWorkFactory(suite.db).Create()

	suite.client = suite.addUser("client@example.com", user.Client)
	suite.owner = suite.addUser("owner@example.com", user.Owner)
	suite.driver = suite.addUser("driver@example.com", user.Delivery)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) addUser(email string, role user.Role) *user.User {
	u, err := user.NewUser(email, "hash", role)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.UserRepository().Add(context.Background(), u))
	return u
}

func (suite *QueryHandlersTestSuite) caller(u *user.User) user.Caller {
	c, err := u.Caller()
	suite.Require().NoError(err)
	return c
}

func (suite *QueryHandlersTestSuite) addCategory(name string) kernel.ID {
	c, err := restaurant.NewCategory(name)
	suite.Require().NoError(err)
	c, err = suite.uow.CategoryRepository().GetOrCreate(context.Background(), c)
	suite.Require().NoError(err)
	return c.ID()
}

func (suite *QueryHandlersTestSuite) addRestaurant(name string, categoryID *kernel.ID, promoted bool) *restaurant.Restaurant {
	ctx := context.Background()
	r, err := restaurant.NewRestaurant(name, "1 Main St", "cover.png", suite.owner.ID(), categoryID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.RestaurantRepository().Add(ctx, r))
	if promoted {
		suite.Require().NoError(r.Promote(time.Now().UTC(), 7))
		suite.Require().NoError(suite.uow.RestaurantRepository().UpdatePromotion(ctx, r, nil))
	}
	return r
}

func (suite *QueryHandlersTestSuite) addOrder(r *restaurant.Restaurant, status order.Status, driver *kernel.ID) *order.Order {
	item, err := order.NewItem(5, "Pizza Grande", 12000, []order.ItemOption{{Name: "Size"}})
	suite.Require().NoError(err)
	o, err := order.NewOrder(suite.client.ID(), r.ID(), r.OwnerID(), []*order.Item{item}, 12000, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.OrderRepository().Add(context.Background(), o))

	if status != order.Pending {
		suite.Require().NoError(o.ChangeStatus(status))
		suite.Require().NoError(suite.uow.OrderRepository().UpdateStatus(context.Background(), o, order.Pending))
	}
	if driver != nil {
		suite.Require().NoError(o.AssignDriver(*driver))
		suite.Require().NoError(suite.uow.OrderRepository().AssignDriver(context.Background(), o))
	}
	return o
}

func (suite *QueryHandlersTestSuite) page(number int) kernel.Page {
	p, err := kernel.NewPage(number, 2)
	suite.Require().NoError(err)
	return p
}

func (suite *QueryHandlersTestSuite) TestGetOrders_ByRoleAndStatus() {
	ctx := context.Background()
	r := suite.addRestaurant("Pizza Planet", nil, false)
	driverID := suite.driver.ID()

	pending := suite.addOrder(r, order.Pending, nil)
	cooked := suite.addOrder(r, order.Cooked, &driverID)

	handler := queries.NewGetOrdersQueryHandler(suite.db)

	testCases := []struct {
		name     string
		caller   user.Caller
		status   *order.Status
		expected []kernel.ID
	}{
		{"client sees own orders", suite.caller(suite.client), nil, []kernel.ID{pending.ID(), cooked.ID()}},
		{"owner sees restaurant orders", suite.caller(suite.owner), nil, []kernel.ID{pending.ID(), cooked.ID()}},
		{"driver sees driven orders", suite.caller(suite.driver), nil, []kernel.ID{cooked.ID()}},
		{"status filter", suite.caller(suite.owner), ptr(order.Pending), []kernel.ID{pending.ID()}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			query, err := queries.NewGetOrdersQuery(tc.caller, tc.status)
			suite.Require().NoError(err)

			result, err := handler.Handle(ctx, query)

			suite.Require().NoError(err)
			ids := make([]kernel.ID, 0, len(result))
			for _, o := range result {
				ids = append(ids, kernel.ID(o.ID))
				suite.Equal("Pizza Planet", o.RestaurantName)
				suite.Require().Len(o.Items, 1)
				suite.Equal([]order.ItemOption{{Name: "Size"}}, o.Items[0].Options)
			}
			suite.Equal(tc.expected, ids)
		})
	}
}

func (suite *QueryHandlersTestSuite) TestGetOrders_OtherClientSeesNothing() {
	r := suite.addRestaurant("Pizza Planet", nil, false)
	suite.addOrder(r, order.Pending, nil)
	stranger := suite.addUser("stranger@example.com", user.Client)

	query, err := queries.NewGetOrdersQuery(suite.caller(stranger), nil)
	suite.Require().NoError(err)

	result, err := queries.NewGetOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_Visibility() {
	ctx := context.Background()
	r := suite.addRestaurant("Pizza Planet", nil, false)
	o := suite.addOrder(r, order.Cooked, nil)
	otherOwner := suite.addUser("other@example.com", user.Owner)

	handler := queries.NewGetOrderQueryHandler(suite.db, services.NewOrderAccessPolicy(false))

	query, err := queries.NewGetOrderQuery(suite.caller(suite.owner), o.ID())
	suite.Require().NoError(err)
	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("Cooked", view.Status)
	suite.Equal(12000, view.Total)

	query, err = queries.NewGetOrderQuery(suite.caller(otherOwner), o.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	var forbidden *errs.ForbiddenError
	suite.Require().ErrorAs(err, &forbidden)
	suite.Equal(queries.ReasonCannotSeeOrder, forbidden.Reason)

	query, err = queries.NewGetOrderQuery(suite.caller(suite.driver), o.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrForbidden)

	query, err = queries.NewGetOrderQuery(suite.caller(suite.owner), 999)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("Order not found", notFound.Reason())
}

func (suite *QueryHandlersTestSuite) TestAllRestaurants_PromotedFirstAndPaged() {
	ctx := context.Background()
	plain := suite.addRestaurant("Plain Place", nil, false)
	promoted := suite.addRestaurant("Promoted Place", nil, true)
	last := suite.addRestaurant("Third Place", nil, false)

	handler := queries.NewAllRestaurantsQueryHandler(suite.db)

	query, err := queries.NewAllRestaurantsQuery(suite.page(1))
	suite.Require().NoError(err)
	first, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.EqualValues(3, first.TotalResults)
	suite.Equal(2, first.TotalPages)
	suite.Require().Len(first.Restaurants, 2)
	suite.Equal(promoted.ID().Uint(), first.Restaurants[0].ID)
	suite.True(first.Restaurants[0].IsPromoted)
	suite.NotNil(first.Restaurants[0].PromotedUntil)
	suite.Equal(plain.ID().Uint(), first.Restaurants[1].ID)

	query, err = queries.NewAllRestaurantsQuery(suite.page(2))
	suite.Require().NoError(err)
	second, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(second.Restaurants, 1)
	suite.Equal(last.ID().Uint(), second.Restaurants[0].ID)
}

func (suite *QueryHandlersTestSuite) TestSearchRestaurants_CaseInsensitive() {
	suite.addRestaurant("Pizza Planet", nil, false)
	suite.addRestaurant("Planet Pizza", nil, false)
	suite.addRestaurant("Curry House", nil, false)

	query, err := queries.NewSearchRestaurantsQuery("PIZZA", suite.page(1))
	suite.Require().NoError(err)

	result, err := queries.NewSearchRestaurantsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.EqualValues(2, result.TotalResults)
	suite.Equal(1, result.TotalPages)
	for _, r := range result.Restaurants {
		suite.Contains(r.Name, "Pizza")
	}
}

func (suite *QueryHandlersTestSuite) TestGetRestaurant_WithMenu() {
	ctx := context.Background()
	categoryID := suite.addCategory("Italian Food")
	r := suite.addRestaurant("Pizza Planet", &categoryID, false)

	dish, err := restaurant.NewDish(r.ID(), "Pizza Grande", 10000, "Stone baked", "pizza.png", []restaurant.DishOption{
		{Name: "Spice", Choices: []restaurant.DishChoice{{Name: "Hot", Extra: 500}}},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.DishRepository().Add(ctx, dish))

	handler := queries.NewGetRestaurantQueryHandler(suite.db)

	query, err := queries.NewGetRestaurantQuery(r.ID())
	suite.Require().NoError(err)
	details, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("Pizza Planet", details.Name)
	suite.Equal("italian food", details.CategoryName)
	suite.Require().Len(details.Menu, 1)
	suite.Equal("Pizza Grande", details.Menu[0].Name)
	suite.Equal(dish.Options(), details.Menu[0].Options)

	query, err = queries.NewGetRestaurantQuery(999)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("Restaurant not found", notFound.Reason())
}

func (suite *QueryHandlersTestSuite) TestCategories_CountsAndSlugLookup() {
	ctx := context.Background()
	korean := suite.addCategory("Korean BBQ")
	suite.addCategory("Vegan")
	for i := range 3 {
		suite.addRestaurant(fmt.Sprintf("Korean Grill %d", i), &korean, false)
	}

	categories, err := queries.NewAllCategoriesQueryHandler(suite.db).Handle(ctx, queries.NewAllCategoriesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(categories, 2)
	suite.Equal("korean bbq", categories[0].Name)
	suite.EqualValues(3, categories[0].RestaurantCount)
	suite.EqualValues(0, categories[1].RestaurantCount)

	handler := queries.NewGetCategoryQueryHandler(suite.db)

	query, err := queries.NewGetCategoryQuery("korean-bbq", suite.page(2))
	suite.Require().NoError(err)
	details, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(korean.Uint(), details.Category.ID)
	suite.Equal(2, details.TotalPages)
	suite.Len(details.Restaurants, 1)

	query, err = queries.NewGetCategoryQuery("missing", suite.page(1))
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetUserProfile() {
	handler := queries.NewGetUserProfileQueryHandler(suite.db)

	query, err := queries.NewGetUserProfileQuery(suite.owner.ID())
	suite.Require().NoError(err)
	profile, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("owner@example.com", profile.Email)
	suite.Equal("Owner", profile.Role)
	suite.False(profile.Verified)

	query, err = queries.NewGetUserProfileQuery(999)
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetPayments_OnlyCallers() {
	ctx := context.Background()
	r := suite.addRestaurant("Pizza Planet", nil, false)
	otherOwner := suite.addUser("other@example.com", user.Owner)

	for _, p := range []struct {
		tx    string
		payer kernel.ID
		at    time.Time
	}{
		{"tx-old", suite.owner.ID(), time.Now().UTC().Add(-time.Hour)},
		{"tx-new", suite.owner.ID(), time.Now().UTC()},
		{"tx-other", otherOwner.ID(), time.Now().UTC()},
	} {
		created, err := payment.NewPayment(p.tx, p.payer, r.ID(), p.at)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.uow.PaymentRepository().Add(ctx, created))
	}

	query, err := queries.NewGetPaymentsQuery(suite.caller(suite.owner))
	suite.Require().NoError(err)

	result, err := queries.NewGetPaymentsQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("tx-new", result[0].TransactionID)
	suite.Equal("tx-old", result[1].TransactionID)
	suite.Equal("Pizza Planet", result[0].RestaurantName)
}

func (suite *QueryHandlersTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	query := queries.NewAllCategoriesQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := queries.NewAllCategoriesQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func ptr[T any](v T) *T {
	return &v
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
