package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/v1/accounts)
	CreateAccount(ctx echo.Context) error
	// (POST /api/v1/login)
	Login(ctx echo.Context) error
	// (POST /api/v1/verify-email)
	VerifyEmail(ctx echo.Context) error
	// (GET /api/v1/me)
	Me(ctx echo.Context) error
	// (PATCH /api/v1/me)
	EditProfile(ctx echo.Context) error
	// (GET /api/v1/users/{userId})
	UserProfile(ctx echo.Context, userId uint) error

	// (GET /api/v1/restaurants)
	AllRestaurants(ctx echo.Context, params PageParams) error
	// (POST /api/v1/restaurants)
	CreateRestaurant(ctx echo.Context) error
	// (GET /api/v1/restaurant-search)
	SearchRestaurants(ctx echo.Context, params SearchRestaurantsParams) error
	// (GET /api/v1/restaurants/{restaurantId})
	GetRestaurant(ctx echo.Context, restaurantId uint) error
	// (PATCH /api/v1/restaurants/{restaurantId})
	EditRestaurant(ctx echo.Context, restaurantId uint) error
	// (DELETE /api/v1/restaurants/{restaurantId})
	DeleteRestaurant(ctx echo.Context, restaurantId uint) error
	// (POST /api/v1/restaurants/{restaurantId}/dishes)
	CreateDish(ctx echo.Context, restaurantId uint) error
	// (PATCH /api/v1/dishes/{dishId})
	EditDish(ctx echo.Context, dishId uint) error
	// (DELETE /api/v1/dishes/{dishId})
	DeleteDish(ctx echo.Context, dishId uint) error
	// (GET /api/v1/categories)
	AllCategories(ctx echo.Context) error
	// (GET /api/v1/categories/{slug})
	GetCategory(ctx echo.Context, slug string, params PageParams) error

	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId uint) error
	// (PATCH /api/v1/orders/{orderId})
	EditOrder(ctx echo.Context, orderId uint) error
	// (POST /api/v1/orders/{orderId}/take)
	TakeOrder(ctx echo.Context, orderId uint) error

	// (GET /api/v1/payments)
	GetPayments(ctx echo.Context) error
	// (POST /api/v1/payments)
	CreatePayment(ctx echo.Context) error

	// (POST /api/v1/uploads)
	Upload(ctx echo.Context) error

	// (GET /api/v1/subscriptions/pending-orders)
	PendingOrders(ctx echo.Context) error
	// (GET /api/v1/subscriptions/cooked-orders)
	CookedOrders(ctx echo.Context) error
	// (GET /api/v1/subscriptions/orders/{orderId})
	OrderUpdates(ctx echo.Context, orderId uint) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathID(ctx echo.Context, name string) (uint, error) {
	var id uint
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindPage(ctx echo.Context) (*int, error) {
	var page *int
	err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &page)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	return page, nil
}

func (w *ServerInterfaceWrapper) CreateAccount(ctx echo.Context) error {
	return w.Handler.CreateAccount(ctx)
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) VerifyEmail(ctx echo.Context) error {
	return w.Handler.VerifyEmail(ctx)
}

func (w *ServerInterfaceWrapper) Me(ctx echo.Context) error {
	return w.Handler.Me(ctx)
}

func (w *ServerInterfaceWrapper) EditProfile(ctx echo.Context) error {
	return w.Handler.EditProfile(ctx)
}

func (w *ServerInterfaceWrapper) UserProfile(ctx echo.Context) error {
	userId, err := bindPathID(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.UserProfile(ctx, userId)
}

func (w *ServerInterfaceWrapper) AllRestaurants(ctx echo.Context) error {
	page, err := bindPage(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AllRestaurants(ctx, PageParams{Page: page})
}

func (w *ServerInterfaceWrapper) CreateRestaurant(ctx echo.Context) error {
	return w.Handler.CreateRestaurant(ctx)
}

func (w *ServerInterfaceWrapper) SearchRestaurants(ctx echo.Context) error {
	var params SearchRestaurantsParams

	err := runtime.BindQueryParameter("form", true, true, "query", ctx.QueryParams(), &params.Query)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter query: %s", err))
	}
	if params.Page, err = bindPage(ctx); err != nil {
		return err
	}
	return w.Handler.SearchRestaurants(ctx, params)
}

func (w *ServerInterfaceWrapper) GetRestaurant(ctx echo.Context) error {
	restaurantId, err := bindPathID(ctx, "restaurantId")
	if err != nil {
		return err
	}
	return w.Handler.GetRestaurant(ctx, restaurantId)
}

func (w *ServerInterfaceWrapper) EditRestaurant(ctx echo.Context) error {
	restaurantId, err := bindPathID(ctx, "restaurantId")
	if err != nil {
		return err
	}
	return w.Handler.EditRestaurant(ctx, restaurantId)
}

func (w *ServerInterfaceWrapper) DeleteRestaurant(ctx echo.Context) error {
	restaurantId, err := bindPathID(ctx, "restaurantId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteRestaurant(ctx, restaurantId)
}

func (w *ServerInterfaceWrapper) CreateDish(ctx echo.Context) error {
	restaurantId, err := bindPathID(ctx, "restaurantId")
	if err != nil {
		return err
	}
	return w.Handler.CreateDish(ctx, restaurantId)
}

func (w *ServerInterfaceWrapper) EditDish(ctx echo.Context) error {
	dishId, err := bindPathID(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.EditDish(ctx, dishId)
}

func (w *ServerInterfaceWrapper) DeleteDish(ctx echo.Context) error {
	dishId, err := bindPathID(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteDish(ctx, dishId)
}

func (w *ServerInterfaceWrapper) AllCategories(ctx echo.Context) error {
	return w.Handler.AllCategories(ctx)
}

func (w *ServerInterfaceWrapper) GetCategory(ctx echo.Context) error {
	var slug string
	err := runtime.BindStyledParameterWithOptions("simple", "slug", ctx.Param("slug"), &slug,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter slug: %s", err))
	}
	page, err := bindPage(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCategory(ctx, slug, PageParams{Page: page})
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	return w.Handler.GetOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindPathID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) EditOrder(ctx echo.Context) error {
	orderId, err := bindPathID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.EditOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) TakeOrder(ctx echo.Context) error {
	orderId, err := bindPathID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.TakeOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetPayments(ctx echo.Context) error {
	return w.Handler.GetPayments(ctx)
}

func (w *ServerInterfaceWrapper) CreatePayment(ctx echo.Context) error {
	return w.Handler.CreatePayment(ctx)
}

func (w *ServerInterfaceWrapper) Upload(ctx echo.Context) error {
	return w.Handler.Upload(ctx)
}

func (w *ServerInterfaceWrapper) PendingOrders(ctx echo.Context) error {
	return w.Handler.PendingOrders(ctx)
}

func (w *ServerInterfaceWrapper) CookedOrders(ctx echo.Context) error {
	return w.Handler.CookedOrders(ctx)
}

func (w *ServerInterfaceWrapper) OrderUpdates(ctx echo.Context) error {
	orderId, err := bindPathID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.OrderUpdates(ctx, orderId)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/accounts", wrapper.CreateAccount)
	router.POST(baseURL+"/api/v1/login", wrapper.Login)
	router.POST(baseURL+"/api/v1/verify-email", wrapper.VerifyEmail)
	router.GET(baseURL+"/api/v1/me", wrapper.Me)
	router.PATCH(baseURL+"/api/v1/me", wrapper.EditProfile)
	router.GET(baseURL+"/api/v1/users/:userId", wrapper.UserProfile)

	router.GET(baseURL+"/api/v1/restaurants", wrapper.AllRestaurants)
	router.POST(baseURL+"/api/v1/restaurants", wrapper.CreateRestaurant)
	router.GET(baseURL+"/api/v1/restaurant-search", wrapper.SearchRestaurants)
	router.GET(baseURL+"/api/v1/restaurants/:restaurantId", wrapper.GetRestaurant)
	router.PATCH(baseURL+"/api/v1/restaurants/:restaurantId", wrapper.EditRestaurant)
	router.DELETE(baseURL+"/api/v1/restaurants/:restaurantId", wrapper.DeleteRestaurant)
	router.POST(baseURL+"/api/v1/restaurants/:restaurantId/dishes", wrapper.CreateDish)
	router.PATCH(baseURL+"/api/v1/dishes/:dishId", wrapper.EditDish)
	router.DELETE(baseURL+"/api/v1/dishes/:dishId", wrapper.DeleteDish)
	router.GET(baseURL+"/api/v1/categories", wrapper.AllCategories)
	router.GET(baseURL+"/api/v1/categories/:slug", wrapper.GetCategory)

	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId", wrapper.EditOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/take", wrapper.TakeOrder)

	router.GET(baseURL+"/api/v1/payments", wrapper.GetPayments)
	router.POST(baseURL+"/api/v1/payments", wrapper.CreatePayment)

	router.POST(baseURL+"/api/v1/uploads", wrapper.Upload)

	router.GET(baseURL+"/api/v1/subscriptions/pending-orders", wrapper.PendingOrders)
	router.GET(baseURL+"/api/v1/subscriptions/cooked-orders", wrapper.CookedOrders)
	router.GET(baseURL+"/api/v1/subscriptions/orders/:orderId", wrapper.OrderUpdates)
}
