package http

import (
	"log/slog"
	"net/http"

	"eats/internal/adapters/in/http/api"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Commands groups the write use cases exposed over HTTP.
type Commands struct {
	CreateAccount    commands.CreateAccountCommandHandler
	Login            commands.LoginCommandHandler
	VerifyEmail      commands.VerifyEmailCommandHandler
	EditProfile      commands.EditProfileCommandHandler
	CreateRestaurant commands.CreateRestaurantCommandHandler
	EditRestaurant   commands.EditRestaurantCommandHandler
	DeleteRestaurant commands.DeleteRestaurantCommandHandler
	CreateDish       commands.CreateDishCommandHandler
	EditDish         commands.EditDishCommandHandler
	DeleteDish       commands.DeleteDishCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	EditOrder        commands.EditOrderCommandHandler
	TakeOrder        commands.TakeOrderCommandHandler
	CreatePayment    commands.CreatePaymentCommandHandler
	UploadFile       commands.UploadFileCommandHandler
}

// Queries groups the read use cases exposed over HTTP.
type Queries struct {
	GetUserProfile    queries.GetUserProfileQueryHandler
	AllRestaurants    queries.AllRestaurantsQueryHandler
	SearchRestaurants queries.SearchRestaurantsQueryHandler
	GetRestaurant     queries.GetRestaurantQueryHandler
	AllCategories     queries.AllCategoriesQueryHandler
	GetCategory       queries.GetCategoryQueryHandler
	GetOrders         queries.GetOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetPayments       queries.GetPaymentsQueryHandler
}

// Server implements api.ServerInterface. Handlers return errors and leave
// rendering them to the echo error handler.
type Server struct {
	commands Commands
	queries  Queries
	bus      ports.EventBus
	pageSize int
	logger   *slog.Logger
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(cmds Commands, qs Queries, bus ports.EventBus, pageSize int, logger *slog.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		bus:      bus,
		pageSize: pageSize,
		logger:   logger.With("component", "HttpServer"),
	}
}

func ok() api.Result {
	return api.Result{Ok: true}
}

// caller returns the authenticated caller. The route guard refuses
// anonymous requests to protected operations, so a miss here means the
// operation was reached without one.
func caller(c echo.Context) (user.Caller, error) {
	if caller, found := CallerFrom(c); found {
		return caller, nil
	}
	return user.Caller{}, errs.NewForbiddenError(ReasonForbiddenResource)
}

func bind(c echo.Context, body any) error {
	if err := c.Bind(body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func (s *Server) page(number *int) (kernel.Page, error) {
	n := 1
	if number != nil {
		n = *number
	}
	return kernel.NewPage(n, s.pageSize)
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(ctx echo.Context) error {
	var req api.CreateAccountRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}
	role, err := user.ParseRole(string(req.Role))
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateAccountCommand(req.Email, req.Password, role)
	if err != nil {
		return err
	}
	if err = s.commands.CreateAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ok())
}

// Login handles POST /api/v1/login.
func (s *Server) Login(ctx echo.Context) error {
	var req api.LoginRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}
	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return err
	}
	token, err := s.commands.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.LoginResponse{Result: ok(), Token: token})
}

// VerifyEmail handles POST /api/v1/verify-email.
func (s *Server) VerifyEmail(ctx echo.Context) error {
	var req api.VerifyEmailRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}
	cmd, err := commands.NewVerifyEmailCommand(req.Code)
	if err != nil {
		return err
	}
	if err = s.commands.VerifyEmail.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ok())
}

// Me handles GET /api/v1/me.
func (s *Server) Me(ctx echo.Context) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	return s.userProfile(ctx, c.ID())
}

// EditProfile handles PATCH /api/v1/me.
func (s *Server) EditProfile(ctx echo.Context) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	var req api.EditProfileRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	cmd, err := commands.NewEditProfileCommand(c, req.Email, req.Password)
	if err != nil {
		return err
	}
	if err = s.commands.EditProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ok())
}

// UserProfile handles GET /api/v1/users/{userId}.
func (s *Server) UserProfile(ctx echo.Context, userId uint) error {
	return s.userProfile(ctx, kernel.ID(userId))
}

func (s *Server) userProfile(ctx echo.Context, id kernel.ID) error {
	query, err := queries.NewGetUserProfileQuery(id)
	if err != nil {
		return err
	}
	view, err := s.queries.GetUserProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.UserProfileResponse{Result: ok(), User: toAPIUser(view)})
}

// AllRestaurants handles GET /api/v1/restaurants.
func (s *Server) AllRestaurants(ctx echo.Context, params api.PageParams) error {
	page, err := s.page(params.Page)
	if err != nil {
		return err
	}
	query, err := queries.NewAllRestaurantsQuery(page)
	if err != nil {
		return err
	}
	result, err := s.queries.AllRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIRestaurantsPage(result))
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	var req api.CreateRestaurantRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateRestaurantCommand(c, req.Name, req.Address, req.CoverImg, req.CategoryName)
	if err != nil {
		return err
	}
	id, err := s.commands.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.CreatedResponse{Result: ok(), Id: id.Uint()})
}

// SearchRestaurants handles GET /api/v1/restaurant-search.
func (s *Server) SearchRestaurants(ctx echo.Context, params api.SearchRestaurantsParams) error {
	page, err := s.page(params.Page)
	if err != nil {
		return err
	}
	query, err := queries.NewSearchRestaurantsQuery(params.Query, page)
	if err != nil {
		return err
	}
	result, err := s.queries.SearchRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIRestaurantsPage(result))
}

// GetRestaurant handles GET /api/v1/restaurants/{restaurantId}.
func (s *Server) GetRestaurant(ctx echo.Context, restaurantId uint) error {
	query, err := queries.NewGetRestaurantQuery(kernel.ID(restaurantId))
	if err != nil {
		return err
	}
	view, err := s.queries.GetRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.RestaurantResponse{Result: ok(), Restaurant: toAPIRestaurantDetails(view)})
}

// EditRestaurant handles PATCH /api/v1/restaurants/{restaurantId}.
func (s *Server) EditRestaurant(ctx echo.Context, restaurantId uint) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	var req api.EditRestaurantRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	cmd, err := commands.NewEditRestaurantCommand(c, kernel.ID(restaurantId), commands.RestaurantChanges{
		Name:         req.Name,
		Address:      req.Address,
		CoverImg:     req.CoverImg,
		CategoryName: req.CategoryName,
	})
	if err != nil {
		return err
	}
	if err = s.commands.EditRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ok())
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/{restaurantId}.
func (s *Server) DeleteRestaurant(ctx echo.Context, restaurantId uint) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteRestaurantCommand(c, kernel.ID(restaurantId))
	if err != nil {
		return err
	}
	if err = s.commands.DeleteRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ok())
}

// CreateDish handles POST /api/v1/restaurants/{restaurantId}/dishes.
func (s *Server) CreateDish(ctx echo.Context, restaurantId uint) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	var req api.CreateDishRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateDishCommand(c, kernel.ID(restaurantId), commands.DishInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Photo:       req.Photo,
		Options:     fromAPIDishOptions(req.Options),
	})
	if err != nil {
		return err
	}
	id, err := s.commands.CreateDish.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.CreatedResponse{Result: ok(), Id: id.Uint()})
}

// EditDish handles PATCH /api/v1/dishes/{dishId}.
func (s *Server) EditDish(ctx echo.Context, dishId uint) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	var req api.EditDishRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	changes := commands.DishChanges{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Photo:       req.Photo,
	}
	if req.Options != nil {
		options := fromAPIDishOptions(*req.Options)
		changes.Options = &options
	}
	cmd, err := commands.NewEditDishCommand(c, kernel.ID(dishId), changes)
	if err != nil {
		return err
	}
	if err = s.commands.EditDish.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ok())
}

// DeleteDish handles DELETE /api/v1/dishes/{dishId}.
func (s *Server) DeleteDish(ctx echo.Context, dishId uint) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteDishCommand(c, kernel.ID(dishId))
	if err != nil {
		return err
	}
	if err = s.commands.DeleteDish.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ok())
}

// AllCategories handles GET /api/v1/categories.
func (s *Server) AllCategories(ctx echo.Context) error {
	views, err := s.queries.AllCategories.Handle(ctx.Request().Context(), queries.NewAllCategoriesQuery())
	if err != nil {
		return err
	}
	response := api.CategoriesResponse{Result: ok(), Categories: make([]api.Category, len(views))}
	for i, v := range views {
		response.Categories[i] = toAPICategory(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCategory handles GET /api/v1/categories/{slug}.
func (s *Server) GetCategory(ctx echo.Context, slug string, params api.PageParams) error {
	page, err := s.page(params.Page)
	if err != nil {
		return err
	}
	query, err := queries.NewGetCategoryQuery(slug, page)
	if err != nil {
		return err
	}
	view, err := s.queries.GetCategory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	category := toAPICategory(view.Category)
	return ctx.JSON(http.StatusOK, api.CategoryResponse{
		RestaurantsResponse: toAPIRestaurantsPage(view.RestaurantsPage),
		Category:            &category,
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params api.GetOrdersParams) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	var status *order.Status
	if params.Status != nil {
		parsed, parseErr := order.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return parseErr
		}
		status = &parsed
	}
	query, err := queries.NewGetOrdersQuery(c, status)
	if err != nil {
		return err
	}
	views, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	response := api.OrdersResponse{Result: ok(), Orders: make([]api.Order, len(views))}
	for i, v := range views {
		response.Orders[i] = toAPIOrder(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	var req api.CreateOrderRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	selections := make([]order.Selection, len(req.Items))
	for i, item := range req.Items {
		selections[i] = order.Selection{DishID: kernel.ID(item.DishId), Options: fromAPIItemOptions(item.Options)}
	}
	cmd, err := commands.NewCreateOrderCommand(c, kernel.ID(req.RestaurantId), selections)
	if err != nil {
		return err
	}
	id, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.CreatedResponse{Result: ok(), Id: id.Uint()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId uint) error {
	view, err := s.visibleOrder(ctx, orderId)
	if err != nil {
		return err
	}
	o := toAPIOrder(view)
	return ctx.JSON(http.StatusOK, api.OrderResponse{Result: ok(), Order: &o})
}

func (s *Server) visibleOrder(ctx echo.Context, orderID uint) (queries.OrderView, error) {
	c, err := caller(ctx)
	if err != nil {
		return queries.OrderView{}, err
	}
	query, err := queries.NewGetOrderQuery(c, kernel.ID(orderID))
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.queries.GetOrder.Handle(ctx.Request().Context(), query)
}

// EditOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) EditOrder(ctx echo.Context, orderId uint) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	var req api.EditOrderRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	status, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return err
	}
	cmd, err := commands.NewEditOrderCommand(c, kernel.ID(orderId), status)
	if err != nil {
		return err
	}
	if err = s.commands.EditOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ok())
}

// TakeOrder handles POST /api/v1/orders/{orderId}/take.
func (s *Server) TakeOrder(ctx echo.Context, orderId uint) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	cmd, err := commands.NewTakeOrderCommand(c, kernel.ID(orderId))
	if err != nil {
		return err
	}
	if err = s.commands.TakeOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ok())
}

// GetPayments handles GET /api/v1/payments.
func (s *Server) GetPayments(ctx echo.Context) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetPaymentsQuery(c)
	if err != nil {
		return err
	}
	views, err := s.queries.GetPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	response := api.PaymentsResponse{Result: ok(), Payments: make([]api.Payment, len(views))}
	for i, v := range views {
		response.Payments[i] = toAPIPayment(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	c, err := caller(ctx)
	if err != nil {
		return err
	}
	var req api.CreatePaymentRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreatePaymentCommand(c, req.TransactionId, kernel.ID(req.RestaurantId))
	if err != nil {
		return err
	}
	if err = s.commands.CreatePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ok())
}

// Upload handles POST /api/v1/uploads.
func (s *Server) Upload(ctx echo.Context) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("file", err)
	}
	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	cmd, err := commands.NewUploadFileCommand(header.Filename, header.Header.Get(echo.HeaderContentType), file)
	if err != nil {
		return err
	}
	url, err := s.commands.UploadFile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.UploadResponse{Result: ok(), Url: url})
}
