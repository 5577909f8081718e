package cmd

import (
	"io"
	"log/slog"

	httpin "eats/internal/adapters/in/http"
	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/security"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/jobs"
	"eats/internal/seed"

	"github.com/jaswdr/faker"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	bus     ports.EventBus
	storage ports.FileStorage
	mailer  ports.Mailer
	hasher  ports.PasswordHasher
	issuer  ports.TokenIssuer
	policy  services.OrderAccessPolicy

	logger *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	bus ports.EventBus,
	storage ports.FileStorage,
	mailer ports.Mailer,
	logger *slog.Logger,
) (CompositionRoot, error) {
	issuer, err := security.NewJWTIssuer(config.JWTSecret, config.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        bus,
		storage:    storage,
		mailer:     mailer,
		hasher:     security.NewBcryptHasher(config.BcryptCost),
		issuer:     issuer,
		policy:     services.NewOrderAccessPolicy(config.OrdersEnforceMonotonic),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	return commands.NewCreateAccountCommandHandler(c.accountUoWFactory(), c.hasher, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWFactory(), c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateVerifyEmailCommandHandler() commands.VerifyEmailCommandHandler {
	return commands.NewVerifyEmailCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateEditProfileCommandHandler() commands.EditProfileCommandHandler {
	return commands.NewEditProfileCommandHandler(c.accountUoWFactory(), c.hasher, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateEditRestaurantCommandHandler() commands.EditRestaurantCommandHandler {
	return commands.NewEditRestaurantCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	return commands.NewDeleteRestaurantCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateEditDishCommandHandler() commands.EditDishCommandHandler {
	return commands.NewEditDishCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDishCommandHandler() commands.DeleteDishCommandHandler {
	return commands.NewDeleteDishCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.bus, c.logger)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory(), c.policy, c.bus, c.logger)
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	return commands.NewTakeOrderCommandHandler(c.orderUoWFactory(), c.bus, c.logger)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	return commands.NewCreatePaymentCommandHandler(c.paymentUoWFactory(), c.config.PromotionDays)
}

func (c *CompositionRoot) CreateExpirePromotionsCommandHandler() commands.ExpirePromotionsCommandHandler {
	return commands.NewExpirePromotionsCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateUploadFileCommandHandler() commands.UploadFileCommandHandler {
	return commands.NewUploadFileCommandHandler(c.storage)
}

func (c *CompositionRoot) CreateGetUserProfileQueryHandler() queries.GetUserProfileQueryHandler {
	return queries.NewGetUserProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAllRestaurantsQueryHandler() queries.AllRestaurantsQueryHandler {
	return queries.NewAllRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchRestaurantsQueryHandler() queries.SearchRestaurantsQueryHandler {
	return queries.NewSearchRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAllCategoriesQueryHandler() queries.AllCategoriesQueryHandler {
	return queries.NewAllCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoryQueryHandler() queries.GetCategoryQueryHandler {
	return queries.NewGetCategoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetPaymentsQueryHandler() queries.GetPaymentsQueryHandler {
	return queries.NewGetPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Commands{
			CreateAccount:    c.CreateCreateAccountCommandHandler(),
			Login:            c.CreateLoginCommandHandler(),
			VerifyEmail:      c.CreateVerifyEmailCommandHandler(),
			EditProfile:      c.CreateEditProfileCommandHandler(),
			CreateRestaurant: c.CreateCreateRestaurantCommandHandler(),
			EditRestaurant:   c.CreateEditRestaurantCommandHandler(),
			DeleteRestaurant: c.CreateDeleteRestaurantCommandHandler(),
			CreateDish:       c.CreateCreateDishCommandHandler(),
			EditDish:         c.CreateEditDishCommandHandler(),
			DeleteDish:       c.CreateDeleteDishCommandHandler(),
			CreateOrder:      c.CreateCreateOrderCommandHandler(),
			EditOrder:        c.CreateEditOrderCommandHandler(),
			TakeOrder:        c.CreateTakeOrderCommandHandler(),
			CreatePayment:    c.CreateCreatePaymentCommandHandler(),
			UploadFile:       c.CreateUploadFileCommandHandler(),
		},
		httpin.Queries{
			GetUserProfile:    c.CreateGetUserProfileQueryHandler(),
			AllRestaurants:    c.CreateAllRestaurantsQueryHandler(),
			SearchRestaurants: c.CreateSearchRestaurantsQueryHandler(),
			GetRestaurant:     c.CreateGetRestaurantQueryHandler(),
			AllCategories:     c.CreateAllCategoriesQueryHandler(),
			GetCategory:       c.CreateGetCategoryQueryHandler(),
			GetOrders:         c.CreateGetOrdersQueryHandler(),
			GetOrder:          c.CreateGetOrderQueryHandler(),
			GetPayments:       c.CreateGetPaymentsQueryHandler(),
		},
		c.bus,
		c.config.PageSize,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateServer(), c.issuer, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpirePromotionsCommandHandler(), c.config.PromotionSweepSpec, c.logger)
}

func (c *CompositionRoot) CreateSeeder(fake faker.Faker, out io.Writer) *seed.Seeder {
	return seed.NewSeeder(
		c.accountUoWFactory(),
		c.CreateCreateRestaurantCommandHandler(),
		c.CreateCreateDishCommandHandler(),
		c.hasher,
		fake,
		out,
	)
}

// Issuer exposes the token issuer, e.g. for tests that need a bearer token.
func (c *CompositionRoot) Issuer() ports.TokenIssuer {
	return c.issuer
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
