// Package seed fills an empty database with a demo catalog: one owner
// account and a number of fake restaurants with menus.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
)

const (
	DefaultOwnerEmail    = "owner@eats.local"
	DefaultOwnerPassword = "owner-password"
	DefaultRestaurants   = 20
	DefaultDishes        = 6

	maxDescription = 140
)

var categories = []string{"Pizza", "Korean BBQ", "Burgers", "Sushi", "Vegan", "Italian Food", "Desserts"}

var dishWords = []string{"Bowl", "Burger", "Pizza", "Ramen", "Salad", "Tacos", "Curry", "Wrap", "Noodles", "Platter"}

// Options controls how much data a run creates.
type Options struct {
	OwnerEmail    string
	OwnerPassword string
	Restaurants   int
	Dishes        int
}

func (o Options) withDefaults() Options {
	if o.OwnerEmail == "" {
		o.OwnerEmail = DefaultOwnerEmail
	}
	if o.OwnerPassword == "" {
		o.OwnerPassword = DefaultOwnerPassword
	}
	if o.Restaurants <= 0 {
		o.Restaurants = DefaultRestaurants
	}
	if o.Dishes <= 0 {
		o.Dishes = DefaultDishes
	}
	return o
}

// Result reports what a run created.
type Result struct {
	Owner       kernel.ID
	Restaurants []kernel.ID
	Dishes      int
}

// Seeder creates the demo catalog through the regular catalog use cases.
type Seeder struct {
	accounts         commands.AccountUoWFactory
	createRestaurant commands.CreateRestaurantCommandHandler
	createDish       commands.CreateDishCommandHandler
	hasher           ports.PasswordHasher

	fake faker.Faker
	out  io.Writer
}

func NewSeeder(
	accounts commands.AccountUoWFactory,
	createRestaurant commands.CreateRestaurantCommandHandler,
	createDish commands.CreateDishCommandHandler,
	hasher ports.PasswordHasher,
	fake faker.Faker,
	out io.Writer,
) *Seeder {
	if out == nil {
		out = io.Discard
	}
	return &Seeder{
		accounts:         accounts,
		createRestaurant: createRestaurant,
		createDish:       createDish,
		hasher:           hasher,
		fake:             fake,
		out:              out,
	}
}

// Run creates the owner when missing and adds opts.Restaurants restaurants
// to it.
func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	opts = opts.withDefaults()

	owner, err := s.ensureOwner(ctx, opts.OwnerEmail, opts.OwnerPassword)
	if err != nil {
		return Result{}, fmt.Errorf("seed owner: %w", err)
	}

	result := Result{Owner: owner.ID()}

	bar := progressbar.NewOptions(opts.Restaurants,
		progressbar.OptionSetWriter(s.out),
		progressbar.OptionSetDescription("Seeding restaurants"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	for range opts.Restaurants {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		id, dishes, err := s.seedRestaurant(ctx, owner, opts.Dishes)
		if err != nil {
			return result, err
		}
		result.Restaurants = append(result.Restaurants, id)
		result.Dishes += dishes
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return result, nil
}

func (s *Seeder) ensureOwner(ctx context.Context, email, password string) (user.Caller, error) {
	uow := s.accounts.Create()
	if err := uow.Begin(ctx); err != nil {
		return user.Caller{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()

	existing, err := users.GetByEmail(ctx, user.NormalizeEmail(email))
	switch {
	case err == nil:
		if existing.Role() != user.Owner {
			return user.Caller{}, fmt.Errorf("%s exists and is not an owner", email)
		}
		return existing.Caller()
	case !errors.Is(err, errs.ErrObjectNotFound):
		return user.Caller{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return user.Caller{}, err
	}
	owner, err := user.NewUser(email, hash, user.Owner)
	if err != nil {
		return user.Caller{}, err
	}
	owner.Verify()

	if err = users.Add(ctx, owner); err != nil {
		return user.Caller{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return user.Caller{}, err
	}

	return owner.Caller()
}

func (s *Seeder) seedRestaurant(ctx context.Context, owner user.Caller, dishes int) (kernel.ID, int, error) {
	cmd, err := commands.NewCreateRestaurantCommand(
		owner,
		s.restaurantName(),
		s.fake.Address().Address(),
		s.fake.Internet().URL(),
		s.fake.RandomStringElement(categories),
	)
	if err != nil {
		return 0, 0, err
	}
	restaurantID, err := s.createRestaurant.Handle(ctx, cmd)
	if err != nil {
		return 0, 0, fmt.Errorf("seed restaurant: %w", err)
	}

	for i := range dishes {
		dishCmd, err := commands.NewCreateDishCommand(owner, restaurantID, s.dish(i))
		if err != nil {
			return 0, 0, err
		}
		if _, err = s.createDish.Handle(ctx, dishCmd); err != nil {
			return 0, 0, fmt.Errorf("seed dish: %w", err)
		}
	}

	return restaurantID, dishes, nil
}

func (s *Seeder) restaurantName() string {
	name := strings.TrimSpace(s.fake.Company().Name())
	if len(name) < 5 {
		name += " Kitchen"
	}
	return name
}

func (s *Seeder) dish(n int) commands.DishInput {
	description := s.fake.Lorem().Sentence(8)
	if len(description) > maxDescription {
		description = description[:maxDescription]
	}

	dish := commands.DishInput{
		Name:        fmt.Sprintf("%s %s", s.fake.Lorem().Word(), s.fake.RandomStringElement(dishWords)),
		Price:       s.fake.IntBetween(5, 40) * 100,
		Description: description,
		Photo:       s.fake.Internet().URL(),
	}
	if len(dish.Name) < 5 {
		dish.Name = fmt.Sprintf("House %s", dish.Name)
	}

	// Every other dish gets a size choice and a flat extra.
	if n%2 == 0 {
		dish.Options = []restaurant.DishOption{
			{
				Name: "Size",
				Choices: []restaurant.DishChoice{
					{Name: "Regular"},
					{Name: "Large", Extra: 300},
				},
			},
			{Name: "Extra sauce", Extra: 100},
		}
	}
	return dish
}
