package main

import (
	"fmt"
	"math/rand"
	"time"

	"eats/cmd"
	"eats/internal/adapters/out/eventbus"
	"eats/internal/adapters/out/postgres"
	"eats/internal/seed"

	"github.com/jaswdr/faker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSeedCommand(v *viper.Viper) *cobra.Command {
	var (
		opts     seed.Options
		fakeSeed int64
	)

	c := &cobra.Command{
		Use:   "seed",
		Short: "Create an owner account and a demo catalog",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(v)
			if err != nil {
				return err
			}
			if config.JWTSecret == "" {
				// Seeding issues no tokens.
				config.JWTSecret = "seed"
			}
			logger := cmd.NewLogger(config)

			db, err := cmd.OpenDatabase(config)
			if err != nil {
				return err
			}
			if err = postgres.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}

			hub := eventbus.NewHub(config.BusBuffer, logger)
			defer hub.Close()

			app, err := cmd.NewCompositionRoot(config, db, hub, nil, cmd.NewMailer(config, logger), logger)
			if err != nil {
				return err
			}

			if fakeSeed == 0 {
				fakeSeed = time.Now().UnixNano()
			}
			fake := faker.NewWithSeed(rand.NewSource(fakeSeed))

			result, err := app.CreateSeeder(fake, c.ErrOrStderr()).Run(c.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "Seeded %d restaurants with %d dishes for %s (password %q)\n",
				len(result.Restaurants), result.Dishes, opts.OwnerEmail, opts.OwnerPassword)
			return nil
		},
	}

	c.Flags().IntVar(&opts.Restaurants, "restaurants", seed.DefaultRestaurants, "number of restaurants to create")
	c.Flags().IntVar(&opts.Dishes, "dishes", seed.DefaultDishes, "dishes per restaurant")
	c.Flags().StringVar(&opts.OwnerEmail, "owner-email", seed.DefaultOwnerEmail, "email of the owner account")
	c.Flags().StringVar(&opts.OwnerPassword, "owner-password", seed.DefaultOwnerPassword, "password of the owner account")
	c.Flags().Int64Var(&fakeSeed, "seed", 0, "random seed for reproducible data; 0 picks one")

	return c
}
