package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"eats/cmd"
	"eats/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(v *viper.Viper) *cobra.Command {
	var migrate bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(v)
			if err != nil {
				return err
			}
			return serve(c.Context(), config, migrate)
		},
	}

	c.Flags().String("port", "", "HTTP port (HTTP_PORT)")
	c.Flags().String("bus", "", "event bus driver: memory, amqp, kafka or postgres (BUS_DRIVER)")
	c.Flags().BoolVar(&migrate, "migrate", false, "migrate the schema before serving")
	bindFlag(v, c, "HTTP_PORT", "port")
	bindFlag(v, c, "BUS_DRIVER", "bus")

	return c
}

func serve(ctx context.Context, config cmd.Config, migrate bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := cmd.NewLogger(config)

	db, err := cmd.OpenDatabase(config)
	if err != nil {
		return err
	}
	if migrate {
		if err = postgres.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}

	bus, err := cmd.NewEventBus(ctx, config, db, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := bus.Close(); closeErr != nil {
			logger.Error("Failed to close event bus", "error", closeErr)
		}
	}()

	storage, err := cmd.NewFileStorage(ctx, config, logger)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(config, db, bus, storage, cmd.NewMailer(config, logger), logger)
	if err != nil {
		return err
	}

	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", config.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("Shutting down")
	return e.Shutdown(shutdownCtx)
}
