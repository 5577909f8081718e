package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"eats/internal/adapters/out/eventbus"
	"eats/internal/adapters/out/eventbus/amqp"
	"eats/internal/adapters/out/eventbus/kafka"
	"eats/internal/adapters/out/eventbus/pgnotify"
	"eats/internal/adapters/out/mail"
	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/storage"
	"eats/internal/core/ports"

	"gorm.io/gorm"
)

// ErrStorageNotConfigured is returned by uploads when S3_BUCKET is unset.
var ErrStorageNotConfigured = errors.New("file storage is not configured")

// EventBus is a bus the process owns and must close on shutdown.
type EventBus interface {
	ports.EventBus
	io.Closer
}

func NewLogger(config Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: config.SlogLevel()}))
}

// busListenTimeout bounds how long startup waits for the LISTEN connection.
const busListenTimeout = 15 * time.Second

func (c Config) connectionConfig() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Driver:     c.DBDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSslMode,
		SQLitePath: c.DBSQLitePath,
	}
}

func OpenDatabase(config Config) (*gorm.DB, error) {
	db, err := postgres.Open(config.connectionConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// NewEventBus builds the bus selected by BUS_DRIVER. Every driver serves
// subscriptions from an in-process hub. db is only used by the postgres
// driver.
func NewEventBus(ctx context.Context, config Config, db *gorm.DB, logger *slog.Logger) (EventBus, error) {
	hub := eventbus.NewHub(config.BusBuffer, logger)

	switch config.BusDriver {
	case BusDriverMemory, "":
		return hub, nil
	case BusDriverAMQP:
		bus, err := amqp.Dial(config.AMQPURL, hub, logger)
		if err != nil {
			return nil, err
		}
		return bus, nil
	case BusDriverKafka:
		bus, err := kafka.Dial(config.KafkaBrokers, hub, logger)
		if err != nil {
			return nil, err
		}
		return bus, nil
	case BusDriverPostgres:
		ctx, cancel := context.WithTimeout(ctx, busListenTimeout)
		defer cancel()
		bus, err := pgnotify.Dial(ctx, config.connectionConfig().DSN(), db, hub, logger)
		if err != nil {
			return nil, err
		}
		return bus, nil
	default:
		return nil, fmt.Errorf("unsupported bus driver %q", config.BusDriver)
	}
}

func NewMailer(config Config, logger *slog.Logger) ports.Mailer {
	if config.MailgunDomain == "" {
		logger.Warn("MAILGUN_DOMAIN is not set, verification emails are only logged")
		return mail.NewLogMailer(logger)
	}
	return mail.NewMailgunMailer(mail.MailgunConfig{
		BaseURL: config.MailgunBaseURL,
		Domain:  config.MailgunDomain,
		APIKey:  config.MailgunAPIKey,
		From:    config.MailFrom,
	}, nil)
}

func NewFileStorage(ctx context.Context, config Config, logger *slog.Logger) (ports.FileStorage, error) {
	if config.S3Bucket == "" {
		logger.Warn("S3_BUCKET is not set, uploads are disabled")
		return unconfiguredStorage{}, nil
	}
	s3, err := storage.NewS3Storage(ctx, config.S3Bucket, config.S3Region, config.S3PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure s3 storage: %w", err)
	}
	return s3, nil
}

type unconfiguredStorage struct{}

func (unconfiguredStorage) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrStorageNotConfigured
}
