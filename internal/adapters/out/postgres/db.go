package postgres

import (
	"fmt"
	"strings"

	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/paymentrepo"
	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/adapters/out/postgres/userrepo"

	"github.com/glebarez/sqlite"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ConnectionConfig selects the database engine. SQLitePath is only used by
// the sqlite driver; the other fields only by postgres.
type ConnectionConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN renders the postgres keyword/value connection string. Empty fields
// are left out so the driver defaults apply.
func (c ConnectionConfig) DSN() string {
	pairs := []struct{ key, value string }{
		{"host", c.Host},
		{"port", c.Port},
		{"user", c.User},
		{"password", c.Password},
		{"dbname", c.Name},
		{"sslmode", c.SSLMode},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		parts = append(parts, p.key+"="+quoteDSNValue(p.value))
	}
	return strings.Join(parts, " ")
}

func quoteDSNValue(value string) string {
	if !strings.ContainsAny(value, ` '\`) {
		return value
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}

// Open connects gorm to the configured engine. Unique violations are
// translated to gorm.ErrDuplicatedKey so repositories can report conflicts.
//
// Example:
//
//	db, err := postgres.Open(postgres.ConnectionConfig{Driver: "sqlite", SQLitePath: "eats.db"})
//	if err != nil {
//	    return err
//	}
//	err = postgres.Migrate(db)
func Open(cfg ConnectionConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	switch cfg.Driver {
	case DriverPostgres, "":
		return gorm.Open(postgresdriver.Open(cfg.DSN()), gormConfig)
	case DriverSQLite:
		// Foreign keys are off by default in sqlite; cascades rely on them.
		return gorm.Open(sqlite.Open(cfg.SQLitePath+"?_pragma=foreign_keys(1)"), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Models lists every persisted table in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&userrepo.VerificationDTO{},
		&restaurantrepo.CategoryDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&paymentrepo.PaymentDTO{},
	}
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
