package postgres_test

import (
	"testing"

	"eats/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
)

func TestConnectionConfig_DSN(t *testing.T) {
	tests := []struct {
		name   string
		config postgres.ConnectionConfig
		want   string
	}{
		{
			name: "all fields",
			config: postgres.ConnectionConfig{
				Host: "db", Port: "5432", User: "eats", Password: "secret", Name: "eats", SSLMode: "disable",
			},
			want: "host=db port=5432 user=eats password=secret dbname=eats sslmode=disable",
		},
		{
			name:   "empty password is left out",
			config: postgres.ConnectionConfig{Host: "db", Port: "5432", User: "eats", Name: "eats", SSLMode: "disable"},
			want:   "host=db port=5432 user=eats dbname=eats sslmode=disable",
		},
		{
			name:   "values with spaces and quotes are quoted",
			config: postgres.ConnectionConfig{Host: "db", Password: `it's a \secret`},
			want:   `host=db password='it\'s a \\secret'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.DSN())
		})
	}
}
