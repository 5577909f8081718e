package main

import (
	"fmt"

	"eats/cmd"
	"eats/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMigrateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(v)
			if err != nil {
				return err
			}
			db, err := cmd.OpenDatabase(config)
			if err != nil {
				return err
			}
			if err = postgres.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			fmt.Fprintln(c.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}
