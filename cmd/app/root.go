package main

import (
	"eats/cmd"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCommand() *cobra.Command {
	v := cmd.NewViper()

	root := &cobra.Command{
		Use:           "eats",
		Short:         "Food delivery backend: accounts, catalog, orders and live order updates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(v),
		newMigrateCommand(v),
		newSeedCommand(v),
	)
	return root
}

// bindFlag lets a flag override the environment key of the same setting.
func bindFlag(v *viper.Viper, c *cobra.Command, key, flag string) {
	cobra.CheckErr(v.BindPFlag(key, c.Flags().Lookup(flag)))
}
