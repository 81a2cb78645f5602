package main

import (
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/app"
	"github.com/spf13/cobra"
)

func migrateCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Short:   "Create or update the database schema",
		PreRunE: state.load,
		PostRun: state.close,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Migrate(state.cfg); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date.")
			return nil
		},
	}
}
