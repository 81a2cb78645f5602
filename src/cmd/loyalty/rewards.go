package main

import (
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/app"
	"github.com/spf13/cobra"
)

func rewardsCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "Reward maintenance commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "expire",
		Short:   "Mark every overdue pending reward as expired",
		PreRunE: state.load,
		PostRun: state.close,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.ExpireRewards(cmd.Context(), state.cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expired %d reward(s).\n", n)
			return nil
		},
	})
	return cmd
}
