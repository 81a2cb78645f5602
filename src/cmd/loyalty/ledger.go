package main

import (
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/app"
	"github.com/spf13/cobra"
)

func ledgerCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger audit commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "verify [customer-id]",
		Short:   "Replay a customer's ledger entries and compare with the stored balance",
		Args:    cobra.ExactArgs(1),
		PreRunE: state.load,
		PostRun: state.close,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.VerifyLedger(cmd.Context(), state.cfg, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !result.Consistent {
				fmt.Fprintf(out, "Ledger INCONSISTENT for %s: %s\n", result.CustomerID, result.Problem)
				return fmt.Errorf("ledger verification failed")
			}
			fmt.Fprintf(out, "Ledger OK for %s: %d entries, %d points.\n",
				result.CustomerID, result.EntryCount, result.CurrentPoints)
			return nil
		},
	})
	return cmd
}
