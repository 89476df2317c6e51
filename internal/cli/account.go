package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/agora/internal/wire"
)

// AccountCmd returns the account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account summary and reconciliation",
	}

	cmd.AddCommand(accountSummaryCmd())
	cmd.AddCommand(accountReconcileCmd())

	return cmd
}

func accountSummaryCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate financial totals for the calling agent",
		Long: `Show aggregate financial totals for the calling agent.

Period bounds accept a unix timestamp or YYYY-MM-DD. Omitted bounds
mean all time.

Examples:
  agora account summary
  agora account summary --start 2026-01-01 --end 2026-03-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			periodStart, err := parseTimestamp("start", start)
			if err != nil {
				return err
			}
			periodEnd, err := parseTimestamp("end", end)
			if err != nil {
				return err
			}

			return wire.AgentAdapter().Summary(cmd.Context(), periodStart, periodEnd)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Period start (unix timestamp or YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Period end (unix timestamp or YYYY-MM-DD)")

	return cmd
}

func accountReconcileCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run contract-side account reconciliation over a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			periodStart, err := parseTimestamp("start", start)
			if err != nil {
				return err
			}
			periodEnd, err := parseTimestamp("end", end)
			if err != nil {
				return err
			}

			return wire.CommerceAdapter().Reconcile(cmd.Context(), periodStart, periodEnd)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Period start (unix timestamp or YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Period end (unix timestamp or YYYY-MM-DD)")

	return cmd
}
