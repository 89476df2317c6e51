package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/agora/internal/ports/secondary"
	"github.com/example/agora/internal/wire"
)

// JournalCmd returns the journal command
func JournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Local transaction journal",
		Long: `Inspect the local journal of submitted transactions.

The journal is an audit aid for reconciling partial multi-call flows.
It records what this agent submitted; the ledger stays the source of
truth for what committed.`,
	}

	cmd.AddCommand(journalListCmd())

	return cmd
}

func journalListCmd() *cobra.Command {
	var op string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := wire.JournalRepository().List(cmd.Context(), secondary.JournalFilters{
				Operation: op,
				Limit:     limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list journal entries: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No journal entries")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "CREATED\tOPERATION\tENTITY\tTX\tHEIGHT")
			fmt.Fprintln(w, "-------\t---------\t------\t--\t------")

			for _, e := range entries {
				entity := e.EntityID
				if entity == "" {
					entity = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					e.CreatedAt,
					e.Operation,
					entity,
					e.TxHash,
					e.Height,
				)
			}

			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&op, "op", "", "Only show entries for this operation")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of entries to show")

	return cmd
}
