package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/wire"
)

// TransferCmd returns the transfer command
func TransferCmd() *cobra.Command {
	var memo string
	var legs []string

	cmd := &cobra.Command{
		Use:   "transfer [to-agent-id] [amount]",
		Short: "Transfer balance to another agent",
		Long: `Transfer balance to another agent.

With --leg flags and no positional arguments, all legs execute in a
single batch transaction. Each --leg is to_agent_id:amount[:memo].

Examples:
  agora transfer agent_bob 500 --memo "invoice inv_1"
  agora transfer --leg "agent_bob:500:rent" --leg "agent_carol:250"`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(legs) > 0 {
				if len(args) > 0 {
					return fmt.Errorf("--leg cannot be combined with positional arguments")
				}
				return runBatchTransfer(cmd, legs)
			}

			if len(args) != 2 {
				return fmt.Errorf("expected [to-agent-id] [amount], or --leg flags")
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			return wire.AgentAdapter().Transfer(cmd.Context(), args[0], amount, memo)
		},
	}

	cmd.Flags().StringVar(&memo, "memo", "", "Memo recorded with the transfer")
	cmd.Flags().StringArrayVar(&legs, "leg", nil, "Batch leg as to_agent_id:amount[:memo] (repeatable)")

	return cmd
}

func runBatchTransfer(cmd *cobra.Command, legs []string) error {
	transfers := make([]primary.Transfer, 0, len(legs))
	for _, spec := range legs {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) < 2 {
			return fmt.Errorf("invalid --leg %q: want to_agent_id:amount[:memo]", spec)
		}
		amount, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil || amount <= 0 {
			return fmt.Errorf("invalid amount in --leg %q", spec)
		}
		transfer := primary.Transfer{ToAgentID: parts[0], Amount: amount}
		if len(parts) == 3 {
			transfer.Memo = parts[2]
		}
		transfers = append(transfers, transfer)
	}

	res, err := wire.AgentService().BatchTransfer(cmd.Context(), transfers)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Batch of %d transfers committed (tx %s)\n", len(transfers), res.TxHash)
	return nil
}
