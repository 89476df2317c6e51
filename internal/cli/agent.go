// Package cli defines the cobra command tree. Commands parse flags and
// arguments, then delegate to the output adapters in internal/adapters/cli.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/agora/internal/wire"
)

// AgentCmd returns the agent command
func AgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Agent identity and discovery",
		Long: `Inspect agent profiles registered on the ledger.

All reads go live to the contract; nothing is cached locally.`,
	}

	cmd.AddCommand(agentBalanceCmd())
	cmd.AddCommand(agentInfoCmd())
	cmd.AddCommand(agentShowCmd())
	cmd.AddCommand(agentFindCmd())

	return cmd
}

func agentBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the calling agent's balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AgentAdapter().Balance(cmd.Context())
		},
	}
}

func agentInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the calling agent's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AgentAdapter().Info(cmd.Context())
		},
	}
}

func agentShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [agent-id]",
		Short: "Show another agent's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AgentAdapter().Show(cmd.Context(), args[0])
		},
	}
}

func agentFindCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "find [capability]",
		Short: "Find agents advertising a capability",
		Long: `Find agents advertising a capability.

Examples:
  agora agent find translation
  agora agent find data-analysis --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AgentAdapter().Find(cmd.Context(), args[0], limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of agents to return")

	return cmd
}
