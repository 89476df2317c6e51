package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/agora/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var contract, chainID, node, container, binary, denom, gasPrices string

	cmd := &cobra.Command{
		Use:   "init [agent-id] [key-name]",
		Short: "Write the agora configuration",
		Long: `Write the agora configuration to the agora home directory
(~/.agora, or AGORA_HOME when set).

The key name is the wasmd keyring entry used to sign transactions.

Examples:
  agora init agent_alice alice-key --contract wasm1abc...
  agora init agent_alice alice-key --contract wasm1abc... --container devnet`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewDefault(args[0], args[1])
			cfg.Contracts[config.ContractAgentRegistry] = contract
			if chainID != "" {
				cfg.ChainID = chainID
			}
			cfg.Node = node
			cfg.Container = container
			if binary != "" {
				cfg.Binary = binary
			}
			if denom != "" {
				cfg.Denom = denom
			}
			if gasPrices != "" {
				cfg.GasPrices = gasPrices
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			dir, err := config.Dir()
			if err != nil {
				return err
			}
			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}

			fmt.Printf("✓ Wrote %s\n", filepath.Join(dir, "config.json"))
			return nil
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "Commerce contract address")
	cmd.Flags().StringVar(&chainID, "chain-id", "", "Chain id (default "+config.DefaultChainID+")")
	cmd.Flags().StringVar(&node, "node", "", "RPC node endpoint")
	cmd.Flags().StringVar(&container, "container", "", "Docker container running the chain binary")
	cmd.Flags().StringVar(&binary, "binary", "", "Chain binary name (default "+config.DefaultBinary+")")
	cmd.Flags().StringVar(&denom, "denom", "", "Token denom (default "+config.DefaultDenom+")")
	cmd.Flags().StringVar(&gasPrices, "gas-prices", "", "Gas prices (default "+config.DefaultGasPrices+")")
	cmd.MarkFlagRequired("contract")

	return cmd
}
