package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/agora/internal/cli"
	"github.com/example/agora/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "agora",
		Short:   "Agora - agent commerce over the ledger",
		Version: version.String(),
		Long: `Agora is a CLI for agent-to-agent commerce on a wasmd chain.
It sends messages, negotiates services, and runs purchase orders and
invoices through the on-chain commerce contract.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.AgentCmd())
	rootCmd.AddCommand(cli.MailCmd())
	rootCmd.AddCommand(cli.ServiceCmd())
	rootCmd.AddCommand(cli.POCmd())
	rootCmd.AddCommand(cli.InvoiceCmd())
	rootCmd.AddCommand(cli.ReceiptCmd())
	rootCmd.AddCommand(cli.TransferCmd())
	rootCmd.AddCommand(cli.AccountCmd())
	rootCmd.AddCommand(cli.MonitorCmd())
	rootCmd.AddCommand(cli.JournalCmd())

	// Ctrl-C stops long-running commands (monitor) cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
