// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/example/agora/internal/ports/primary"
)

// AgentAdapter is a thin adapter that translates CLI operations to
// AgentService calls. It depends only on the AgentService interface,
// enabling easy testing with mocks.
type AgentAdapter struct {
	service primary.AgentService
	out     io.Writer
}

// NewAgentAdapter creates a new AgentAdapter with the given service.
func NewAgentAdapter(service primary.AgentService, out io.Writer) *AgentAdapter {
	return &AgentAdapter{
		service: service,
		out:     out,
	}
}

// Balance prints the calling agent's current balance.
func (a *AgentAdapter) Balance(ctx context.Context) error {
	balance, err := a.service.GetBalance(ctx)
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}

	fmt.Fprintf(a.out, "Balance: %d\n", balance)
	return nil
}

// Info prints the calling agent's full profile.
func (a *AgentAdapter) Info(ctx context.Context) error {
	info, err := a.service.GetInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get agent info: %w", err)
	}

	a.printInfo(info)
	return nil
}

// Show prints another agent's profile by id.
func (a *AgentAdapter) Show(ctx context.Context, agentID string) error {
	info, err := a.service.GetAgent(ctx, agentID)
	if err != nil {
		return fmt.Errorf("failed to get agent: %w", err)
	}

	a.printInfo(info)
	return nil
}

func (a *AgentAdapter) printInfo(info *primary.AgentInfo) {
	fmt.Fprintf(a.out, "\nAgent:      %s\n", info.AgentID)
	fmt.Fprintf(a.out, "Name:       %s\n", info.Name)
	fmt.Fprintf(a.out, "Address:    %s\n", info.Address)
	fmt.Fprintf(a.out, "Balance:    %d\n", info.Balance)
	fmt.Fprintf(a.out, "Active:     %t\n", info.IsActive)
	fmt.Fprintf(a.out, "Reputation: %d\n", info.ReputationScore)
	if len(info.Capabilities) > 0 {
		fmt.Fprintf(a.out, "Capabilities: %s\n", strings.Join(info.Capabilities, ", "))
	}
	fmt.Fprintln(a.out)
}

// Find lists agents advertising a capability.
func (a *AgentAdapter) Find(ctx context.Context, capability string, limit int) error {
	agents, err := a.service.FindAgentsByCapability(ctx, capability, limit)
	if err != nil {
		return fmt.Errorf("failed to find agents: %w", err)
	}

	if len(agents) == 0 {
		fmt.Fprintf(a.out, "No agents found with capability %q\n", capability)
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-20s %-12s %s\n", "AGENT", "NAME", "REPUTATION", "CAPABILITIES")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, ag := range agents {
		fmt.Fprintf(a.out, "%-20s %-20s %-12d %s\n", ag.AgentID, ag.Name, ag.ReputationScore, strings.Join(ag.Capabilities, ", "))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Transfer moves balance to another agent.
func (a *AgentAdapter) Transfer(ctx context.Context, toAgentID string, amount int64, memo string) error {
	res, err := a.service.TransferToAgent(ctx, toAgentID, amount, memo)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Transferred %d to %s (tx %s)\n", amount, toAgentID, res.TxHash)
	return nil
}

// Summary prints aggregate financial totals for the calling agent.
func (a *AgentAdapter) Summary(ctx context.Context, periodStart, periodEnd int64) error {
	summary, err := a.service.GetAccountSummary(ctx, primary.AccountSummaryRequest{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	if err != nil {
		return fmt.Errorf("failed to get account summary: %w", err)
	}

	fmt.Fprintln(a.out, "\nAccount Summary")
	if periodStart != 0 || periodEnd != 0 {
		fmt.Fprintf(a.out, "Period: %s to %s\n", formatUnix(periodStart), formatUnix(periodEnd))
	}
	fmt.Fprintf(a.out, "  Total sales:             %d\n", summary.TotalSales)
	fmt.Fprintf(a.out, "  Total purchases:         %d\n", summary.TotalPurchases)
	fmt.Fprintf(a.out, "  Outstanding receivables: %d\n", summary.OutstandingReceivables)
	fmt.Fprintf(a.out, "  Outstanding payables:    %d\n", summary.OutstandingPayables)
	fmt.Fprintf(a.out, "  Completed orders:        %d\n", summary.CompletedOrders)
	fmt.Fprintf(a.out, "  Pending orders:          %d\n", summary.PendingOrders)
	fmt.Fprintln(a.out)

	return nil
}

// formatUnix renders a unix timestamp for display. Zero means unbounded.
func formatUnix(ts int64) string {
	if ts == 0 {
		return "-"
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05")
}
