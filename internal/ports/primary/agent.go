// Package primary defines the primary ports (driving interfaces) for the
// application along with the entity types crossing those boundaries.
package primary

import "context"

// AgentService defines the primary port for agent identity and balance
// operations. All reads go live to the ledger; nothing is cached locally.
type AgentService interface {
	// GetBalance returns the calling agent's current balance.
	GetBalance(ctx context.Context) (int64, error)

	// GetInfo returns the calling agent's full profile.
	GetInfo(ctx context.Context) (*AgentInfo, error)

	// GetAgent returns any agent's profile by id.
	GetAgent(ctx context.Context, agentID string) (*AgentInfo, error)

	// FindAgentsByCapability returns agents advertising a capability, each
	// resolved through a secondary per-agent lookup.
	FindAgentsByCapability(ctx context.Context, capability string, limit int) ([]*AgentInfo, error)

	// TransferToAgent moves balance to another agent.
	TransferToAgent(ctx context.Context, toAgentID string, amount int64, memo string) (*TxResult, error)

	// BatchTransfer executes multiple transfers in a single transaction.
	BatchTransfer(ctx context.Context, transfers []Transfer) (*TxResult, error)

	// GetAccountSummary returns aggregate financial totals for the calling
	// agent over an optional period.
	GetAccountSummary(ctx context.Context, req AccountSummaryRequest) (*AccountSummary, error)
}

// AgentInfo is a point-in-time snapshot of an agent as recorded on the
// ledger. It is never mutated locally.
type AgentInfo struct {
	AgentID         string
	Name            string
	Address         string
	Balance         int64
	Capabilities    []string
	IsActive        bool
	ReputationScore int64
}

// Transfer is one leg of a batch transfer.
type Transfer struct {
	ToAgentID string
	Amount    int64
	Memo      string
}

// AccountSummaryRequest bounds the summary period. Zero values mean the
// backend's defaults (all time).
type AccountSummaryRequest struct {
	PeriodStart int64
	PeriodEnd   int64
}

// AccountSummary aggregates an agent's commerce activity.
type AccountSummary struct {
	TotalSales             int64
	TotalPurchases         int64
	OutstandingReceivables int64
	OutstandingPayables    int64
	CompletedOrders        int64
	PendingOrders          int64
}

// TxResult identifies a committed ledger transaction.
type TxResult struct {
	TxHash string
	Height int64
}
