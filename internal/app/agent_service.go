package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/ports/secondary"
)

// AgentServiceImpl implements the AgentService interface over the
// contract gateway.
type AgentServiceImpl struct {
	gateway  secondary.ContractGateway
	contract string
	agentID  string
	denom    string
}

// NewAgentService creates a new AgentService bound to the calling agent.
func NewAgentService(gateway secondary.ContractGateway, contract, agentID, denom string) *AgentServiceImpl {
	return &AgentServiceImpl{
		gateway:  gateway,
		contract: contract,
		agentID:  agentID,
		denom:    denom,
	}
}

// agentRecord is the wire form of an agent profile.
type agentRecord struct {
	AgentID         string   `json:"agent_id"`
	Name            string   `json:"name"`
	WalletAddress   string   `json:"wallet_address"`
	Balance         wireCoin `json:"balance"`
	Capabilities    []string `json:"capabilities"`
	IsActive        bool     `json:"is_active"`
	ReputationScore flexInt  `json:"reputation_score"`
}

func (r *agentRecord) toInfo() *primary.AgentInfo {
	return &primary.AgentInfo{
		AgentID:         r.AgentID,
		Name:            r.Name,
		Address:         r.WalletAddress,
		Balance:         int64(r.Balance.Amount),
		Capabilities:    r.Capabilities,
		IsActive:        r.IsActive,
		ReputationScore: int64(r.ReputationScore),
	}
}

// GetBalance returns the calling agent's current balance.
func (s *AgentServiceImpl) GetBalance(ctx context.Context) (int64, error) {
	query := envelope("agent_balance", map[string]any{"agent_id": s.agentID})

	var resp struct {
		Balance wireCoin `json:"balance"`
	}
	if err := s.gateway.Query(ctx, s.contract, query, &resp); err != nil {
		return 0, err
	}
	return int64(resp.Balance.Amount), nil
}

// GetInfo returns the calling agent's profile.
func (s *AgentServiceImpl) GetInfo(ctx context.Context) (*primary.AgentInfo, error) {
	return s.GetAgent(ctx, s.agentID)
}

// GetAgent returns any agent's profile by id.
func (s *AgentServiceImpl) GetAgent(ctx context.Context, agentID string) (*primary.AgentInfo, error) {
	query := envelope("agent", map[string]any{"agent_id": agentID})

	var record agentRecord
	if err := s.gateway.Query(ctx, s.contract, query, &record); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, &primary.NotFoundError{Entity: "agent", ID: agentID}
		}
		return nil, err
	}
	return record.toInfo(), nil
}

// FindAgentsByCapability returns agents advertising a capability. The
// contract answers with identifiers only; each profile is resolved through
// a follow-up lookup.
func (s *AgentServiceImpl) FindAgentsByCapability(ctx context.Context, capability string, limit int) ([]*primary.AgentInfo, error) {
	if limit <= 0 {
		limit = 10
	}
	query := envelope("agents_by_capability", map[string]any{
		"capability": capability,
		"limit":      limit,
	})

	var resp struct {
		Agents []struct {
			AgentID string `json:"agent_id"`
		} `json:"agents"`
	}
	if err := s.gateway.Query(ctx, s.contract, query, &resp); err != nil {
		return nil, err
	}

	agents := make([]*primary.AgentInfo, 0, len(resp.Agents))
	for _, a := range resp.Agents {
		info, err := s.GetAgent(ctx, a.AgentID)
		if err != nil {
			return nil, fmt.Errorf("resolve agent %s: %w", a.AgentID, err)
		}
		agents = append(agents, info)
	}
	return agents, nil
}

// TransferToAgent moves balance to another agent.
func (s *AgentServiceImpl) TransferToAgent(ctx context.Context, toAgentID string, amount int64, memo string) (*primary.TxResult, error) {
	cmd := envelope("agent_transfer", map[string]any{
		"from_agent_id": s.agentID,
		"to_agent_id":   toAgentID,
		"amount":        newCoin(s.denom, amount),
		"memo":          memo,
	})

	res, err := s.gateway.Execute(ctx, s.contract, cmd)
	if err != nil {
		return nil, err
	}
	return txResult(res), nil
}

// BatchTransfer executes multiple transfers in one transaction.
func (s *AgentServiceImpl) BatchTransfer(ctx context.Context, transfers []primary.Transfer) (*primary.TxResult, error) {
	if len(transfers) == 0 {
		return nil, fmt.Errorf("batch transfer requires at least one transfer")
	}

	list := make([]map[string]any, 0, len(transfers))
	for _, t := range transfers {
		list = append(list, map[string]any{
			"to_agent_id": t.ToAgentID,
			"amount":      newCoin(s.denom, t.Amount),
			"memo":        t.Memo,
		})
	}
	cmd := envelope("batch_agent_transfer", map[string]any{
		"from_agent_id": s.agentID,
		"transfers":     list,
	})

	res, err := s.gateway.Execute(ctx, s.contract, cmd)
	if err != nil {
		return nil, err
	}
	return txResult(res), nil
}

// GetAccountSummary returns aggregate commerce totals for the calling agent.
func (s *AgentServiceImpl) GetAccountSummary(ctx context.Context, req primary.AccountSummaryRequest) (*primary.AccountSummary, error) {
	body := map[string]any{"agent_id": s.agentID}
	if req.PeriodStart != 0 {
		body["period_start"] = strconv.FormatInt(req.PeriodStart, 10)
	}
	if req.PeriodEnd != 0 {
		body["period_end"] = strconv.FormatInt(req.PeriodEnd, 10)
	}
	query := envelope("account_summary", body)

	var resp struct {
		TotalSales             flexInt `json:"total_sales"`
		TotalPurchases         flexInt `json:"total_purchases"`
		OutstandingReceivables flexInt `json:"outstanding_receivables"`
		OutstandingPayables    flexInt `json:"outstanding_payables"`
		CompletedOrders        flexInt `json:"completed_orders"`
		PendingOrders          flexInt `json:"pending_orders"`
	}
	if err := s.gateway.Query(ctx, s.contract, query, &resp); err != nil {
		return nil, err
	}

	return &primary.AccountSummary{
		TotalSales:             int64(resp.TotalSales),
		TotalPurchases:         int64(resp.TotalPurchases),
		OutstandingReceivables: int64(resp.OutstandingReceivables),
		OutstandingPayables:    int64(resp.OutstandingPayables),
		CompletedOrders:        int64(resp.CompletedOrders),
		PendingOrders:          int64(resp.PendingOrders),
	}, nil
}
