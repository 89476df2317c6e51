package app

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/ports/secondary"
)

// NegotiationServiceImpl implements the NegotiationService interface over
// the contract gateway. It requests and completes services; all other
// status transitions belong to the contract and are only observed.
type NegotiationServiceImpl struct {
	gateway  secondary.ContractGateway
	contract string
	agentID  string
	denom    string
}

// NewNegotiationService creates a new NegotiationService bound to the
// calling agent.
func NewNegotiationService(gateway secondary.ContractGateway, contract, agentID, denom string) *NegotiationServiceImpl {
	return &NegotiationServiceImpl{
		gateway:  gateway,
		contract: contract,
		agentID:  agentID,
		denom:    denom,
	}
}

// serviceRecord is the wire form of a service request.
type serviceRecord struct {
	ServiceID        string   `json:"service_id"`
	RequesterAgentID string   `json:"requester_agent_id"`
	ProviderAgentID  string   `json:"provider_agent_id"`
	ServiceType      string   `json:"service_type"`
	Payment          wireCoin `json:"payment"`
	Status           string   `json:"status"`
	Parameters       string   `json:"parameters"`
	Result           *string  `json:"result"`
}

func (r *serviceRecord) toServiceRequest() (*primary.ServiceRequest, error) {
	svc := &primary.ServiceRequest{
		ServiceID:        r.ServiceID,
		RequesterAgentID: r.RequesterAgentID,
		ProviderAgentID:  r.ProviderAgentID,
		ServiceType:      r.ServiceType,
		Payment:          int64(r.Payment.Amount),
		Status:           primary.ServiceStatus(strings.ToLower(r.Status)),
	}
	if r.Result != nil {
		svc.Result = *r.Result
	}
	if r.Parameters != "" {
		if err := json.Unmarshal([]byte(r.Parameters), &svc.Parameters); err != nil {
			return nil, &primary.DecodeError{Op: "list_services", EntityID: r.ServiceID, Err: err}
		}
	}
	return svc, nil
}

// RequestService submits a service request and returns the ledger-assigned
// service id, read from the transaction's contract event attributes.
func (s *NegotiationServiceImpl) RequestService(ctx context.Context, req primary.RequestServiceRequest) (string, error) {
	const op = "request_service"

	params, err := encodeJSON(op, req.Parameters)
	if err != nil {
		return "", err
	}
	cmd := envelope(op, map[string]any{
		"requester_agent_id": s.agentID,
		"provider_agent_id":  req.ProviderAgentID,
		"service_type":       req.ServiceType,
		"payment":            newCoin(s.denom, req.Payment),
		"parameters":         params,
	})

	res, err := s.gateway.Execute(ctx, s.contract, cmd)
	if err != nil {
		return "", err
	}
	return extractEventAttr(res, "service_id", op)
}

// CompleteService records the result for a service request.
func (s *NegotiationServiceImpl) CompleteService(ctx context.Context, serviceID string, result map[string]any) (*primary.TxResult, error) {
	const op = "complete_service"

	encoded, err := encodeJSON(op, result)
	if err != nil {
		return nil, err
	}
	cmd := envelope(op, map[string]any{
		"service_id": serviceID,
		"result":     encoded,
	})

	res, err := s.gateway.Execute(ctx, s.contract, cmd)
	if err != nil {
		return nil, err
	}
	return txResult(res), nil
}

// GetPendingServices returns the calling agent's pending services, fully
// hydrated. Malformed parameter payloads surface as DecodeError rather
// than being dropped.
func (s *NegotiationServiceImpl) GetPendingServices(ctx context.Context) ([]*primary.ServiceRequest, error) {
	query := envelope("list_services", map[string]any{
		"agent_id": s.agentID,
		"status":   string(primary.ServiceStatusPending),
		"limit":    50,
	})

	var resp struct {
		Services []serviceRecord `json:"services"`
	}
	if err := s.gateway.Query(ctx, s.contract, query, &resp); err != nil {
		return nil, err
	}

	services := make([]*primary.ServiceRequest, 0, len(resp.Services))
	for i := range resp.Services {
		svc, err := resp.Services[i].toServiceRequest()
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}
