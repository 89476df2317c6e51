package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/example/agora/internal/ports/primary"
)

// NegotiationAdapter is a thin adapter that translates CLI operations to
// NegotiationService calls.
type NegotiationAdapter struct {
	service primary.NegotiationService
	out     io.Writer
}

// NewNegotiationAdapter creates a new NegotiationAdapter with the given service.
func NewNegotiationAdapter(service primary.NegotiationService, out io.Writer) *NegotiationAdapter {
	return &NegotiationAdapter{
		service: service,
		out:     out,
	}
}

// Request submits a service request to a provider agent.
func (a *NegotiationAdapter) Request(ctx context.Context, providerAgentID, serviceType string, payment int64, parameters map[string]any) error {
	serviceID, err := a.service.RequestService(ctx, primary.RequestServiceRequest{
		ProviderAgentID: providerAgentID,
		ServiceType:     serviceType,
		Payment:         payment,
		Parameters:      parameters,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Requested service %s from %s (%s, payment %d)\n", serviceID, providerAgentID, serviceType, payment)
	return nil
}

// Complete records the result for a service.
func (a *NegotiationAdapter) Complete(ctx context.Context, serviceID string, result map[string]any) error {
	res, err := a.service.CompleteService(ctx, serviceID, result)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Completed service %s (tx %s)\n", serviceID, res.TxHash)
	return nil
}

// Pending lists the calling agent's services still in pending status.
func (a *NegotiationAdapter) Pending(ctx context.Context) error {
	services, err := a.service.GetPendingServices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending services: %w", err)
	}

	if len(services) == 0 {
		fmt.Fprintln(a.out, "No pending services")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-15s %-20s %-20s %-16s %s\n", "ID", "REQUESTER", "PROVIDER", "TYPE", "PAYMENT")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, svc := range services {
		fmt.Fprintf(a.out, "%-15s %-20s %-20s %-16s %d\n", svc.ServiceID, svc.RequesterAgentID, svc.ProviderAgentID, svc.ServiceType, svc.Payment)
		if len(svc.Parameters) > 0 {
			if params, err := json.Marshal(svc.Parameters); err == nil {
				fmt.Fprintf(a.out, "  params: %s\n", params)
			}
		}
	}
	fmt.Fprintln(a.out)

	return nil
}
