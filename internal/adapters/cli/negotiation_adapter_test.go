package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/agora/internal/ports/primary"
)

// mockNegotiationService implements primary.NegotiationService for testing
type mockNegotiationService struct {
	requestFn  func(ctx context.Context, req primary.RequestServiceRequest) (string, error)
	completeFn func(ctx context.Context, serviceID string, result map[string]any) (*primary.TxResult, error)
	pendingFn  func(ctx context.Context) ([]*primary.ServiceRequest, error)

	// Track calls for verification
	lastRequest primary.RequestServiceRequest
}

func (m *mockNegotiationService) RequestService(ctx context.Context, req primary.RequestServiceRequest) (string, error) {
	m.lastRequest = req
	if m.requestFn != nil {
		return m.requestFn(ctx, req)
	}
	return "svc_1", nil
}

func (m *mockNegotiationService) CompleteService(ctx context.Context, serviceID string, result map[string]any) (*primary.TxResult, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, serviceID, result)
	}
	return &primary.TxResult{TxHash: "ABC123", Height: 42}, nil
}

func (m *mockNegotiationService) GetPendingServices(ctx context.Context) ([]*primary.ServiceRequest, error) {
	if m.pendingFn != nil {
		return m.pendingFn(ctx)
	}
	return nil, nil
}

func TestNegotiationAdapterRequest(t *testing.T) {
	mock := &mockNegotiationService{}
	var buf bytes.Buffer
	adapter := NewNegotiationAdapter(mock, &buf)

	err := adapter.Request(context.Background(), "agent_translator", "translation", 500, map[string]any{"language": "French"})
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if mock.lastRequest.ProviderAgentID != "agent_translator" {
		t.Errorf("expected provider agent_translator, got %s", mock.lastRequest.ProviderAgentID)
	}
	if mock.lastRequest.Payment != 500 {
		t.Errorf("expected payment 500, got %d", mock.lastRequest.Payment)
	}

	out := buf.String()
	if !strings.Contains(out, "svc_1") {
		t.Errorf("expected output to contain service id, got: %s", out)
	}
	if !strings.Contains(out, "payment 500") {
		t.Errorf("expected output to contain payment, got: %s", out)
	}
}

func TestNegotiationAdapterRequestError(t *testing.T) {
	mock := &mockNegotiationService{
		requestFn: func(ctx context.Context, req primary.RequestServiceRequest) (string, error) {
			return "", errors.New("insufficient funds")
		},
	}
	var buf bytes.Buffer
	adapter := NewNegotiationAdapter(mock, &buf)

	err := adapter.Request(context.Background(), "agent_translator", "translation", 500, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on error, got: %s", buf.String())
	}
}

func TestNegotiationAdapterComplete(t *testing.T) {
	mock := &mockNegotiationService{}
	var buf bytes.Buffer
	adapter := NewNegotiationAdapter(mock, &buf)

	err := adapter.Complete(context.Background(), "svc_9", map[string]any{"status": "done"})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "svc_9") {
		t.Errorf("expected output to contain service id, got: %s", out)
	}
	if !strings.Contains(out, "ABC123") {
		t.Errorf("expected output to contain tx hash, got: %s", out)
	}
}

func TestNegotiationAdapterPending(t *testing.T) {
	mock := &mockNegotiationService{
		pendingFn: func(ctx context.Context) ([]*primary.ServiceRequest, error) {
			return []*primary.ServiceRequest{
				{
					ServiceID:        "svc_1",
					RequesterAgentID: "agent_alice",
					ProviderAgentID:  "agent_bob",
					ServiceType:      "translation",
					Payment:          500,
					Status:           primary.ServiceStatusPending,
					Parameters:       map[string]any{"language": "French"},
				},
				{
					ServiceID:        "svc_2",
					RequesterAgentID: "agent_carol",
					ProviderAgentID:  "agent_bob",
					ServiceType:      "analysis",
					Payment:          1200,
					Status:           primary.ServiceStatusPending,
				},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewNegotiationAdapter(mock, &buf)

	err := adapter.Pending(context.Background())
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "svc_1") || !strings.Contains(out, "svc_2") {
		t.Errorf("expected both services in output, got: %s", out)
	}
	if !strings.Contains(out, `"language":"French"`) {
		t.Errorf("expected parameters line for svc_1, got: %s", out)
	}
	if !strings.Contains(out, "REQUESTER") {
		t.Errorf("expected table header, got: %s", out)
	}
}

func TestNegotiationAdapterPendingEmpty(t *testing.T) {
	mock := &mockNegotiationService{}
	var buf bytes.Buffer
	adapter := NewNegotiationAdapter(mock, &buf)

	err := adapter.Pending(context.Background())
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}

	if !strings.Contains(buf.String(), "No pending services") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}
