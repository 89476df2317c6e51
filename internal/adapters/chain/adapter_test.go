package chain

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	chainpkg "github.com/example/agora/internal/chain"
	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/ports/secondary"
)

func newTestAdapter(stdout, stderr string, runErr error) *Adapter {
	runner := func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return []byte(stdout), []byte(stderr), runErr
	}
	return NewAdapter(chainpkg.NewWithRunner(chainpkg.Options{From: "alice-key"}, runner))
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestExecuteFlattensEvents(t *testing.T) {
	stdout := fmt.Sprintf(`{
		"txhash":"ABC","height":"55","code":0,"raw_log":"",
		"logs":[{"events":[
			{"type":"wasm","attributes":[
				{"key":%q,"value":%q},
				{"key":%q,"value":%q}
			]},
			{"type":"message","attributes":[{"key":"action","value":"execute"}]}
		]}]
	}`, b64("action"), b64("send_message"), b64("message_id"), b64("msg_42"))

	adapter := newTestAdapter(stdout, "", nil)
	res, err := adapter.Execute(context.Background(), "wasm1contract", map[string]any{"send_message": map[string]any{}})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if res.TxHash != "ABC" || res.Height != 55 {
		t.Errorf("tx result wrong: %+v", res)
	}
	if len(res.Events) != 2 {
		t.Fatalf("expected 2 event records, got %d", len(res.Events))
	}
	wasm := res.Events[0]
	if wasm.Kind != "wasm" || wasm.Attributes["message_id"] != "msg_42" {
		t.Errorf("wasm event not decoded: %+v", wasm)
	}
	// Plain attributes survive alongside base64 ones
	if res.Events[1].Attributes["action"] != "execute" {
		t.Errorf("plain event not decoded: %+v", res.Events[1])
	}
}

func TestExecuteContractRejection(t *testing.T) {
	stdout := `{"txhash":"ABC","height":"55","code":5,"raw_log":"failed to execute message; insufficient funds","logs":[]}`

	adapter := newTestAdapter(stdout, "", nil)
	_, err := adapter.Execute(context.Background(), "wasm1contract", map[string]any{"agent_transfer": map[string]any{}})

	var domainErr *primary.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	if domainErr.Code != 5 || domainErr.Op != "agent_transfer" {
		t.Errorf("unexpected DomainError: %+v", domainErr)
	}
	if domainErr.Message != "failed to execute message; insufficient funds" {
		t.Errorf("raw log not carried: %q", domainErr.Message)
	}
}

func TestExecuteProcessFailure(t *testing.T) {
	adapter := newTestAdapter("", "connection refused", errors.New("exit status 1"))
	_, err := adapter.Execute(context.Background(), "wasm1contract", map[string]any{"send_message": map[string]any{}})

	var gatewayErr *primary.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if gatewayErr.Op != "send_message" {
		t.Errorf("op not classified: %q", gatewayErr.Op)
	}
}

func TestQueryNotFoundMapping(t *testing.T) {
	adapter := newTestAdapter("", "Error: rpc error: agent not found: query wasm contract failed", errors.New("exit status 1"))

	var out map[string]any
	err := adapter.Query(context.Background(), "wasm1contract", map[string]any{"agent": map[string]any{}}, &out)

	if !errors.Is(err, secondary.ErrNotFound) {
		t.Fatalf("expected ErrNotFound in chain, got %v", err)
	}
	var gatewayErr *primary.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Errorf("not-found should still be a GatewayError: %v", err)
	}
}

func TestQueryOtherFailure(t *testing.T) {
	adapter := newTestAdapter("", "connection refused", errors.New("exit status 1"))

	var out map[string]any
	err := adapter.Query(context.Background(), "wasm1contract", map[string]any{"agent": map[string]any{}}, &out)

	if errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("plain failures must not map to not-found: %v", err)
	}
	var gatewayErr *primary.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Errorf("expected GatewayError, got %v", err)
	}
}

func TestQueryDecodesData(t *testing.T) {
	adapter := newTestAdapter(`{"data":{"agent_id":"agent_bob"}}`, "", nil)

	var out struct {
		AgentID string `json:"agent_id"`
	}
	if err := adapter.Query(context.Background(), "wasm1contract", map[string]any{"agent": map[string]any{}}, &out); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if out.AgentID != "agent_bob" {
		t.Errorf("data not decoded: %+v", out)
	}
}
