package app

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/example/agora/internal/ports/secondary"
)

// execCall records one Execute invocation for assertions.
type execCall struct {
	contract string
	op       string
	body     map[string]any
}

// mockGateway implements secondary.ContractGateway for testing. Query
// responses are canned JSON keyed by operation name; Execute returns a
// fixed result.
type mockGateway struct {
	execResult     *secondary.ExecResult
	execErr        error
	queryResponses map[string]string
	queryErr       error

	execCalls  []execCall
	queryCalls []string
}

func (g *mockGateway) Execute(ctx context.Context, contract string, command any) (*secondary.ExecResult, error) {
	op, body := splitEnvelope(command)
	g.execCalls = append(g.execCalls, execCall{contract: contract, op: op, body: body})
	if g.execErr != nil {
		return nil, g.execErr
	}
	if g.execResult != nil {
		return g.execResult, nil
	}
	return &secondary.ExecResult{TxHash: "HASH", Height: 1}, nil
}

func (g *mockGateway) Query(ctx context.Context, contract string, command any, out any) error {
	op, _ := splitEnvelope(command)
	g.queryCalls = append(g.queryCalls, op)
	if g.queryErr != nil {
		return g.queryErr
	}
	resp, ok := g.queryResponses[op]
	if !ok {
		return fmt.Errorf("mockGateway: no canned response for %q", op)
	}
	return json.Unmarshal([]byte(resp), out)
}

// splitEnvelope unwraps a single-key command envelope.
func splitEnvelope(command any) (string, map[string]any) {
	m, ok := command.(map[string]any)
	if !ok {
		return "", nil
	}
	for op, body := range m {
		inner, _ := body.(map[string]any)
		return op, inner
	}
	return "", nil
}

// execResultWithAttr builds an ExecResult carrying one contract event
// attribute, the shape id-extraction reads.
func execResultWithAttr(key, value string) *secondary.ExecResult {
	return &secondary.ExecResult{
		TxHash: "HASH",
		Height: 7,
		Events: []secondary.EventRecord{
			{Kind: "wasm", Attributes: map[string]string{key: value}},
		},
	}
}

// notFoundQueryErr mimics the gateway's wrapping of a missing entity.
func notFoundQueryErr() error {
	return fmt.Errorf("query failed: %w", secondary.ErrNotFound)
}

// lastExec returns the most recent Execute call, failing the test when
// none happened.
func lastExec(t *testing.T, g *mockGateway) execCall {
	t.Helper()
	if len(g.execCalls) == 0 {
		t.Fatal("expected an Execute call")
	}
	return g.execCalls[len(g.execCalls)-1]
}
