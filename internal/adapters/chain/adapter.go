// Package chain contains the gateway adapter over the chain CLI.
package chain

import (
	"context"
	"fmt"
	"strings"

	chainpkg "github.com/example/agora/internal/chain"
	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/ports/secondary"
)

// Adapter implements secondary.ContractGateway by wrapping the chain CLI.
// It classifies failures into the boundary error types: process and parse
// failures become GatewayError, contract rejections become DomainError,
// and missing-entity query errors wrap secondary.ErrNotFound.
type Adapter struct {
	cli *chainpkg.CLI
}

// NewAdapter creates a gateway adapter over the given CLI.
func NewAdapter(cli *chainpkg.CLI) *Adapter {
	return &Adapter{cli: cli}
}

// Execute submits a transaction carrying the command and maps the parsed
// result into event records with decoded attributes.
func (a *Adapter) Execute(ctx context.Context, contract string, command any) (*secondary.ExecResult, error) {
	op := operationName(command)

	resp, err := a.cli.ExecuteTx(ctx, contract, command)
	if err != nil {
		return nil, &primary.GatewayError{Op: op, Err: err}
	}
	if resp.Code != 0 {
		return nil, &primary.DomainError{Op: op, Code: resp.Code, Message: resp.RawLog}
	}

	result := &secondary.ExecResult{
		TxHash: resp.TxHash,
		Height: resp.HeightInt64(),
	}
	for _, txlog := range resp.Logs {
		for _, ev := range txlog.Events {
			record := secondary.EventRecord{
				Kind:       ev.Type,
				Attributes: make(map[string]string, len(ev.Attributes)),
			}
			for _, attr := range ev.Attributes {
				key := attr.DecodedKey()
				if _, ok := record.Attributes[key]; !ok {
					record.Attributes[key] = attr.DecodedValue()
				}
			}
			result.Events = append(result.Events, record)
		}
	}
	return result, nil
}

// Query runs a read-only query and decodes the response into out.
func (a *Adapter) Query(ctx context.Context, contract string, command any, out any) error {
	op := operationName(command)

	if err := a.cli.QuerySmart(ctx, contract, command, out); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return &primary.GatewayError{
				Op:  op,
				Err: fmt.Errorf("%w: %v", secondary.ErrNotFound, err),
			}
		}
		return &primary.GatewayError{Op: op, Err: err}
	}
	return nil
}

// operationName extracts the command's single envelope key for error
// context. Commands are single-variant envelopes by construction.
func operationName(command any) string {
	env, ok := command.(map[string]any)
	if !ok {
		return "contract_call"
	}
	for name := range env {
		return name
	}
	return "contract_call"
}
