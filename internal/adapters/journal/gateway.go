// Package journal decorates the contract gateway with local journaling.
package journal

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/example/agora/internal/ports/secondary"
)

// entityAttributes are the contract event attribute keys that carry a
// generated entity id worth indexing in the journal.
var entityAttributes = []string{"message_id", "service_id", "po_id", "invoice_id"}

// Gateway wraps a ContractGateway and records every committed execution
// in the journal. The ledger already committed by the time the journal is
// written, so a failed journal insert is logged and the result is still
// returned.
type Gateway struct {
	next   secondary.ContractGateway
	repo   secondary.JournalRepository
	logger *log.Logger
}

// NewGateway creates a journaling gateway around next.
func NewGateway(next secondary.ContractGateway, repo secondary.JournalRepository, logger *log.Logger) *Gateway {
	if logger == nil {
		logger = log.Default()
	}
	return &Gateway{next: next, repo: repo, logger: logger}
}

// Execute forwards to the wrapped gateway and journals the committed
// result.
func (g *Gateway) Execute(ctx context.Context, contract string, command any) (*secondary.ExecResult, error) {
	res, err := g.next.Execute(ctx, contract, command)
	if err != nil {
		return nil, err
	}

	entry := &secondary.JournalEntry{
		ID:        uuid.NewString(),
		Operation: operationName(command),
		EntityID:  entityID(res),
		TxHash:    res.TxHash,
		Height:    res.Height,
	}
	if rerr := g.repo.Record(ctx, entry); rerr != nil {
		g.logger.Printf("journal: failed to record %s (tx %s): %v", entry.Operation, entry.TxHash, rerr)
	}
	return res, nil
}

// Query forwards unchanged; reads are not journaled.
func (g *Gateway) Query(ctx context.Context, contract string, command any, out any) error {
	return g.next.Query(ctx, contract, command, out)
}

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

// entityID scans the result's contract events for the first known
// generated-id attribute.
func entityID(res *secondary.ExecResult) string {
	for _, ev := range res.Events {
		if ev.Kind != "wasm" {
			continue
		}
		for _, key := range entityAttributes {
			if v, ok := ev.Attributes[key]; ok {
				return v
			}
		}
	}
	return ""
}
