// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound marks a query that failed because the requested entity does
// not exist on the ledger. Gateway implementations wrap it so callers can
// distinguish absence from transport failure.
var ErrNotFound = errors.New("not found")

// EventRecord is one event emitted by a committed transaction, with its
// attributes decoded to plain strings.
type EventRecord struct {
	Kind       string
	Attributes map[string]string
}

// ExecResult is the outcome of a committed contract execution.
type ExecResult struct {
	TxHash string
	Height int64
	Events []EventRecord
}

// ContractGateway defines the secondary port for the ledger-hosted
// commerce contract. Calls are synchronous and block until the backend
// answers; the gateway implementation owns any call-level timeout.
type ContractGateway interface {
	// Execute submits a transaction carrying the given command to the
	// contract and returns the committed result.
	Execute(ctx context.Context, contract string, command any) (*ExecResult, error)

	// Query runs a read-only query against the contract and decodes the
	// response data into out.
	Query(ctx context.Context, contract string, command any, out any) error
}
