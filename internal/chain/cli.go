// Package chain runs the chain CLI (wasmd) to execute and query the
// commerce contract. It owns command construction, output parsing and
// event-attribute decoding; error classification lives in the adapter.
package chain

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Runner executes a command and returns stdout and stderr. It exists so
// tests can supply a fake process.
type Runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

func defaultRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	return out.Bytes(), errOut.Bytes(), err
}

// Options configures the chain CLI invocation.
type Options struct {
	Binary    string // chain binary, e.g. "wasmd"
	Container string // when set, run through `docker exec <container>`
	ChainID   string
	Node      string // optional RPC endpoint
	From      string // signing key name
	Keyring   string // keyring backend, e.g. "test"
	GasPrices string // e.g. "0.025stake"
}

// CLI invokes the chain binary for contract transactions and queries.
type CLI struct {
	opts Options
	run  Runner
}

// New creates a CLI with the default process runner.
func New(opts Options) *CLI {
	return NewWithRunner(opts, defaultRunner)
}

// NewWithRunner creates a CLI with an injected runner, for tests.
func NewWithRunner(opts Options, run Runner) *CLI {
	if opts.Binary == "" {
		opts.Binary = "wasmd"
	}
	if opts.Keyring == "" {
		opts.Keyring = "test"
	}
	if opts.GasPrices == "" {
		opts.GasPrices = "0.025stake"
	}
	return &CLI{opts: opts, run: run}
}

// TxResponse is the chain CLI's JSON transaction result.
type TxResponse struct {
	TxHash string  `json:"txhash"`
	Height string  `json:"height"`
	Code   uint32  `json:"code"`
	RawLog string  `json:"raw_log"`
	Logs   []TxLog `json:"logs"`
}

// HeightInt64 parses the height field, which the CLI emits as a string.
func (r *TxResponse) HeightInt64() int64 {
	h, err := strconv.ParseInt(r.Height, 10, 64)
	if err != nil {
		return 0
	}
	return h
}

// TxLog groups the events of one message in the transaction.
type TxLog struct {
	Events []TxEvent `json:"events"`
}

// TxEvent is one emitted event with its raw attributes.
type TxEvent struct {
	Type       string        `json:"type"`
	Attributes []TxAttribute `json:"attributes"`
}

// TxAttribute is one event attribute. Values may be base64-encoded
// depending on the node version; DecodedValue normalizes that.
type TxAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DecodedValue returns the attribute value with base64 encoding stripped
// when present, falling back to the raw value otherwise.
func (a TxAttribute) DecodedValue() string {
	decoded, err := base64.StdEncoding.DecodeString(a.Value)
	if err != nil {
		return a.Value
	}
	return string(decoded)
}

// DecodedKey returns the attribute key, decoded like DecodedValue.
func (a TxAttribute) DecodedKey() string {
	decoded, err := base64.StdEncoding.DecodeString(a.Key)
	if err != nil {
		return a.Key
	}
	return string(decoded)
}

// ExecuteTx submits a wasm execute transaction and parses the result.
// A non-nil error means the process or its output failed; a result with
// Code != 0 means the contract rejected the transaction.
func (c *CLI) ExecuteTx(ctx context.Context, contract string, msg any) (*TxResponse, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode execute msg: %w", err)
	}

	args := c.wrap(
		"tx", "wasm", "execute", contract, string(payload),
		"--from", c.opts.From,
		"--chain-id", c.opts.ChainID,
		"--keyring-backend", c.opts.Keyring,
		"--gas", "auto",
		"--gas-adjustment", "1.5",
		"--gas-prices", c.opts.GasPrices,
		"--output", "json",
		"-y",
	)

	stdout, stderr, err := c.run(ctx, args[0], args[1:]...)
	if err != nil {
		return nil, fmt.Errorf("execute contract: %w: %s", err, strings.TrimSpace(string(stderr)))
	}

	var resp TxResponse
	if err := json.Unmarshal(stdout, &resp); err != nil {
		return nil, fmt.Errorf("parse tx response: %w", err)
	}
	return &resp, nil
}

// QuerySmart runs a smart query against the contract and decodes the
// response's data field into out.
func (c *CLI) QuerySmart(ctx context.Context, contract string, msg any, out any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode query msg: %w", err)
	}

	args := c.wrap(
		"query", "wasm", "contract-state", "smart", contract, string(payload),
		"--output", "json",
	)

	stdout, stderr, err := c.run(ctx, args[0], args[1:]...)
	if err != nil {
		return fmt.Errorf("query contract: %w: %s", err, strings.TrimSpace(string(stderr)))
	}

	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(stdout, &resp); err != nil {
		return fmt.Errorf("parse query response: %w", err)
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("decode query data: %w", err)
	}
	return nil
}

// wrap assembles the full argv, routing through docker exec when a
// container is configured and appending the node endpoint when set.
func (c *CLI) wrap(args ...string) []string {
	if c.opts.Node != "" {
		args = append(args, "--node", c.opts.Node)
	}
	if c.opts.Container != "" {
		return append([]string{"docker", "exec", c.opts.Container, c.opts.Binary}, args...)
	}
	return append([]string{c.opts.Binary}, args...)
}
