package app

import (
	"context"
	"log"
	"time"

	"github.com/example/agora/internal/ports/primary"
)

// DefaultPollInterval bounds the gap between fetch passes when no
// interval is configured.
const DefaultPollInterval = 5 * time.Second

// Monitor is a generic poll/dedup/dispatch loop. It repeatedly fetches
// candidate items, skips ones already seen or ineligible, and hands each
// new item to the handler. The dedup set belongs to one run of one
// monitor; it is created on loop start and discarded with it.
//
// Handler failures are logged and the item stays marked seen: local
// handling is at-most-once, chosen over retry loops that would replay
// ledger-visible progress. Fetch failures are logged and treated as an
// empty pass; the loop only ends on context cancellation.
type Monitor[T any] struct {
	fetch    func(ctx context.Context) ([]T, error)
	identity func(item T) string
	eligible func(item T) bool
	handle   func(ctx context.Context, item T) error
	interval time.Duration
	logger   *log.Logger

	seen map[string]struct{}
}

// NewMonitor assembles a monitor from its parts. A nil eligible accepts
// every item; a nil logger falls back to the standard logger.
func NewMonitor[T any](
	fetch func(ctx context.Context) ([]T, error),
	identity func(item T) string,
	eligible func(item T) bool,
	handle func(ctx context.Context, item T) error,
	interval time.Duration,
	logger *log.Logger,
) *Monitor[T] {
	if eligible == nil {
		eligible = func(T) bool { return true }
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Monitor[T]{
		fetch:    fetch,
		identity: identity,
		eligible: eligible,
		handle:   handle,
		interval: interval,
		logger:   logger,
	}
}

// Run polls until the context is cancelled, then returns nil. Cancellation
// is cooperative: it is observed between passes, never mid-call.
func (m *Monitor[T]) Run(ctx context.Context) error {
	m.seen = make(map[string]struct{})

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.pass(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// pass runs one fetch/dispatch cycle.
func (m *Monitor[T]) pass(ctx context.Context) {
	items, err := m.fetch(ctx)
	if err != nil {
		m.logger.Printf("monitor: fetch failed, skipping pass: %v", err)
		return
	}

	for _, item := range items {
		id := m.identity(item)
		if _, ok := m.seen[id]; ok {
			continue
		}
		if !m.eligible(item) {
			continue
		}
		m.seen[id] = struct{}{}

		if err := m.handle(ctx, item); err != nil {
			m.logger.Printf("monitor: handling %s failed: %v", id, err)
		}
	}
}

// ServiceHandler processes one pending service and returns the result
// payload to submit on completion.
type ServiceHandler func(ctx context.Context, svc *primary.ServiceRequest) (map[string]any, error)

// NewServiceMonitor builds a monitor over the pending-service feed. Only
// services where the agent is the provider are handled; the handler's
// result is submitted through CompleteService.
func NewServiceMonitor(
	negotiation primary.NegotiationService,
	agentID string,
	handler ServiceHandler,
	interval time.Duration,
	logger *log.Logger,
) *Monitor[*primary.ServiceRequest] {
	fetch := func(ctx context.Context) ([]*primary.ServiceRequest, error) {
		return negotiation.GetPendingServices(ctx)
	}
	identity := func(svc *primary.ServiceRequest) string { return svc.ServiceID }
	eligible := func(svc *primary.ServiceRequest) bool { return svc.ProviderAgentID == agentID }
	handle := func(ctx context.Context, svc *primary.ServiceRequest) error {
		result, err := handler(ctx, svc)
		if err != nil {
			return err
		}
		if _, err := negotiation.CompleteService(ctx, svc.ServiceID, result); err != nil {
			return err
		}
		return nil
	}
	return NewMonitor(fetch, identity, eligible, handle, interval, logger)
}

// MessageHandler processes one incoming message with its decoded content
// and returns the response payload, or nil for no response.
type MessageHandler func(ctx context.Context, msg *primary.Message, content map[string]any) (map[string]any, error)

// NewMessageMonitor builds a monitor over the message feed. Only messages
// addressed to the agent (and matching the type filter, when given) are
// handled. When a message requires a response and the handler returns a
// non-empty payload, the response is submitted through RespondToMessage.
func NewMessageMonitor(
	messages primary.MessageService,
	agentID string,
	types []primary.MessageType,
	handler MessageHandler,
	interval time.Duration,
	logger *log.Logger,
) *Monitor[*primary.Message] {
	fetch := func(ctx context.Context) ([]*primary.Message, error) {
		return messages.GetMessages(ctx, primary.ListMessagesRequest{Limit: 50})
	}
	identity := func(msg *primary.Message) string { return msg.MessageID }
	eligible := func(msg *primary.Message) bool {
		if msg.ToAgentID != agentID {
			return false
		}
		if len(types) == 0 {
			return true
		}
		for _, t := range types {
			if msg.Type.Equal(t) {
				return true
			}
		}
		return false
	}
	handle := func(ctx context.Context, msg *primary.Message) error {
		content, err := msg.DecodeContent()
		if err != nil {
			return &primary.DecodeError{Op: "monitor_messages", EntityID: msg.MessageID, Err: err}
		}
		response, err := handler(ctx, msg, content)
		if err != nil {
			return err
		}
		if msg.RequiresResponse && len(response) > 0 {
			if _, err := messages.RespondToMessage(ctx, msg.MessageID, response); err != nil {
				return err
			}
		}
		return nil
	}
	return NewMonitor(fetch, identity, eligible, handle, interval, logger)
}
