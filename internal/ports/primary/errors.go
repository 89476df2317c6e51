package primary

import "fmt"

// GatewayError reports a transport or execution failure from the contract
// gateway (process exit, malformed output, unreachable node).
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway failure in %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// ExtractionError reports a successful transaction whose event records are
// missing an attribute the protocol guarantees (message_id, service_id,
// po_id, invoice_id). It indicates a contract mismatch and is never retried.
type ExtractionError struct {
	Op        string
	Attribute string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: attribute %q not found in transaction events", e.Op, e.Attribute)
}

// DecodeError reports an opaque payload that failed to parse into its
// expected structured form.
type DecodeError struct {
	Op       string
	EntityID string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.EntityID != "" {
		return fmt.Sprintf("%s: decode payload for %s: %v", e.Op, e.EntityID, e.Err)
	}
	return fmt.Sprintf("%s: decode payload: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DomainError reports a business-rule rejection by the contract (bad status
// transition, insufficient balance). Surfaced verbatim, never retried.
type DomainError struct {
	Op      string
	Code    uint32
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s rejected by contract (code %d): %s", e.Op, e.Code, e.Message)
}

// NotFoundError reports a single-entity lookup on a nonexistent id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}
