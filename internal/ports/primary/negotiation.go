package primary

import "context"

// ServiceStatus is the negotiation state machine. Only pending and
// in_progress are non-terminal. The protocol layer observes status; it
// never asserts a transition it did not request.
type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "pending"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusCompleted  ServiceStatus = "completed"
	ServiceStatusFailed     ServiceStatus = "failed"
	ServiceStatusRefunded   ServiceStatus = "refunded"
)

// Terminal reports whether the status admits no further transitions.
func (s ServiceStatus) Terminal() bool {
	return s == ServiceStatusCompleted || s == ServiceStatusFailed || s == ServiceStatusRefunded
}

// ServiceRequest is a unit-of-work contract between a requester and a
// provider agent with an attached payment.
type ServiceRequest struct {
	ServiceID        string
	RequesterAgentID string
	ProviderAgentID  string
	ServiceType      string
	Payment          int64
	Status           ServiceStatus
	Parameters       map[string]any
	Result           string
}

// RequestServiceRequest contains parameters for requesting a service.
type RequestServiceRequest struct {
	ProviderAgentID string
	ServiceType     string
	Payment         int64
	Parameters      map[string]any
}

// NegotiationService defines the primary port for service negotiation.
type NegotiationService interface {
	// RequestService submits a service request and returns the
	// ledger-assigned service id.
	RequestService(ctx context.Context, req RequestServiceRequest) (string, error)

	// CompleteService records the result for a service. The result payload
	// is opaque to the protocol layer.
	CompleteService(ctx context.Context, serviceID string, result map[string]any) (*TxResult, error)

	// GetPendingServices returns the calling agent's services still in
	// pending status, fully hydrated.
	GetPendingServices(ctx context.Context) ([]*ServiceRequest, error)
}
