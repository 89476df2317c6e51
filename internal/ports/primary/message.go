package primary

import (
	"context"
	"encoding/json"
)

// MessageKind enumerates the fixed message type tags. The custom kind
// carries a caller-supplied label alongside.
type MessageKind string

const (
	MessageKindServiceRequest      MessageKind = "service_request"
	MessageKindServiceResponse     MessageKind = "service_response"
	MessageKindNegotiation         MessageKind = "negotiation"
	MessageKindInformation         MessageKind = "information"
	MessageKindAlert               MessageKind = "alert"
	MessageKindPurchaseOrder       MessageKind = "purchase_order"
	MessageKindInvoice             MessageKind = "invoice"
	MessageKindPaymentNotification MessageKind = "payment_notification"
	MessageKindReceiptConfirmation MessageKind = "receipt_confirmation"
	MessageKindCustom              MessageKind = "custom"
)

// MessageType is a tagged variant: a fixed kind, or custom with a label.
// Label is meaningful only when Kind is MessageKindCustom.
type MessageType struct {
	Kind  MessageKind
	Label string
}

// CustomMessageType builds a custom message type carrying the given label.
func CustomMessageType(label string) MessageType {
	if label == "" {
		label = "general"
	}
	return MessageType{Kind: MessageKindCustom, Label: label}
}

// Equal reports whether two message types match, including custom labels.
func (t MessageType) Equal(other MessageType) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == MessageKindCustom {
		return t.Label == other.Label
	}
	return true
}

// String renders the type for display.
func (t MessageType) String() string {
	if t.Kind == MessageKindCustom && t.Label != "" {
		return "custom:" + t.Label
	}
	return string(t.Kind)
}

// Message is a ledger-held envelope between two agents. Content is opaque
// to the protocol layer; the application decides its meaning.
type Message struct {
	MessageID        string
	FromAgentID      string
	ToAgentID        string
	Type             MessageType
	Content          string
	RequiresResponse bool
	Timestamp        int64
	Response         *MessageResponse
}

// MessageResponse is the one-shot reply recorded against a message that
// required a response.
type MessageResponse struct {
	Content     string
	RespondedAt int64
}

// DecodeContent parses a message's opaque content as JSON.
func (m *Message) DecodeContent() (map[string]any, error) {
	var content map[string]any
	if err := json.Unmarshal([]byte(m.Content), &content); err != nil {
		return nil, err
	}
	return content, nil
}

// SendMessageRequest contains parameters for sending a message.
type SendMessageRequest struct {
	ToAgentID        string
	Type             MessageType
	Content          map[string]any
	RequiresResponse bool
}

// ListMessagesRequest filters the message listing. A nil Type means no
// type filter; Limit 0 means the backend default.
type ListMessagesRequest struct {
	Type  *MessageType
	Limit int
}

// MessageService defines the primary port for the message channel.
type MessageService interface {
	// SendMessage submits a message and returns the ledger-assigned id.
	SendMessage(ctx context.Context, req SendMessageRequest) (string, error)

	// RespondToMessage records the reply to a message that requires one.
	// The contract is the source of truth for "already responded".
	RespondToMessage(ctx context.Context, messageID string, response map[string]any) (*TxResult, error)

	// GetMessages returns the most recent messages addressed to or from the
	// calling agent. Ordering is backend-defined.
	GetMessages(ctx context.Context, req ListMessagesRequest) ([]*Message, error)

	// GetMessage returns a single message by id.
	GetMessage(ctx context.Context, messageID string) (*Message, error)
}
