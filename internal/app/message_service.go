package app

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/ports/secondary"
)

// MessageServiceImpl implements the MessageService interface over the
// contract gateway.
type MessageServiceImpl struct {
	gateway  secondary.ContractGateway
	contract string
	agentID  string
}

// NewMessageService creates a new MessageService bound to the calling agent.
func NewMessageService(gateway secondary.ContractGateway, contract, agentID string) *MessageServiceImpl {
	return &MessageServiceImpl{
		gateway:  gateway,
		contract: contract,
		agentID:  agentID,
	}
}

// messageRecord is the wire form of a message.
type messageRecord struct {
	MessageID        string          `json:"message_id"`
	FromAgentID      string          `json:"from_agent_id"`
	ToAgentID        string          `json:"to_agent_id"`
	MessageType      json.RawMessage `json:"message_type"`
	Content          string          `json:"content"`
	RequiresResponse bool            `json:"requires_response"`
	Timestamp        flexInt         `json:"timestamp"`
	Response         *struct {
		ResponseContent string  `json:"response_content"`
		RespondedAt     flexInt `json:"responded_at"`
	} `json:"response"`
}

func (r *messageRecord) toMessage() *primary.Message {
	msg := &primary.Message{
		MessageID:        r.MessageID,
		FromAgentID:      r.FromAgentID,
		ToAgentID:        r.ToAgentID,
		Type:             decodeMessageType(r.MessageType),
		Content:          r.Content,
		RequiresResponse: r.RequiresResponse,
		Timestamp:        int64(r.Timestamp),
	}
	if r.Response != nil {
		msg.Response = &primary.MessageResponse{
			Content:     r.Response.ResponseContent,
			RespondedAt: int64(r.Response.RespondedAt),
		}
	}
	return msg
}

// SendMessage submits a message and returns the ledger-assigned id, read
// from the transaction's contract event attributes.
func (s *MessageServiceImpl) SendMessage(ctx context.Context, req primary.SendMessageRequest) (string, error) {
	const op = "send_message"

	content, err := encodeJSON(op, req.Content)
	if err != nil {
		return "", err
	}
	cmd := envelope(op, map[string]any{
		"from_agent_id":     s.agentID,
		"to_agent_id":       req.ToAgentID,
		"message_type":      encodeMessageType(req.Type),
		"content":           content,
		"requires_response": req.RequiresResponse,
	})

	res, err := s.gateway.Execute(ctx, s.contract, cmd)
	if err != nil {
		return "", err
	}
	return extractEventAttr(res, "message_id", op)
}

// RespondToMessage records the reply to a message that requires one. The
// contract enforces single-response semantics; nothing is checked locally.
func (s *MessageServiceImpl) RespondToMessage(ctx context.Context, messageID string, response map[string]any) (*primary.TxResult, error) {
	const op = "respond_to_message"

	content, err := encodeJSON(op, response)
	if err != nil {
		return nil, err
	}
	cmd := envelope(op, map[string]any{
		"message_id":       messageID,
		"from_agent_id":    s.agentID,
		"response_content": content,
	})

	res, err := s.gateway.Execute(ctx, s.contract, cmd)
	if err != nil {
		return nil, err
	}
	return txResult(res), nil
}

// GetMessages returns the most recent messages for the calling agent.
// Messages with unrecognized type tags decode to the custom variant.
func (s *MessageServiceImpl) GetMessages(ctx context.Context, req primary.ListMessagesRequest) ([]*primary.Message, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	body := map[string]any{
		"agent_id": s.agentID,
		"limit":    limit,
	}
	if req.Type != nil {
		body["message_type"] = encodeMessageType(*req.Type)
	}
	query := envelope("agent_messages", body)

	var resp struct {
		Messages []messageRecord `json:"messages"`
	}
	if err := s.gateway.Query(ctx, s.contract, query, &resp); err != nil {
		return nil, err
	}

	messages := make([]*primary.Message, 0, len(resp.Messages))
	for i := range resp.Messages {
		messages = append(messages, resp.Messages[i].toMessage())
	}
	return messages, nil
}

// GetMessage returns a single message by id.
func (s *MessageServiceImpl) GetMessage(ctx context.Context, messageID string) (*primary.Message, error) {
	query := envelope("message", map[string]any{"message_id": messageID})

	var resp struct {
		Message messageRecord `json:"message"`
	}
	if err := s.gateway.Query(ctx, s.contract, query, &resp); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, &primary.NotFoundError{Entity: "message", ID: messageID}
		}
		return nil, err
	}
	return resp.Message.toMessage(), nil
}
