package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/agora/internal/ports/primary"
)

// mockMessageService implements primary.MessageService for testing
type mockMessageService struct {
	sendMessageFn func(ctx context.Context, req primary.SendMessageRequest) (string, error)
	respondFn     func(ctx context.Context, messageID string, response map[string]any) (*primary.TxResult, error)
	getMessagesFn func(ctx context.Context, req primary.ListMessagesRequest) ([]*primary.Message, error)
	getMessageFn  func(ctx context.Context, messageID string) (*primary.Message, error)

	// Track calls for verification
	lastSendReq primary.SendMessageRequest
}

func (m *mockMessageService) SendMessage(ctx context.Context, req primary.SendMessageRequest) (string, error) {
	m.lastSendReq = req
	if m.sendMessageFn != nil {
		return m.sendMessageFn(ctx, req)
	}
	return "msg_1", nil
}

func (m *mockMessageService) RespondToMessage(ctx context.Context, messageID string, response map[string]any) (*primary.TxResult, error) {
	if m.respondFn != nil {
		return m.respondFn(ctx, messageID, response)
	}
	return &primary.TxResult{TxHash: "ABC123", Height: 42}, nil
}

func (m *mockMessageService) GetMessages(ctx context.Context, req primary.ListMessagesRequest) ([]*primary.Message, error) {
	if m.getMessagesFn != nil {
		return m.getMessagesFn(ctx, req)
	}
	return nil, nil
}

func (m *mockMessageService) GetMessage(ctx context.Context, messageID string) (*primary.Message, error) {
	if m.getMessageFn != nil {
		return m.getMessageFn(ctx, messageID)
	}
	return &primary.Message{MessageID: messageID}, nil
}

func TestMessageAdapterSend(t *testing.T) {
	mock := &mockMessageService{}
	var buf bytes.Buffer
	adapter := NewMessageAdapter(mock, &buf)

	err := adapter.Send(context.Background(), "agent_bob", primary.MessageType{Kind: primary.MessageKindAlert}, map[string]any{"text": "hi"}, true)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if mock.lastSendReq.ToAgentID != "agent_bob" {
		t.Errorf("expected recipient agent_bob, got %q", mock.lastSendReq.ToAgentID)
	}
	if !mock.lastSendReq.RequiresResponse {
		t.Error("expected RequiresResponse to be set")
	}
	if !strings.Contains(buf.String(), "msg_1") {
		t.Errorf("output missing message id: %q", buf.String())
	}
}

func TestMessageAdapterSendError(t *testing.T) {
	mock := &mockMessageService{
		sendMessageFn: func(ctx context.Context, req primary.SendMessageRequest) (string, error) {
			return "", errors.New("gateway down")
		},
	}
	var buf bytes.Buffer
	adapter := NewMessageAdapter(mock, &buf)

	err := adapter.Send(context.Background(), "agent_bob", primary.MessageType{Kind: primary.MessageKindAlert}, nil, false)
	if err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on error, got %q", buf.String())
	}
}

func TestMessageAdapterInboxEmpty(t *testing.T) {
	mock := &mockMessageService{}
	var buf bytes.Buffer
	adapter := NewMessageAdapter(mock, &buf)

	if err := adapter.Inbox(context.Background(), nil, 0); err != nil {
		t.Fatalf("Inbox failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No messages found") {
		t.Errorf("expected empty-inbox message, got %q", buf.String())
	}
}

func TestMessageAdapterInboxTable(t *testing.T) {
	mock := &mockMessageService{
		getMessagesFn: func(ctx context.Context, req primary.ListMessagesRequest) ([]*primary.Message, error) {
			return []*primary.Message{
				{
					MessageID:        "msg_1",
					FromAgentID:      "agent_alice",
					Type:             primary.MessageType{Kind: primary.MessageKindInvoice},
					RequiresResponse: true,
				},
				{
					MessageID:   "msg_2",
					FromAgentID: "agent_bob",
					Type:        primary.CustomMessageType("shipping"),
					Response:    &primary.MessageResponse{Content: "{}"},
				},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewMessageAdapter(mock, &buf)

	if err := adapter.Inbox(context.Background(), nil, 0); err != nil {
		t.Fatalf("Inbox failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "msg_1") || !strings.Contains(out, "msg_2") {
		t.Errorf("output missing message ids: %q", out)
	}
	if !strings.Contains(out, "custom:shipping") {
		t.Errorf("custom type not rendered with label: %q", out)
	}
	if !strings.Contains(out, "unanswered") {
		t.Errorf("pending reply not flagged: %q", out)
	}
}

func TestMessageAdapterRead(t *testing.T) {
	mock := &mockMessageService{
		getMessageFn: func(ctx context.Context, messageID string) (*primary.Message, error) {
			return &primary.Message{
				MessageID:        messageID,
				FromAgentID:      "agent_alice",
				ToAgentID:        "agent_bob",
				Type:             primary.MessageType{Kind: primary.MessageKindNegotiation},
				Content:          `{"offer":100}`,
				RequiresResponse: true,
				Timestamp:        1700000000,
				Response: &primary.MessageResponse{
					Content:     `{"counter":90}`,
					RespondedAt: 1700000100,
				},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewMessageAdapter(mock, &buf)

	if err := adapter.Read(context.Background(), "msg_1"); err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `{"offer":100}`) {
		t.Errorf("content not shown: %q", out)
	}
	if !strings.Contains(out, `{"counter":90}`) {
		t.Errorf("response not shown: %q", out)
	}
}

func TestMessageAdapterRespond(t *testing.T) {
	mock := &mockMessageService{}
	var buf bytes.Buffer
	adapter := NewMessageAdapter(mock, &buf)

	if err := adapter.Respond(context.Background(), "msg_1", map[string]any{"ok": true}); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if !strings.Contains(buf.String(), "ABC123") {
		t.Errorf("tx hash not shown: %q", buf.String())
	}
}
