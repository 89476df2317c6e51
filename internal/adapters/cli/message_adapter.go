package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/agora/internal/ports/primary"
)

// MessageAdapter is a thin adapter that translates CLI operations to
// MessageService calls.
type MessageAdapter struct {
	service primary.MessageService
	out     io.Writer
}

// NewMessageAdapter creates a new MessageAdapter with the given service.
func NewMessageAdapter(service primary.MessageService, out io.Writer) *MessageAdapter {
	return &MessageAdapter{
		service: service,
		out:     out,
	}
}

// Send submits a message to another agent.
func (a *MessageAdapter) Send(ctx context.Context, toAgentID string, msgType primary.MessageType, content map[string]any, requiresResponse bool) error {
	messageID, err := a.service.SendMessage(ctx, primary.SendMessageRequest{
		ToAgentID:        toAgentID,
		Type:             msgType,
		Content:          content,
		RequiresResponse: requiresResponse,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Sent message %s to %s\n", messageID, toAgentID)
	return nil
}

// Inbox lists recent messages, optionally filtered by type.
func (a *MessageAdapter) Inbox(ctx context.Context, msgType *primary.MessageType, limit int) error {
	messages, err := a.service.GetMessages(ctx, primary.ListMessagesRequest{
		Type:  msgType,
		Limit: limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}

	if len(messages) == 0 {
		fmt.Fprintln(a.out, "No messages found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-15s %-20s %-22s %-6s %s\n", "ID", "FROM", "TYPE", "REPLY", "STATUS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, m := range messages {
		reply := ""
		if m.RequiresResponse {
			reply = "yes"
		}
		status := "unanswered"
		if !m.RequiresResponse {
			status = "-"
		} else if m.Response != nil {
			status = "answered"
		}
		fmt.Fprintf(a.out, "%-15s %-20s %-22s %-6s %s\n", m.MessageID, m.FromAgentID, m.Type.String(), reply, status)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Read displays a single message with its content and any response.
func (a *MessageAdapter) Read(ctx context.Context, messageID string) error {
	msg, err := a.service.GetMessage(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to get message: %w", err)
	}

	fmt.Fprintf(a.out, "\nMessage: %s\n", msg.MessageID)
	fmt.Fprintf(a.out, "From:    %s\n", msg.FromAgentID)
	fmt.Fprintf(a.out, "To:      %s\n", msg.ToAgentID)
	fmt.Fprintf(a.out, "Type:    %s\n", msg.Type.String())
	fmt.Fprintf(a.out, "Sent:    %s\n", formatUnix(msg.Timestamp))
	if msg.RequiresResponse {
		fmt.Fprintln(a.out, "Requires response: yes")
	}
	fmt.Fprintf(a.out, "Content: %s\n", msg.Content)
	if msg.Response != nil {
		fmt.Fprintf(a.out, "\nResponse (%s):\n", formatUnix(msg.Response.RespondedAt))
		fmt.Fprintf(a.out, "  %s\n", msg.Response.Content)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Respond records the reply to a message that requires one.
func (a *MessageAdapter) Respond(ctx context.Context, messageID string, response map[string]any) error {
	res, err := a.service.RespondToMessage(ctx, messageID, response)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Responded to message %s (tx %s)\n", messageID, res.TxHash)
	return nil
}
