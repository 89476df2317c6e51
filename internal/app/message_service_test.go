package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/ports/secondary"
)

func TestSendMessageExtractsID(t *testing.T) {
	gw := &mockGateway{execResult: execResultWithAttr("message_id", "msg_42")}
	svc := NewMessageService(gw, "wasm1contract", "agent_alice")

	id, err := svc.SendMessage(context.Background(), primary.SendMessageRequest{
		ToAgentID:        "agent_bob",
		Type:             primary.MessageType{Kind: primary.MessageKindNegotiation},
		Content:          map[string]any{"offer": 100},
		RequiresResponse: true,
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if id != "msg_42" {
		t.Errorf("expected id msg_42, got %q", id)
	}

	call := lastExec(t, gw)
	if call.op != "send_message" {
		t.Errorf("expected send_message, got %q", call.op)
	}
	if call.body["to_agent_id"] != "agent_bob" {
		t.Errorf("recipient not in body: %+v", call.body)
	}
	if call.body["message_type"] != "negotiation" {
		t.Errorf("fixed kind should encode as bare string, got %v", call.body["message_type"])
	}
	// Content travels as an encoded JSON string, not a nested object
	if _, ok := call.body["content"].(string); !ok {
		t.Errorf("content should be a JSON string, got %T", call.body["content"])
	}
}

func TestSendMessageCustomTypeEncoding(t *testing.T) {
	gw := &mockGateway{execResult: execResultWithAttr("message_id", "msg_1")}
	svc := NewMessageService(gw, "wasm1contract", "agent_alice")

	_, err := svc.SendMessage(context.Background(), primary.SendMessageRequest{
		ToAgentID: "agent_bob",
		Type:      primary.CustomMessageType("shipping_update"),
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	call := lastExec(t, gw)
	tagged, ok := call.body["message_type"].(map[string]string)
	if !ok || tagged["custom"] != "shipping_update" {
		t.Errorf("custom type should encode as tagged object, got %v", call.body["message_type"])
	}
}

func TestSendMessageMissingEventAttr(t *testing.T) {
	// Committed tx whose events carry no message_id
	gw := &mockGateway{execResult: &secondary.ExecResult{TxHash: "HASH", Height: 1}}
	svc := NewMessageService(gw, "wasm1contract", "agent_alice")

	_, err := svc.SendMessage(context.Background(), primary.SendMessageRequest{ToAgentID: "agent_bob"})
	var extractionErr *primary.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if extractionErr.Attribute != "message_id" {
		t.Errorf("expected message_id attribute, got %q", extractionErr.Attribute)
	}
}

func TestRespondToMessage(t *testing.T) {
	gw := &mockGateway{}
	svc := NewMessageService(gw, "wasm1contract", "agent_alice")

	res, err := svc.RespondToMessage(context.Background(), "msg_1", map[string]any{"answer": 42})
	if err != nil {
		t.Fatalf("RespondToMessage failed: %v", err)
	}
	if res.TxHash != "HASH" {
		t.Errorf("unexpected tx result: %+v", res)
	}

	call := lastExec(t, gw)
	if call.op != "respond_to_message" {
		t.Errorf("expected respond_to_message, got %q", call.op)
	}
	if call.body["message_id"] != "msg_1" {
		t.Errorf("message id not in body: %+v", call.body)
	}
}

func TestGetMessagesDecodesTypes(t *testing.T) {
	gw := &mockGateway{queryResponses: map[string]string{
		"agent_messages": `{"messages":[
			{"message_id":"msg_1","from_agent_id":"a","to_agent_id":"b","message_type":"invoice","content":"{}","requires_response":false,"timestamp":1700000000},
			{"message_id":"msg_2","from_agent_id":"a","to_agent_id":"b","message_type":{"custom":"shipping"},"content":"{}","requires_response":true,"timestamp":"1700000001"},
			{"message_id":"msg_3","from_agent_id":"a","to_agent_id":"b","message_type":"mystery_kind","content":"{}","requires_response":false,"timestamp":1700000002}
		]}`,
	}}
	svc := NewMessageService(gw, "wasm1contract", "agent_bob")

	messages, err := svc.GetMessages(context.Background(), primary.ListMessagesRequest{})
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}

	if messages[0].Type.Kind != primary.MessageKindInvoice {
		t.Errorf("fixed kind not decoded: %+v", messages[0].Type)
	}
	if messages[1].Type.Kind != primary.MessageKindCustom || messages[1].Type.Label != "shipping" {
		t.Errorf("custom type not decoded: %+v", messages[1].Type)
	}
	// Unknown tags decode to the custom variant instead of failing the list
	if messages[2].Type.Kind != primary.MessageKindCustom || messages[2].Type.Label != "general" {
		t.Errorf("unknown type should fall back to custom general: %+v", messages[2].Type)
	}
	// Quoted and bare timestamps both decode
	if messages[1].Timestamp != 1700000001 {
		t.Errorf("quoted timestamp not decoded: %d", messages[1].Timestamp)
	}
}

func TestGetMessageResponseMapping(t *testing.T) {
	gw := &mockGateway{queryResponses: map[string]string{
		"message": `{"message":{
			"message_id":"msg_1","from_agent_id":"a","to_agent_id":"b",
			"message_type":"alert","content":"{\"text\":\"hi\"}","requires_response":true,
			"timestamp":1700000000,
			"response":{"response_content":"{\"ok\":true}","responded_at":1700000100}
		}}`,
	}}
	svc := NewMessageService(gw, "wasm1contract", "agent_bob")

	msg, err := svc.GetMessage(context.Background(), "msg_1")
	if err != nil {
		t.Fatalf("GetMessage failed: %v", err)
	}
	if msg.Response == nil || msg.Response.RespondedAt != 1700000100 {
		t.Errorf("response not mapped: %+v", msg.Response)
	}

	content, err := msg.DecodeContent()
	if err != nil {
		t.Fatalf("DecodeContent failed: %v", err)
	}
	if content["text"] != "hi" {
		t.Errorf("unexpected content: %+v", content)
	}
}

func TestGetMessageNotFound(t *testing.T) {
	gw := &mockGateway{queryErr: fmt.Errorf("query failed: %w", secondary.ErrNotFound)}
	svc := NewMessageService(gw, "wasm1contract", "agent_bob")

	_, err := svc.GetMessage(context.Background(), "msg_missing")
	var notFound *primary.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Entity != "message" || notFound.ID != "msg_missing" {
		t.Errorf("unexpected NotFoundError: %+v", notFound)
	}
}

func TestGetMessagesTypeFilter(t *testing.T) {
	gw := &mockGateway{queryResponses: map[string]string{
		"agent_messages": `{"messages":[]}`,
	}}
	svc := NewMessageService(gw, "wasm1contract", "agent_bob")

	filter := primary.MessageType{Kind: primary.MessageKindInvoice}
	if _, err := svc.GetMessages(context.Background(), primary.ListMessagesRequest{Type: &filter, Limit: 5}); err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(gw.queryCalls) != 1 || gw.queryCalls[0] != "agent_messages" {
		t.Errorf("unexpected query calls: %v", gw.queryCalls)
	}
}
