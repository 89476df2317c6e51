// Package app implements the primary ports over the contract gateway.
package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/ports/secondary"
)

// flexInt decodes ledger integers that arrive either as JSON numbers (u64
// fields) or as quoted strings (Uint128 fields).
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return err
		}
		s = unquoted
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", s, err)
	}
	*f = flexInt(v)
	return nil
}

// coin is the wire form of a monetary amount.
type coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func newCoin(denom string, amount int64) coin {
	return coin{Denom: denom, Amount: strconv.FormatInt(amount, 10)}
}

// wireCoin mirrors coin on the read side.
type wireCoin struct {
	Denom  string  `json:"denom"`
	Amount flexInt `json:"amount"`
}

// envelope wraps a command body under its operation name, the contract's
// single-variant message convention.
func envelope(op string, body any) map[string]any {
	return map[string]any{op: body}
}

// encodeMessageType renders a message type in wire form: a bare string for
// fixed kinds, {"custom": label} for the custom variant.
func encodeMessageType(t primary.MessageType) any {
	if t.Kind == primary.MessageKindCustom {
		label := t.Label
		if label == "" {
			label = "general"
		}
		return map[string]string{"custom": label}
	}
	return string(t.Kind)
}

// decodeMessageType parses a wire message type. Unrecognized or malformed
// values decode to the custom variant rather than failing: an unknown type
// must never break listing.
func decodeMessageType(raw json.RawMessage) primary.MessageType {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch kind := primary.MessageKind(s); kind {
		case primary.MessageKindServiceRequest, primary.MessageKindServiceResponse,
			primary.MessageKindNegotiation, primary.MessageKindInformation,
			primary.MessageKindAlert, primary.MessageKindPurchaseOrder,
			primary.MessageKindInvoice, primary.MessageKindPaymentNotification,
			primary.MessageKindReceiptConfirmation:
			return primary.MessageType{Kind: kind}
		default:
			return primary.CustomMessageType("general")
		}
	}
	var tagged struct {
		Custom *string `json:"custom"`
	}
	if err := json.Unmarshal(raw, &tagged); err == nil && tagged.Custom != nil {
		return primary.CustomMessageType(*tagged.Custom)
	}
	return primary.CustomMessageType("general")
}

// txResult maps a committed execution to its boundary form.
func txResult(res *secondary.ExecResult) *primary.TxResult {
	return &primary.TxResult{TxHash: res.TxHash, Height: res.Height}
}

// encodeJSON serializes an opaque payload for transmission. Payloads are
// caller-constructed maps; failure here means a non-serializable value and
// is a caller bug surfaced as an error by the operations that use it.
func encodeJSON(op string, payload map[string]any) (string, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%s: encode payload: %w", op, err)
	}
	return string(data), nil
}
