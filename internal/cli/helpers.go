package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/agora/internal/ports/primary"
)

// messageKinds maps CLI type names to their fixed message kinds. Anything
// else becomes a custom type with the given name as its label.
var messageKinds = map[string]primary.MessageKind{
	"service_request":      primary.MessageKindServiceRequest,
	"service_response":     primary.MessageKindServiceResponse,
	"negotiation":          primary.MessageKindNegotiation,
	"information":          primary.MessageKindInformation,
	"alert":                primary.MessageKindAlert,
	"purchase_order":       primary.MessageKindPurchaseOrder,
	"invoice":              primary.MessageKindInvoice,
	"payment_notification": primary.MessageKindPaymentNotification,
	"receipt_confirmation": primary.MessageKindReceiptConfirmation,
}

// parseMessageType resolves a type name from the CLI into a MessageType.
func parseMessageType(name string) primary.MessageType {
	if kind, ok := messageKinds[name]; ok {
		return primary.MessageType{Kind: kind}
	}
	return primary.CustomMessageType(name)
}

// parseJSONObject parses a CLI-supplied JSON object argument.
func parseJSONObject(flag, value string) (map[string]any, error) {
	if value == "" {
		return nil, nil
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(value), &obj); err != nil {
		return nil, fmt.Errorf("invalid JSON for --%s: %w", flag, err)
	}
	return obj, nil
}

// parseTimestamp accepts a unix timestamp or a YYYY-MM-DD date. Empty
// input parses to zero, meaning unbounded.
func parseTimestamp(flag, value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ts, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s %q: want unix timestamp or YYYY-MM-DD", flag, value)
	}
	return t.Unix(), nil
}

// parseOrderItem parses one --item spec of the form
// "id:description:quantity:unit_price[:unit]".
func parseOrderItem(spec string) (primary.PurchaseOrderItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 4 || len(parts) > 5 {
		return primary.PurchaseOrderItem{}, fmt.Errorf("invalid --item %q: want id:description:quantity:unit_price[:unit]", spec)
	}

	qty, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || qty <= 0 {
		return primary.PurchaseOrderItem{}, fmt.Errorf("invalid quantity in --item %q", spec)
	}
	price, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || price < 0 {
		return primary.PurchaseOrderItem{}, fmt.Errorf("invalid unit price in --item %q", spec)
	}

	item := primary.PurchaseOrderItem{
		ItemID:      parts[0],
		Description: parts[1],
		Quantity:    qty,
		UnitPrice:   price,
		Unit:        "unit",
	}
	if len(parts) == 5 && parts[4] != "" {
		item.Unit = parts[4]
	}
	return item, nil
}

// parseInvoiceLine parses one --line spec of the form
// "description:quantity:unit_price[:po_item_id]".
func parseInvoiceLine(spec string) (primary.InvoiceLineItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return primary.InvoiceLineItem{}, fmt.Errorf("invalid --line %q: want description:quantity:unit_price[:po_item_id]", spec)
	}

	qty, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || qty <= 0 {
		return primary.InvoiceLineItem{}, fmt.Errorf("invalid quantity in --line %q", spec)
	}
	price, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || price < 0 {
		return primary.InvoiceLineItem{}, fmt.Errorf("invalid unit price in --line %q", spec)
	}

	line := primary.InvoiceLineItem{
		Description: parts[0],
		Quantity:    qty,
		UnitPrice:   price,
	}
	if len(parts) == 4 {
		line.POItemID = parts[3]
	}
	return line, nil
}

// parseItemReceipt parses one --item spec of the form
// "po_item_id:quantity:condition[:notes]".
func parseItemReceipt(spec string) (primary.ItemReceipt, error) {
	parts := strings.SplitN(spec, ":", 4)
	if len(parts) < 3 {
		return primary.ItemReceipt{}, fmt.Errorf("invalid --item %q: want po_item_id:quantity:condition[:notes]", spec)
	}

	qty, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || qty < 0 {
		return primary.ItemReceipt{}, fmt.Errorf("invalid quantity in --item %q", spec)
	}

	condition := primary.ItemCondition(parts[2])
	switch condition {
	case primary.ConditionGood, primary.ConditionDamaged, primary.ConditionMissing, primary.ConditionWrong:
	default:
		return primary.ItemReceipt{}, fmt.Errorf("invalid condition %q: want good, damaged, missing, or wrong", parts[2])
	}

	receipt := primary.ItemReceipt{
		POItemID:         parts[0],
		QuantityReceived: qty,
		Condition:        condition,
	}
	if len(parts) == 4 {
		receipt.Notes = parts[3]
	}
	return receipt, nil
}
