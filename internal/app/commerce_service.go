package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/ports/secondary"
)

// CommerceServiceImpl implements the CommerceService interface over the
// contract gateway. The contract owns the purchase-order transition table;
// this layer serializes requests and surfaces rejections.
type CommerceServiceImpl struct {
	gateway  secondary.ContractGateway
	contract string
	agentID  string
}

// NewCommerceService creates a new CommerceService bound to the calling
// agent.
func NewCommerceService(gateway secondary.ContractGateway, contract, agentID string) *CommerceServiceImpl {
	return &CommerceServiceImpl{
		gateway:  gateway,
		contract: contract,
		agentID:  agentID,
	}
}

// CreatePurchaseOrder submits a purchase order as the buyer and returns
// its ledger-assigned id. The total is computed locally and sent for the
// contract to cross-check; the contract's figure is authoritative.
func (s *CommerceServiceImpl) CreatePurchaseOrder(ctx context.Context, req primary.CreatePurchaseOrderRequest) (string, error) {
	const op = "create_purchase_order"

	if req.SellerAgentID == "" {
		return "", fmt.Errorf("%s: seller agent id is required", op)
	}
	if len(req.Items) == 0 {
		return "", fmt.Errorf("%s: at least one item is required", op)
	}

	var total int64
	items := make([]map[string]any, 0, len(req.Items))
	for i, item := range req.Items {
		if item.Description == "" {
			return "", fmt.Errorf("%s: item %d: description is required", op, i)
		}
		if item.Quantity <= 0 {
			return "", fmt.Errorf("%s: item %d: quantity must be positive", op, i)
		}
		if item.UnitPrice <= 0 {
			return "", fmt.Errorf("%s: item %d: unit price must be positive", op, i)
		}
		total += item.Quantity * item.UnitPrice
		items = append(items, map[string]any{
			"item_id":     item.ItemID,
			"description": item.Description,
			"quantity":    strconv.FormatInt(item.Quantity, 10),
			"unit_price":  strconv.FormatInt(item.UnitPrice, 10),
			"unit":        item.Unit,
		})
	}

	terms := map[string]any{
		"payment_type": string(req.PaymentTerms.PaymentType),
		"net_days":     strconv.FormatInt(req.PaymentTerms.NetDays, 10),
	}
	if req.PaymentTerms.DepositPercentage != nil {
		terms["deposit_percentage"] = *req.PaymentTerms.DepositPercentage
	}

	body := map[string]any{
		"buyer_agent_id":  s.agentID,
		"seller_agent_id": req.SellerAgentID,
		"items":           items,
		"total_amount":    strconv.FormatInt(total, 10),
		"delivery_terms":  req.DeliveryTerms,
		"payment_terms":   terms,
	}
	if req.Metadata != "" {
		body["metadata"] = req.Metadata
	}

	res, err := s.gateway.Execute(ctx, s.contract, envelope(op, body))
	if err != nil {
		return "", err
	}
	return extractEventAttr(res, "po_id", op)
}

// UpdatePurchaseOrder requests a status transition. An illegal transition
// is rejected by the contract and surfaces as a DomainError.
func (s *CommerceServiceImpl) UpdatePurchaseOrder(ctx context.Context, poID string, status primary.PurchaseOrderStatus, notes string) (*primary.TxResult, error) {
	body := map[string]any{
		"po_id":            poID,
		"status":           string(status),
		"updater_agent_id": s.agentID,
	}
	if notes != "" {
		body["notes"] = notes
	}

	res, err := s.gateway.Execute(ctx, s.contract, envelope("update_purchase_order", body))
	if err != nil {
		return nil, err
	}
	return txResult(res), nil
}

// CreateInvoice submits an invoice as the seller and returns its
// ledger-assigned id. The due date is the one piece of domain arithmetic
// done locally: now plus DueDays days, sent as an absolute timestamp.
func (s *CommerceServiceImpl) CreateInvoice(ctx context.Context, req primary.CreateInvoiceRequest) (string, error) {
	const op = "create_invoice"

	if req.POID == "" {
		return "", fmt.Errorf("%s: purchase order id is required", op)
	}
	if len(req.LineItems) == 0 {
		return "", fmt.Errorf("%s: at least one line item is required", op)
	}

	items := make([]map[string]any, 0, len(req.LineItems))
	for i, item := range req.LineItems {
		if item.Description == "" {
			return "", fmt.Errorf("%s: line item %d: description is required", op, i)
		}
		if item.Quantity <= 0 {
			return "", fmt.Errorf("%s: line item %d: quantity must be positive", op, i)
		}
		if item.UnitPrice <= 0 {
			return "", fmt.Errorf("%s: line item %d: unit price must be positive", op, i)
		}
		line := map[string]any{
			"description": item.Description,
			"quantity":    strconv.FormatInt(item.Quantity, 10),
			"unit_price":  strconv.FormatInt(item.UnitPrice, 10),
		}
		if item.POItemID != "" {
			line["po_item_id"] = item.POItemID
		}
		items = append(items, line)
	}

	dueDays := req.DueDays
	if dueDays <= 0 {
		dueDays = 30
	}
	dueDate := time.Now().Unix() + dueDays*86400

	body := map[string]any{
		"po_id":           req.POID,
		"seller_agent_id": s.agentID,
		"line_items":      items,
		"due_date":        strconv.FormatInt(dueDate, 10),
	}
	if req.TaxRate != nil {
		body["tax_rate"] = *req.TaxRate
	}
	if req.DiscountRate != nil {
		body["discount_rate"] = *req.DiscountRate
	}
	if req.Metadata != "" {
		body["metadata"] = req.Metadata
	}

	res, err := s.gateway.Execute(ctx, s.contract, envelope(op, body))
	if err != nil {
		return "", err
	}
	return extractEventAttr(res, "invoice_id", op)
}

// PayInvoice settles an invoice as the buyer. A payment reference is
// generated when the caller does not supply one, so the payment stays
// traceable through the journal and account reconciliation.
func (s *CommerceServiceImpl) PayInvoice(ctx context.Context, invoiceID, paymentReference string) (*primary.TxResult, error) {
	if paymentReference == "" {
		paymentReference = "pay-" + uuid.NewString()
	}
	cmd := envelope("pay_invoice", map[string]any{
		"invoice_id":        invoiceID,
		"buyer_agent_id":    s.agentID,
		"payment_reference": paymentReference,
	})

	res, err := s.gateway.Execute(ctx, s.contract, cmd)
	if err != nil {
		return nil, err
	}
	return txResult(res), nil
}

// ConfirmReceipt records received quantities and conditions for a
// purchase order's items as the buyer.
func (s *CommerceServiceImpl) ConfirmReceipt(ctx context.Context, poID string, itemsReceived []primary.ItemReceipt, notes string) (*primary.TxResult, error) {
	const op = "confirm_receipt"

	if len(itemsReceived) == 0 {
		return nil, fmt.Errorf("%s: at least one received item is required", op)
	}
	items := make([]map[string]any, 0, len(itemsReceived))
	for i, item := range itemsReceived {
		if item.POItemID == "" {
			return nil, fmt.Errorf("%s: item %d: purchase order item id is required", op, i)
		}
		entry := map[string]any{
			"po_item_id":        item.POItemID,
			"quantity_received": strconv.FormatInt(item.QuantityReceived, 10),
			"condition":         string(item.Condition),
		}
		if item.Notes != "" {
			entry["notes"] = item.Notes
		}
		items = append(items, entry)
	}

	body := map[string]any{
		"po_id":          poID,
		"buyer_agent_id": s.agentID,
		"items_received": items,
	}
	if notes != "" {
		body["notes"] = notes
	}

	res, err := s.gateway.Execute(ctx, s.contract, envelope(op, body))
	if err != nil {
		return nil, err
	}
	return txResult(res), nil
}

// purchaseOrderRecord is the wire form of a purchase order.
type purchaseOrderRecord struct {
	POID          string `json:"po_id"`
	BuyerAgentID  string `json:"buyer_agent_id"`
	SellerAgentID string `json:"seller_agent_id"`
	Items         []struct {
		ItemID      string  `json:"item_id"`
		Description string  `json:"description"`
		Quantity    flexInt `json:"quantity"`
		UnitPrice   flexInt `json:"unit_price"`
		Unit        string  `json:"unit"`
	} `json:"items"`
	TotalAmount  flexInt `json:"total_amount"`
	Status       string  `json:"status"`
	CreatedAt    flexInt `json:"created_at"`
	UpdatedAt    flexInt `json:"updated_at"`
	DeliveryTerm string  `json:"delivery_terms"`
	PaymentTerms struct {
		PaymentType       string   `json:"payment_type"`
		DepositPercentage *flexInt `json:"deposit_percentage"`
		NetDays           flexInt  `json:"net_days"`
	} `json:"payment_terms"`
	InvoiceID *string `json:"invoice_id"`
}

func (r *purchaseOrderRecord) toPurchaseOrder() *primary.PurchaseOrder {
	po := &primary.PurchaseOrder{
		POID:          r.POID,
		BuyerAgentID:  r.BuyerAgentID,
		SellerAgentID: r.SellerAgentID,
		TotalAmount:   int64(r.TotalAmount),
		Status:        primary.PurchaseOrderStatus(strings.ToLower(r.Status)),
		CreatedAt:     int64(r.CreatedAt),
		UpdatedAt:     int64(r.UpdatedAt),
		DeliveryTerms: r.DeliveryTerm,
		PaymentTerms: primary.PaymentTerms{
			PaymentType: primary.PaymentType(r.PaymentTerms.PaymentType),
			NetDays:     int64(r.PaymentTerms.NetDays),
		},
	}
	if r.PaymentTerms.DepositPercentage != nil {
		v := int64(*r.PaymentTerms.DepositPercentage)
		po.PaymentTerms.DepositPercentage = &v
	}
	if r.InvoiceID != nil {
		po.InvoiceID = *r.InvoiceID
	}
	for _, item := range r.Items {
		po.Items = append(po.Items, primary.PurchaseOrderItem{
			ItemID:      item.ItemID,
			Description: item.Description,
			Quantity:    int64(item.Quantity),
			UnitPrice:   int64(item.UnitPrice),
			Unit:        item.Unit,
		})
	}
	return po
}

// GetPurchaseOrder returns a purchase order by id. Ledger-held invariants
// are reported as-is; a violating backend is a protocol fault for the
// caller to surface, not something corrected here.
func (s *CommerceServiceImpl) GetPurchaseOrder(ctx context.Context, poID string) (*primary.PurchaseOrder, error) {
	query := envelope("purchase_order", map[string]any{"po_id": poID})

	var resp struct {
		PurchaseOrder purchaseOrderRecord `json:"purchase_order"`
	}
	if err := s.gateway.Query(ctx, s.contract, query, &resp); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, &primary.NotFoundError{Entity: "purchase order", ID: poID}
		}
		return nil, err
	}
	return resp.PurchaseOrder.toPurchaseOrder(), nil
}

// invoiceRecord is the wire form of an invoice.
type invoiceRecord struct {
	InvoiceID     string `json:"invoice_id"`
	POID          string `json:"po_id"`
	SellerAgentID string `json:"seller_agent_id"`
	BuyerAgentID  string `json:"buyer_agent_id"`
	LineItems     []struct {
		Description string  `json:"description"`
		Quantity    flexInt `json:"quantity"`
		UnitPrice   flexInt `json:"unit_price"`
		POItemID    *string `json:"po_item_id"`
	} `json:"line_items"`
	Subtotal         flexInt  `json:"subtotal"`
	TaxAmount        flexInt  `json:"tax_amount"`
	DiscountAmount   flexInt  `json:"discount_amount"`
	TotalAmount      flexInt  `json:"total_amount"`
	Paid             bool     `json:"paid"`
	PaidAt           *flexInt `json:"paid_at"`
	CreatedAt        flexInt  `json:"created_at"`
	DueDate          flexInt  `json:"due_date"`
	PaymentReference *string  `json:"payment_reference"`
}

func (r *invoiceRecord) toInvoice() *primary.Invoice {
	inv := &primary.Invoice{
		InvoiceID:      r.InvoiceID,
		POID:           r.POID,
		SellerAgentID:  r.SellerAgentID,
		BuyerAgentID:   r.BuyerAgentID,
		Subtotal:       int64(r.Subtotal),
		TaxAmount:      int64(r.TaxAmount),
		DiscountAmount: int64(r.DiscountAmount),
		TotalAmount:    int64(r.TotalAmount),
		Paid:           r.Paid,
		CreatedAt:      int64(r.CreatedAt),
		DueDate:        int64(r.DueDate),
	}
	if r.PaidAt != nil {
		v := int64(*r.PaidAt)
		inv.PaidAt = &v
	}
	if r.PaymentReference != nil {
		inv.PaymentReference = *r.PaymentReference
	}
	for _, item := range r.LineItems {
		line := primary.InvoiceLineItem{
			Description: item.Description,
			Quantity:    int64(item.Quantity),
			UnitPrice:   int64(item.UnitPrice),
		}
		if item.POItemID != nil {
			line.POItemID = *item.POItemID
		}
		inv.LineItems = append(inv.LineItems, line)
	}
	return inv
}

// GetInvoice returns an invoice by id.
func (s *CommerceServiceImpl) GetInvoice(ctx context.Context, invoiceID string) (*primary.Invoice, error) {
	query := envelope("invoice", map[string]any{"invoice_id": invoiceID})

	var resp struct {
		Invoice invoiceRecord `json:"invoice"`
	}
	if err := s.gateway.Query(ctx, s.contract, query, &resp); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, &primary.NotFoundError{Entity: "invoice", ID: invoiceID}
		}
		return nil, err
	}
	return resp.Invoice.toInvoice(), nil
}

// ReconcileAccounts runs the contract-side reconciliation for the calling
// agent over a period.
func (s *CommerceServiceImpl) ReconcileAccounts(ctx context.Context, periodStart, periodEnd int64) (*primary.TxResult, error) {
	cmd := envelope("reconcile_accounts", map[string]any{
		"agent_id":     s.agentID,
		"period_start": strconv.FormatInt(periodStart, 10),
		"period_end":   strconv.FormatInt(periodEnd, 10),
	})

	res, err := s.gateway.Execute(ctx, s.contract, cmd)
	if err != nil {
		return nil, err
	}
	return txResult(res), nil
}
