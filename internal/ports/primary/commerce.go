package primary

import "context"

// PurchaseOrderStatus is the purchase order state machine. The contract is
// authoritative for the transition table; this layer only serializes
// requested transitions and surfaces rejections.
type PurchaseOrderStatus string

const (
	POStatusDraft      PurchaseOrderStatus = "draft"
	POStatusSubmitted  PurchaseOrderStatus = "submitted"
	POStatusAccepted   PurchaseOrderStatus = "accepted"
	POStatusRejected   PurchaseOrderStatus = "rejected"
	POStatusInProgress PurchaseOrderStatus = "in_progress"
	POStatusDelivered  PurchaseOrderStatus = "delivered"
	POStatusCompleted  PurchaseOrderStatus = "completed"
	POStatusCancelled  PurchaseOrderStatus = "cancelled"
)

// PaymentType enumerates the payment term variants.
type PaymentType string

const (
	PaymentTypeImmediate PaymentType = "immediate"
	PaymentTypeNet       PaymentType = "net"
	PaymentTypeDeposit   PaymentType = "deposit"
	PaymentTypeMilestone PaymentType = "milestone"
)

// PaymentTerms describes how a purchase order is settled.
// DepositPercentage is set only when PaymentType is deposit.
type PaymentTerms struct {
	PaymentType       PaymentType
	DepositPercentage *int64
	NetDays           int64
}

// PurchaseOrderItem is one ordered line of a purchase order.
type PurchaseOrderItem struct {
	ItemID      string
	Description string
	Quantity    int64
	UnitPrice   int64
	Unit        string
}

// PurchaseOrder is a buyer/seller agreement on itemized goods or services.
// TotalAmount equals the sum over items of quantity times unit price.
type PurchaseOrder struct {
	POID          string
	BuyerAgentID  string
	SellerAgentID string
	Items         []PurchaseOrderItem
	TotalAmount   int64
	Status        PurchaseOrderStatus
	CreatedAt     int64
	UpdatedAt     int64
	DeliveryTerms string
	PaymentTerms  PaymentTerms
	InvoiceID     string
}

// InvoiceLineItem is one billed line, optionally referencing the purchase
// order item it covers.
type InvoiceLineItem struct {
	Description string
	Quantity    int64
	UnitPrice   int64
	POItemID    string
}

// Invoice is a billing document tied to a purchase order.
// TotalAmount equals Subtotal plus TaxAmount minus DiscountAmount.
type Invoice struct {
	InvoiceID        string
	POID             string
	SellerAgentID    string
	BuyerAgentID     string
	LineItems        []InvoiceLineItem
	Subtotal         int64
	TaxAmount        int64
	DiscountAmount   int64
	TotalAmount      int64
	Paid             bool
	PaidAt           *int64
	CreatedAt        int64
	DueDate          int64
	PaymentReference string
}

// ItemCondition describes the state of a received purchase order item.
type ItemCondition string

const (
	ConditionGood    ItemCondition = "good"
	ConditionDamaged ItemCondition = "damaged"
	ConditionMissing ItemCondition = "missing"
	ConditionWrong   ItemCondition = "wrong"
)

// ItemReceipt is the confirm-receipt input for one purchase order item.
// It is not persisted as a standalone entity by this layer.
type ItemReceipt struct {
	POItemID         string
	QuantityReceived int64
	Condition        ItemCondition
	Notes            string
}

// CreatePurchaseOrderRequest contains parameters for creating a purchase
// order. The caller is the buyer.
type CreatePurchaseOrderRequest struct {
	SellerAgentID string
	Items         []PurchaseOrderItem
	DeliveryTerms string
	PaymentTerms  PaymentTerms
	Metadata      string
}

// CreateInvoiceRequest contains parameters for invoicing a purchase order.
// The caller is the seller. TaxRate and DiscountRate are basis points.
type CreateInvoiceRequest struct {
	POID         string
	LineItems    []InvoiceLineItem
	DueDays      int64
	TaxRate      *int64
	DiscountRate *int64
	Metadata     string
}

// CommerceService defines the primary port for the purchase-order and
// invoice lifecycle.
type CommerceService interface {
	// CreatePurchaseOrder submits a purchase order and returns its
	// ledger-assigned id.
	CreatePurchaseOrder(ctx context.Context, req CreatePurchaseOrderRequest) (string, error)

	// UpdatePurchaseOrder requests a status transition. The contract
	// decides whether the transition is legal.
	UpdatePurchaseOrder(ctx context.Context, poID string, status PurchaseOrderStatus, notes string) (*TxResult, error)

	// CreateInvoice submits an invoice against a purchase order and
	// returns its ledger-assigned id.
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (string, error)

	// PayInvoice settles an invoice as the buyer.
	PayInvoice(ctx context.Context, invoiceID, paymentReference string) (*TxResult, error)

	// ConfirmReceipt records received quantities and conditions for a
	// purchase order's items as the buyer.
	ConfirmReceipt(ctx context.Context, poID string, itemsReceived []ItemReceipt, notes string) (*TxResult, error)

	// GetPurchaseOrder returns a purchase order by id.
	GetPurchaseOrder(ctx context.Context, poID string) (*PurchaseOrder, error)

	// GetInvoice returns an invoice by id.
	GetInvoice(ctx context.Context, invoiceID string) (*Invoice, error)

	// ReconcileAccounts runs the contract-side reconciliation for the
	// calling agent over a period.
	ReconcileAccounts(ctx context.Context, periodStart, periodEnd int64) (*TxResult, error)
}
