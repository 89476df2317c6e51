package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/agora/internal/ports/primary"
)

// CommerceAdapter is a thin adapter that translates CLI operations to
// CommerceService calls.
type CommerceAdapter struct {
	service primary.CommerceService
	out     io.Writer
}

// NewCommerceAdapter creates a new CommerceAdapter with the given service.
func NewCommerceAdapter(service primary.CommerceService, out io.Writer) *CommerceAdapter {
	return &CommerceAdapter{
		service: service,
		out:     out,
	}
}

// CreatePO submits a purchase order as the buyer.
func (a *CommerceAdapter) CreatePO(ctx context.Context, req primary.CreatePurchaseOrderRequest) error {
	poID, err := a.service.CreatePurchaseOrder(ctx, req)
	if err != nil {
		return err
	}

	var total int64
	for _, item := range req.Items {
		total += item.Quantity * item.UnitPrice
	}
	fmt.Fprintf(a.out, "✓ Created purchase order %s for %s (%d items, total %d)\n", poID, req.SellerAgentID, len(req.Items), total)
	return nil
}

// UpdatePO requests a purchase order status transition.
func (a *CommerceAdapter) UpdatePO(ctx context.Context, poID string, status primary.PurchaseOrderStatus, notes string) error {
	res, err := a.service.UpdatePurchaseOrder(ctx, poID, status, notes)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Purchase order %s updated to %s (tx %s)\n", poID, status, res.TxHash)
	return nil
}

// ShowPO displays a purchase order with its items.
func (a *CommerceAdapter) ShowPO(ctx context.Context, poID string) error {
	po, err := a.service.GetPurchaseOrder(ctx, poID)
	if err != nil {
		return fmt.Errorf("failed to get purchase order: %w", err)
	}

	fmt.Fprintf(a.out, "\nPurchase Order: %s\n", po.POID)
	fmt.Fprintf(a.out, "Buyer:   %s\n", po.BuyerAgentID)
	fmt.Fprintf(a.out, "Seller:  %s\n", po.SellerAgentID)
	fmt.Fprintf(a.out, "Status:  %s\n", colorizeOrderStatus(po.Status))
	fmt.Fprintf(a.out, "Total:   %d\n", po.TotalAmount)
	fmt.Fprintf(a.out, "Created: %s\n", formatUnix(po.CreatedAt))
	if po.DeliveryTerms != "" {
		fmt.Fprintf(a.out, "Delivery: %s\n", po.DeliveryTerms)
	}
	fmt.Fprintf(a.out, "Payment: %s", po.PaymentTerms.PaymentType)
	if po.PaymentTerms.DepositPercentage != nil {
		fmt.Fprintf(a.out, " (%d%% deposit)", *po.PaymentTerms.DepositPercentage)
	}
	if po.PaymentTerms.NetDays > 0 {
		fmt.Fprintf(a.out, " (net %d days)", po.PaymentTerms.NetDays)
	}
	fmt.Fprintln(a.out)
	if po.InvoiceID != "" {
		fmt.Fprintf(a.out, "Invoice: %s\n", po.InvoiceID)
	}

	fmt.Fprintf(a.out, "\n%-12s %-30s %8s %10s %-8s\n", "ITEM", "DESCRIPTION", "QTY", "PRICE", "UNIT")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, item := range po.Items {
		fmt.Fprintf(a.out, "%-12s %-30s %8d %10d %-8s\n", item.ItemID, item.Description, item.Quantity, item.UnitPrice, item.Unit)
	}
	fmt.Fprintln(a.out)

	return nil
}

// CreateInvoice submits an invoice against a purchase order as the seller.
func (a *CommerceAdapter) CreateInvoice(ctx context.Context, req primary.CreateInvoiceRequest) error {
	invoiceID, err := a.service.CreateInvoice(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created invoice %s for purchase order %s\n", invoiceID, req.POID)
	return nil
}

// PayInvoice settles an invoice as the buyer.
func (a *CommerceAdapter) PayInvoice(ctx context.Context, invoiceID, paymentReference string) error {
	res, err := a.service.PayInvoice(ctx, invoiceID, paymentReference)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Paid invoice %s (tx %s)\n", invoiceID, res.TxHash)
	return nil
}

// ShowInvoice displays an invoice with its line items.
func (a *CommerceAdapter) ShowInvoice(ctx context.Context, invoiceID string) error {
	inv, err := a.service.GetInvoice(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to get invoice: %w", err)
	}

	fmt.Fprintf(a.out, "\nInvoice: %s\n", inv.InvoiceID)
	fmt.Fprintf(a.out, "Order:   %s\n", inv.POID)
	fmt.Fprintf(a.out, "Seller:  %s\n", inv.SellerAgentID)
	fmt.Fprintf(a.out, "Buyer:   %s\n", inv.BuyerAgentID)
	fmt.Fprintf(a.out, "Due:     %s\n", formatUnix(inv.DueDate))
	if inv.Paid {
		paidAt := "-"
		if inv.PaidAt != nil {
			paidAt = formatUnix(*inv.PaidAt)
		}
		fmt.Fprintf(a.out, "Paid:    %s (%s", colorizePaid(true), paidAt)
		if inv.PaymentReference != "" {
			fmt.Fprintf(a.out, ", ref %s", inv.PaymentReference)
		}
		fmt.Fprintln(a.out, ")")
	} else {
		fmt.Fprintf(a.out, "Paid:    %s\n", colorizePaid(false))
	}

	fmt.Fprintf(a.out, "\n%-30s %8s %10s %-12s\n", "DESCRIPTION", "QTY", "PRICE", "PO ITEM")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, line := range inv.LineItems {
		fmt.Fprintf(a.out, "%-30s %8d %10d %-12s\n", line.Description, line.Quantity, line.UnitPrice, line.POItemID)
	}
	fmt.Fprintf(a.out, "\nSubtotal: %d\n", inv.Subtotal)
	if inv.TaxAmount > 0 {
		fmt.Fprintf(a.out, "Tax:      %d\n", inv.TaxAmount)
	}
	if inv.DiscountAmount > 0 {
		fmt.Fprintf(a.out, "Discount: -%d\n", inv.DiscountAmount)
	}
	fmt.Fprintf(a.out, "Total:    %d\n", inv.TotalAmount)
	fmt.Fprintln(a.out)

	return nil
}

// ConfirmReceipt records received quantities and conditions for a purchase
// order's items as the buyer.
func (a *CommerceAdapter) ConfirmReceipt(ctx context.Context, poID string, items []primary.ItemReceipt, notes string) error {
	res, err := a.service.ConfirmReceipt(ctx, poID, items, notes)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Confirmed receipt for purchase order %s (%d items, tx %s)\n", poID, len(items), res.TxHash)
	return nil
}

// Reconcile runs the contract-side account reconciliation over a period.
func (a *CommerceAdapter) Reconcile(ctx context.Context, periodStart, periodEnd int64) error {
	res, err := a.service.ReconcileAccounts(ctx, periodStart, periodEnd)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Reconciliation submitted (tx %s)\n", res.TxHash)
	return nil
}
