package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/wire"
)

// InvoiceCmd returns the invoice command
func InvoiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Invoices",
		Long: `Create, pay, and inspect invoices tied to purchase orders.

Rates are given in basis points: --tax-rate 1000 is 10%.`,
	}

	cmd.AddCommand(invoiceCreateCmd())
	cmd.AddCommand(invoicePayCmd())
	cmd.AddCommand(invoiceShowCmd())

	return cmd
}

func invoiceCreateCmd() *cobra.Command {
	var lines []string
	var metadata string
	var dueDays, taxRate, discountRate int64

	cmd := &cobra.Command{
		Use:   "create [po-id]",
		Short: "Create an invoice against a purchase order as the seller",
		Long: `Create an invoice against a purchase order as the seller.

Each --line is description:quantity:unit_price[:po_item_id].

Examples:
  agora invoice create po_1 --line "widgets:3:100:item-1" --due-days 30
  agora invoice create po_1 --line "widgets:3:100" --tax-rate 1000 --discount-rate 500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(lines) == 0 {
				return fmt.Errorf("at least one --line is required")
			}

			lineItems := make([]primary.InvoiceLineItem, 0, len(lines))
			for _, spec := range lines {
				line, err := parseInvoiceLine(spec)
				if err != nil {
					return err
				}
				lineItems = append(lineItems, line)
			}

			req := primary.CreateInvoiceRequest{
				POID:      args[0],
				LineItems: lineItems,
				DueDays:   dueDays,
				Metadata:  metadata,
			}
			if cmd.Flags().Changed("tax-rate") {
				req.TaxRate = &taxRate
			}
			if cmd.Flags().Changed("discount-rate") {
				req.DiscountRate = &discountRate
			}

			return wire.CommerceAdapter().CreateInvoice(cmd.Context(), req)
		},
	}

	cmd.Flags().StringArrayVar(&lines, "line", nil, "Invoice line as description:quantity:unit_price[:po_item_id] (repeatable)")
	cmd.Flags().Int64Var(&dueDays, "due-days", 30, "Days until the invoice is due")
	cmd.Flags().Int64Var(&taxRate, "tax-rate", 0, "Tax rate in basis points")
	cmd.Flags().Int64Var(&discountRate, "discount-rate", 0, "Discount rate in basis points")
	cmd.Flags().StringVar(&metadata, "metadata", "", "Opaque metadata attached to the invoice")

	return cmd
}

func invoicePayCmd() *cobra.Command {
	var reference string

	cmd := &cobra.Command{
		Use:   "pay [invoice-id]",
		Short: "Pay an invoice as the buyer",
		Long: `Pay an invoice as the buyer.

A payment reference is generated when none is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CommerceAdapter().PayInvoice(cmd.Context(), args[0], reference)
		},
	}

	cmd.Flags().StringVar(&reference, "ref", "", "Payment reference")

	return cmd
}

func invoiceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [invoice-id]",
		Short: "Show an invoice with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CommerceAdapter().ShowInvoice(cmd.Context(), args[0])
		},
	}
}
