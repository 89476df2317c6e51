package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/wire"
)

// POCmd returns the po command
func POCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "po",
		Short: "Purchase orders",
		Long: `Create and track purchase orders. The contract owns the status
transition table; this layer only requests transitions.`,
	}

	cmd.AddCommand(poCreateCmd())
	cmd.AddCommand(poUpdateCmd())
	cmd.AddCommand(poShowCmd())

	return cmd
}

func poCreateCmd() *cobra.Command {
	var seller, delivery, paymentType, metadata string
	var items []string
	var netDays, depositPct int64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a purchase order as the buyer",
		Long: `Create a purchase order as the buyer.

Each --item is id:description:quantity:unit_price[:unit]. The order
total is computed as the sum of quantity times unit price.

Examples:
  agora po create --seller agent_seller --item "item-1:widgets:3:100:piece"
  agora po create --seller agent_seller --item "item-1:widgets:3:100" \
    --payment-type net --net-days 30 --delivery "5 business days"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(items) == 0 {
				return fmt.Errorf("at least one --item is required")
			}

			orderItems := make([]primary.PurchaseOrderItem, 0, len(items))
			for _, spec := range items {
				item, err := parseOrderItem(spec)
				if err != nil {
					return err
				}
				orderItems = append(orderItems, item)
			}

			terms := primary.PaymentTerms{
				PaymentType: primary.PaymentType(paymentType),
				NetDays:     netDays,
			}
			if terms.PaymentType == primary.PaymentTypeDeposit {
				if depositPct <= 0 || depositPct > 100 {
					return fmt.Errorf("--deposit-pct must be between 1 and 100 for deposit terms")
				}
				terms.DepositPercentage = &depositPct
			}

			return wire.CommerceAdapter().CreatePO(cmd.Context(), primary.CreatePurchaseOrderRequest{
				SellerAgentID: seller,
				Items:         orderItems,
				DeliveryTerms: delivery,
				PaymentTerms:  terms,
				Metadata:      metadata,
			})
		},
	}

	cmd.Flags().StringVar(&seller, "seller", "", "Seller agent id")
	cmd.Flags().StringArrayVar(&items, "item", nil, "Order item as id:description:quantity:unit_price[:unit] (repeatable)")
	cmd.Flags().StringVar(&delivery, "delivery", "", "Delivery terms")
	cmd.Flags().StringVar(&paymentType, "payment-type", "immediate", "Payment type: immediate, net, deposit, milestone")
	cmd.Flags().Int64Var(&netDays, "net-days", 0, "Settlement window in days for net terms")
	cmd.Flags().Int64Var(&depositPct, "deposit-pct", 0, "Deposit percentage for deposit terms")
	cmd.Flags().StringVar(&metadata, "metadata", "", "Opaque metadata attached to the order")
	cmd.MarkFlagRequired("seller")

	return cmd
}

func poUpdateCmd() *cobra.Command {
	var status, notes string

	cmd := &cobra.Command{
		Use:   "update [po-id]",
		Short: "Request a purchase order status transition",
		Long: `Request a purchase order status transition.

The contract decides whether the transition is legal; illegal
transitions are rejected with the contract's reason.

Examples:
  agora po update po_1 --status accepted
  agora po update po_1 --status cancelled --notes "supplier unavailable"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CommerceAdapter().UpdatePO(cmd.Context(), args[0], primary.PurchaseOrderStatus(status), notes)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Target status")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes recorded with the transition")
	cmd.MarkFlagRequired("status")

	return cmd
}

func poShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [po-id]",
		Short: "Show a purchase order with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CommerceAdapter().ShowPO(cmd.Context(), args[0])
		},
	}
}
