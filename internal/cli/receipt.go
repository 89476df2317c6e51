package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/wire"
)

// ReceiptCmd returns the receipt command
func ReceiptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Goods receipt confirmation",
	}

	cmd.AddCommand(receiptConfirmCmd())

	return cmd
}

func receiptConfirmCmd() *cobra.Command {
	var items []string
	var notes string

	cmd := &cobra.Command{
		Use:   "confirm [po-id]",
		Short: "Confirm receipt of a purchase order's items as the buyer",
		Long: `Confirm receipt of a purchase order's items as the buyer.

Each --item is po_item_id:quantity:condition[:notes], where condition
is one of good, damaged, missing, wrong.

Examples:
  agora receipt confirm po_1 --item "item-1:3:good"
  agora receipt confirm po_1 --item "item-1:2:good" --item "item-2:1:damaged:crushed box"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(items) == 0 {
				return fmt.Errorf("at least one --item is required")
			}

			receipts := make([]primary.ItemReceipt, 0, len(items))
			for _, spec := range items {
				receipt, err := parseItemReceipt(spec)
				if err != nil {
					return err
				}
				receipts = append(receipts, receipt)
			}

			return wire.CommerceAdapter().ConfirmReceipt(cmd.Context(), args[0], receipts, notes)
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "Received item as po_item_id:quantity:condition[:notes] (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes recorded with the confirmation")

	return cmd
}
