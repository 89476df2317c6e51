package cli

import (
	"github.com/fatih/color"

	"github.com/example/agora/internal/ports/primary"
)

// colorizeOrderStatus formats purchase order status with semantic color
func colorizeOrderStatus(status primary.PurchaseOrderStatus) string {
	upper := string(status)
	switch status {
	case primary.POStatusDraft:
		return color.New(color.FgHiBlack).Sprint(upper)
	case primary.POStatusSubmitted:
		return color.New(color.FgCyan).Sprint(upper)
	case primary.POStatusAccepted:
		return color.New(color.FgHiCyan).Sprint(upper)
	case primary.POStatusInProgress:
		return color.New(color.FgHiBlue).Sprint(upper)
	case primary.POStatusDelivered:
		return color.New(color.FgHiMagenta).Sprint(upper)
	case primary.POStatusCompleted:
		return color.New(color.FgHiGreen).Sprint(upper)
	case primary.POStatusRejected, primary.POStatusCancelled:
		return color.New(color.FgRed).Sprint(upper)
	default:
		return upper
	}
}

// colorizePaid formats the invoice settlement marker with semantic color
func colorizePaid(paid bool) string {
	if paid {
		return color.New(color.FgHiGreen).Sprint("yes")
	}
	return color.New(color.FgYellow).Sprint("no")
}
