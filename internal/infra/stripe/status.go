package stripe

import "strings"

// Normalized payment outcomes for checkout sessions.
const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentNone    = "none"
)

// NormalizePaymentStatus folds Stripe's checkout payment_status values into
// the three outcomes the webhook cares about.
func NormalizePaymentStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "":
		return PaymentNone
	case "paid", "no_payment_required":
		return PaymentPaid
	case "unpaid":
		return PaymentPending
	default:
		return PaymentPending
	}
}
