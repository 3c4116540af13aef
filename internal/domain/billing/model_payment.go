package billing

import "time"

// MethodRenewal tags ledger entries written by the renewal path, as opposed
// to the payment instrument supplied at purchase time.
const MethodRenewal = "renewal"

// Payment is an append-only ledger entry owned by a subscription. There is
// no update or delete path anywhere in the codebase; the full set of rows
// for a subscription is its audit trail.
type Payment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SubscriptionID uint      `gorm:"column:subscription_id;not null;index" json:"subscription_id"`
	Date           time.Time `gorm:"not null" json:"date"`
	Amount         float64   `gorm:"not null" json:"amount"`
	Method         string    `gorm:"not null" json:"method"`

	CreatedAt time.Time `json:"created_at"`
}
