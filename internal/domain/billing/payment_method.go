package billing

import (
	"strings"
	"time"
)

// Card types as stored on an account's payment methods.
const (
	CardVisa       = "visa"
	CardMastercard = "mastercard"
	CardAmex       = "amex"
	CardCredit     = "credit"
)

// PaymentMethod is a stored card on an account, distinct from Payment which
// is a ledger entry.
type PaymentMethod struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"-"`
	Type      string `gorm:"type:varchar(20);not null" json:"type"`
	Last4     string `gorm:"type:varchar(4)" json:"last4"`
	Expiry    string `json:"expiry"`
	IsDefault bool   `gorm:"column:is_default" json:"isDefault"`

	CreatedAt time.Time `json:"created_at"`
}

// InferCardType picks the card network from the number prefix:
// 4 → visa, 51-55 → mastercard, 34/37 → amex, anything else → credit.
func InferCardType(cardNumber string) string {
	n := strings.ReplaceAll(strings.TrimSpace(cardNumber), " ", "")
	switch {
	case strings.HasPrefix(n, "4"):
		return CardVisa
	case len(n) >= 2 && n[0] == '5' && n[1] >= '1' && n[1] <= '5':
		return CardMastercard
	case strings.HasPrefix(n, "34"), strings.HasPrefix(n, "37"):
		return CardAmex
	default:
		return CardCredit
	}
}

// Last4Digits returns the trailing four digits of a card number.
func Last4Digits(cardNumber string) string {
	n := strings.ReplaceAll(strings.TrimSpace(cardNumber), " ", "")
	if len(n) <= 4 {
		return n
	}
	return n[len(n)-4:]
}
