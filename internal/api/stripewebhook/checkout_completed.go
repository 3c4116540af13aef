package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"scouting-admin/database"
	infrastripe "scouting-admin/internal/infra/stripe"

	subs "scouting-admin/internal/domain/subscriptions"

	"github.com/stripe/stripe-go/v75"
)

// handleCheckoutSessionCompleted finalizes an online plan purchase: only a
// paid session opens the subscription, which also appends the first ledger
// payment tagged with the card method.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	if infrastripe.NormalizePaymentStatus(string(session.PaymentStatus)) != infrastripe.PaymentPaid {
		// Async payment methods land here before settling; the follow-up
		// event carries the paid status.
		return nil
	}

	if session.Metadata == nil {
		return errors.New("checkout session missing metadata")
	}

	planCode := session.Metadata["plan_id"]
	subscriberType := session.Metadata["subscriber_type"]
	subscriberID, err := strconv.ParseUint(session.Metadata["subscriber_id"], 10, 64)
	if err != nil || planCode == "" || subscriberType == "" {
		return errors.New("checkout session metadata incomplete")
	}

	_, err = subs.Create(database.DB, subs.CreateInput{
		SubscriberType: subscriberType,
		SubscriberID:   uint(subscriberID),
		PlanCode:       planCode,
		StartDate:      time.Now(),
		PaymentMethod:  "card",
	})
	if err != nil {
		return fmt.Errorf("failed to open subscription from checkout: %w", err)
	}

	fmt.Println("✅ Checkout completed, subscription opened for", subscriberType, subscriberID)
	return nil
}
