package billing

import (
	"fmt"
	"math"
	"net/http"
	"os"

	"scouting-admin/database"
	"scouting-admin/internal/domain/directory"
	"scouting-admin/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// CreateCheckoutSession starts an online card payment for a plan purchase.
// The subscription itself is only created once the webhook confirms the
// session was paid.
func CreateCheckoutSession(c *gin.Context) {
	var body struct {
		PlanID         string `json:"plan_id"`
		SubscriberType string `json:"subscriber_type"`
		SubscriberID   uint   `json:"subscriber_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid plan_id"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	if body.SubscriberType != directory.SubscriberTeam && body.SubscriberType != directory.SubscriberScout {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subscriber_type must be team or scout"})
		return
	}

	plan, err := plans.ByCode(database.DB, body.PlanID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		return
	}

	exists, _, err := directory.LookupSubscriber(database.DB, body.SubscriberType, body.SubscriberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve subscriber"})
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subscriber not found"})
		return
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:5173"
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(appURL + "/subscriptions"),
		CancelURL:  stripe.String(appURL + "/subscriptions?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(int64(math.Round(plan.Price * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(plan.Name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("plan_id", plan.Code)
	params.AddMetadata("subscriber_type", body.SubscriberType)
	params.AddMetadata("subscriber_id", fmt.Sprint(body.SubscriberID))

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
