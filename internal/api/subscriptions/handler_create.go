package subscriptions

import (
	"errors"
	"net/http"
	"time"

	"scouting-admin/database"
	"scouting-admin/internal/domain/directory"
	"scouting-admin/internal/domain/plans"
	subs "scouting-admin/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

func CreateSubscription(c *gin.Context) {
	var body struct {
		SubscriberType string `json:"subscriber_type" binding:"required"`
		SubscriberID   uint   `json:"subscriber_id" binding:"required"`
		PlanID         string `json:"plan_id" binding:"required"`
		StartDate      string `json:"start_date"`
		PaymentMethod  string `json:"payment_method" binding:"required"`
		Description    string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate := time.Now()
	if body.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", body.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		startDate = parsed
	}

	sub, err := subs.Create(database.DB, subs.CreateInput{
		SubscriberType: body.SubscriberType,
		SubscriberID:   body.SubscriberID,
		PlanCode:       body.PlanID,
		StartDate:      startDate,
		PaymentMethod:  body.PaymentMethod,
		Description:    body.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidSubscriberType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "subscriber_type must be team or scout"})
		case errors.Is(err, plans.ErrUnknownPlan):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		case errors.Is(err, subs.ErrUnknownSubscriber):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Subscriber not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      sub.ID,
		"message": "Subscription created successfully",
	})
}
