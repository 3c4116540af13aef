package subscriptions

import (
	"net/http"
	"strconv"

	"scouting-admin/database"
	"scouting-admin/internal/domain/billing"
	subs "scouting-admin/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

func ListSubscriptions(c *gin.Context) {
	var records []subs.Subscription
	if err := database.DB.
		Preload("Club").
		Preload("Scout").
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
		return
	}

	out := make([]SubscriptionResponse, 0, len(records))
	for i := range records {
		out = append(out, toResponse(&records[i]))
	}
	c.JSON(http.StatusOK, out)
}

func GetSubscription(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription id"})
		return
	}

	var sub subs.Subscription
	if err := database.DB.
		Preload("Club").
		Preload("Scout").
		First(&sub, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	c.JSON(http.StatusOK, toResponse(&sub))
}

func ListSubscriptionPayments(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription id"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Where("subscription_id = ?", uint(id)).
		Order("date DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
