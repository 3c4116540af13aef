package subscriptions

import (
	"errors"
	"net/http"
	"strconv"

	"scouting-admin/database"
	subs "scouting-admin/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

func RenewSubscription(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription id"})
		return
	}

	sub, err := subs.Renew(database.DB, uint(id))
	if err != nil {
		if errors.Is(err, subs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to renew subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Subscription renewed successfully",
		"renewal_date": sub.RenewalDate.Format("2006-01-02"),
	})
}

// CancelSubscription is a soft cancel: the row and its payment history stay.
func CancelSubscription(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription id"})
		return
	}

	if err := subs.Cancel(database.DB, uint(id)); err != nil {
		if errors.Is(err, subs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled successfully"})
}
