package billing

import (
	"net/http"

	"scouting-admin/database"
	"scouting-admin/internal/domain/billing"
	"scouting-admin/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GetPaymentHistory returns the ledger entries for every subscription held
// by the caller's club, newest first.
func GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	if user.ClubID == nil {
		c.JSON(http.StatusOK, []billing.Payment{})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Joins("JOIN subscriptions ON subscriptions.id = payments.subscription_id").
		Where("subscriptions.club_id = ?", *user.ClubID).
		Order("payments.date DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
