package billing

import (
	"net/http"

	"scouting-admin/database"
	"scouting-admin/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

func ListPaymentMethods(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var methods []billing.PaymentMethod
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&methods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment methods"})
		return
	}

	c.JSON(http.StatusOK, methods)
}

func AddPaymentMethod(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		CardNumber string `json:"card_number" binding:"required"`
		CardHolder string `json:"card_holder"`
		ExpiryDate string `json:"expiry_date" binding:"required"`
		CVV        string `json:"cvv" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only type and last4 are stored; the full number and CVV never touch
	// the database.
	var existing int64
	if err := database.DB.Model(&billing.PaymentMethod{}).
		Where("user_id = ?", userID).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment methods"})
		return
	}

	method := billing.PaymentMethod{
		UserID:    userID,
		Type:      billing.InferCardType(body.CardNumber),
		Last4:     billing.Last4Digits(body.CardNumber),
		Expiry:    body.ExpiryDate,
		IsDefault: existing == 0,
	}

	if err := database.DB.Create(&method).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add payment method"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment method added successfully",
		"method":  method,
	})
}
