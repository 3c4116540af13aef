package subscriptions

import (
	"errors"
	"net/http"
	"strconv"

	"scouting-admin/database"
	"scouting-admin/internal/domain/plans"
	subs "scouting-admin/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

func ChangePlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription id"})
		return
	}

	var body struct {
		PlanID string `json:"plan_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid plan_id"})
		return
	}

	if err := subs.ChangePlan(database.DB, uint(id), body.PlanID); err != nil {
		switch {
		case errors.Is(err, plans.ErrUnknownPlan):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		case errors.Is(err, subs.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change plan"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan changed successfully"})
}
