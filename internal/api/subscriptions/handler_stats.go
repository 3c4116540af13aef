package subscriptions

import (
	"net/http"
	"time"

	"scouting-admin/database"
	subs "scouting-admin/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

func SubscriptionStats(c *gin.Context) {
	stats, err := subs.GetStats(database.DB, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
