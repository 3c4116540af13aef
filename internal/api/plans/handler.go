package plans

import (
	"net/http"

	"scouting-admin/database"
	"scouting-admin/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

func ListPlans(c *gin.Context) {
	var catalog []plans.Plan
	if err := database.DB.Order("price ASC").Find(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, catalog)
}
