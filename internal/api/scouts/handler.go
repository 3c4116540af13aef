package scouts

import (
	"net/http"
	"strconv"

	"scouting-admin/database"
	"scouting-admin/internal/domain/directory"

	"github.com/gin-gonic/gin"
)

func ListScouts(c *gin.Context) {
	var scouts []directory.Scout
	if err := database.DB.Order("name ASC").Find(&scouts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scouts"})
		return
	}
	c.JSON(http.StatusOK, scouts)
}

func CreateScout(c *gin.Context) {
	var body struct {
		Name            string `json:"name" binding:"required"`
		Region          string `json:"region"`
		ContactInfo     string `json:"contact_info"`
		Status          string `json:"status"`
		ExperienceLevel string `json:"experience_level"`
		AssignedClubID  *uint  `json:"assigned_club_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := body.Status
	if status == "" {
		status = directory.ScoutStatusActive
	}

	scout := directory.Scout{
		Name:            body.Name,
		Region:          body.Region,
		ContactInfo:     body.ContactInfo,
		Status:          status,
		ExperienceLevel: body.ExperienceLevel,
		AssignedClubID:  body.AssignedClubID,
	}
	if err := database.DB.Create(&scout).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add scout"})
		return
	}

	c.JSON(http.StatusCreated, scout)
}

func UpdateScout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scout id"})
		return
	}

	var body struct {
		Name            string   `json:"name"`
		Region          string   `json:"region"`
		ContactInfo     string   `json:"contact_info"`
		Status          string   `json:"status"`
		ExperienceLevel string   `json:"experience_level"`
		PlayersFound    *int     `json:"players_found"`
		SuccessRate     *float64 `json:"success_rate"`
		AssignedClubID  *uint    `json:"assigned_club_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Region != "" {
		updates["region"] = body.Region
	}
	if body.ContactInfo != "" {
		updates["contact_info"] = body.ContactInfo
	}
	if body.Status != "" {
		updates["status"] = body.Status
	}
	if body.ExperienceLevel != "" {
		updates["experience_level"] = body.ExperienceLevel
	}
	if body.PlayersFound != nil {
		updates["players_found"] = *body.PlayersFound
	}
	if body.SuccessRate != nil {
		updates["success_rate"] = *body.SuccessRate
	}
	if body.AssignedClubID != nil {
		updates["assigned_club_id"] = *body.AssignedClubID
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	result := database.DB.Model(&directory.Scout{}).
		Where("id = ?", uint(id)).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update scout"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Scout updated successfully"})
}

func DeleteScout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scout id"})
		return
	}

	result := database.DB.Delete(&directory.Scout{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete scout"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Scout deleted successfully"})
}

func ScoutStats(c *gin.Context) {
	var totalScouts int64
	if err := database.DB.Model(&directory.Scout{}).Count(&totalScouts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	var activeScouts int64
	if err := database.DB.Model(&directory.Scout{}).
		Where("status = ?", directory.ScoutStatusActive).
		Count(&activeScouts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	var totalRegions int64
	if err := database.DB.Model(&directory.Scout{}).
		Distinct("region").
		Count(&totalRegions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	var playersFound int64
	if err := database.DB.Model(&directory.Scout{}).
		Select("COALESCE(SUM(players_found), 0)").
		Scan(&playersFound).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalScouts":  totalScouts,
		"activeScouts": activeScouts,
		"totalRegions": totalRegions,
		"playersFound": playersFound,
	})
}
