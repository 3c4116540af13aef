package teams

import (
	"errors"
	"net/http"
	"strconv"

	"scouting-admin/database"
	"scouting-admin/internal/domain/directory"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListTeams(c *gin.Context) {
	var clubs []directory.Club
	if err := database.DB.Order("name ASC").Find(&clubs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
		return
	}
	c.JSON(http.StatusOK, clubs)
}

func CreateTeam(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Country     string `json:"country"`
		Location    string `json:"location"`
		ManagerName string `json:"manager_name"`
		FoundedYear int    `json:"founded_year"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	club := directory.Club{
		Name:        body.Name,
		Country:     body.Country,
		Location:    body.Location,
		ManagerName: body.ManagerName,
		FoundedYear: body.FoundedYear,
	}
	if err := database.DB.Create(&club).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add team"})
		return
	}

	c.JSON(http.StatusCreated, club)
}

func UpdateTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	var body struct {
		Name        string `json:"name"`
		Country     string `json:"country"`
		Location    string `json:"location"`
		ManagerName string `json:"manager_name"`
		FoundedYear int    `json:"founded_year"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := database.DB.Model(&directory.Club{}).
		Where("id = ?", uint(id)).
		Updates(map[string]interface{}{
			"name":         body.Name,
			"country":      body.Country,
			"location":     body.Location,
			"manager_name": body.ManagerName,
			"founded_year": body.FoundedYear,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team updated successfully"})
}

func DeleteTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	result := database.DB.Delete(&directory.Club{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

// TeamStats aggregates the dashboard numbers as a sequential pipeline.
func TeamStats(c *gin.Context) {
	var totalTeams int64
	if err := database.DB.Model(&directory.Club{}).Count(&totalTeams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	var totalCountries int64
	if err := database.DB.Model(&directory.Club{}).
		Distinct("country").
		Count(&totalCountries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	// Clubs holding an active premium subscription.
	var premiumTeams int64
	if err := database.DB.Table("subscriptions").
		Where("club_id IS NOT NULL AND plan_code = ? AND status = ?", "premium", "active").
		Distinct("club_id").
		Count(&premiumTeams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	oldestName := "N/A"
	oldestYear := 0
	var oldest directory.Club
	err := database.DB.Where("founded_year > 0").Order("founded_year ASC").First(&oldest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}
	if err == nil {
		oldestName = oldest.Name
		oldestYear = oldest.FoundedYear
	}

	c.JSON(http.StatusOK, gin.H{
		"totalTeams":     totalTeams,
		"totalCountries": totalCountries,
		"premiumTeams":   premiumTeams,
		"oldestTeamName": oldestName,
		"oldestTeamYear": oldestYear,
	})
}
