package players

import (
	"net/http"
	"strconv"
	"time"

	"scouting-admin/database"
	"scouting-admin/internal/domain/directory"

	"github.com/gin-gonic/gin"
)

func ListPlayers(c *gin.Context) {
	var players []directory.Player
	if err := database.DB.Find(&players).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
		return
	}
	c.JSON(http.StatusOK, players)
}

func CreatePlayer(c *gin.Context) {
	var body struct {
		FullName      string  `json:"full_name" binding:"required"`
		DOB           string  `json:"dob"`
		Nationality   string  `json:"nationality"`
		Position      string  `json:"position"`
		Weight        float64 `json:"weight"`
		Height        float64 `json:"height"`
		Status        string  `json:"status"`
		CurrentClubID *uint   `json:"current_club_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dob *time.Time
	if body.DOB != "" {
		parsed, err := time.Parse("2006-01-02", body.DOB)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dob must be YYYY-MM-DD"})
			return
		}
		dob = &parsed
	}

	player := directory.Player{
		FullName:      body.FullName,
		DOB:           dob,
		Nationality:   body.Nationality,
		Position:      body.Position,
		Weight:        body.Weight,
		Height:        body.Height,
		Status:        body.Status,
		CurrentClubID: body.CurrentClubID,
	}
	if err := database.DB.Create(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add player"})
		return
	}

	c.JSON(http.StatusCreated, player)
}

func DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player id"})
		return
	}

	result := database.DB.Delete(&directory.Player{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player deleted"})
}
