package admin

import (
	"net/http"

	"scouting-admin/database"
	"scouting-admin/internal/domain/billing"
	"scouting-admin/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID           uint   `json:"id"`
	ClubName     string `json:"club_name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AuthProvider string `json:"auth_provider"`
	ClubID       *uint  `json:"club_id,omitempty"`
}

type AdminPayment struct {
	ID             uint    `json:"id"`
	SubscriptionID uint    `json:"subscription_id"`
	PlanName       string  `json:"plan_name"`
	Amount         float64 `json:"amount"`
	Method         string  `json:"method"`
	Date           string  `json:"date"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

func ListAllUsers(c *gin.Context) {
	var accounts []users.User
	err := database.DB.Find(&accounts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range accounts {
		adminUsers = append(adminUsers, AdminUser{
			ID:           u.ID,
			ClubName:     u.ClubName,
			Email:        u.Email,
			Role:         u.Role,
			AuthProvider: u.AuthProvider,
			ClubID:       u.ClubID,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	err := database.DB.Order("date DESC").Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	// plan name comes from the subscription snapshot, not the catalog
	type planRow struct {
		ID       uint
		PlanName string
	}
	var subsRows []planRow
	if err := database.DB.Table("subscriptions").Select("id, plan_name").Scan(&subsRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriptions"})
		return
	}
	planBySub := make(map[uint]string, len(subsRows))
	for _, r := range subsRows {
		planBySub[r.ID] = r.PlanName
	}

	var result []AdminPayment
	for _, p := range payments {
		result = append(result, AdminPayment{
			ID:             p.ID,
			SubscriptionID: p.SubscriptionID,
			PlanName:       planBySub[p.SubscriptionID],
			Amount:         p.Amount,
			Method:         p.Method,
			Date:           p.Date.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}
