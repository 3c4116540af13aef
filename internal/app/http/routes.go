package routes

import (
	adminapi "scouting-admin/internal/api/admin"
	authapi "scouting-admin/internal/api/auth"
	billingapi "scouting-admin/internal/api/billing"
	playersapi "scouting-admin/internal/api/players"
	plansapi "scouting-admin/internal/api/plans"
	scoutsapi "scouting-admin/internal/api/scouts"
	stripewebhooks "scouting-admin/internal/api/stripewebhook"
	subsapi "scouting-admin/internal/api/subscriptions"
	teamsapi "scouting-admin/internal/api/teams"
	"scouting-admin/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plansapi.ListPlans)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())

	auth.GET("/subscriptions", subsapi.ListSubscriptions)
	auth.GET("/subscriptions/stats", subsapi.SubscriptionStats)
	auth.GET("/subscriptions/:id", subsapi.GetSubscription)
	auth.GET("/subscriptions/:id/payments", subsapi.ListSubscriptionPayments)
	auth.POST("/subscriptions", subsapi.CreateSubscription)
	auth.POST("/subscriptions/:id/renew", subsapi.RenewSubscription)
	auth.POST("/subscriptions/:id/change-plan", subsapi.ChangePlan)
	auth.DELETE("/subscriptions/:id", subsapi.CancelSubscription)

	auth.POST("/subscriptions/checkout", billingapi.CreateCheckoutSession)
	auth.GET("/payment-history", billingapi.GetPaymentHistory)
	auth.GET("/payment-methods", billingapi.ListPaymentMethods)
	auth.POST("/payment-methods", billingapi.AddPaymentMethod)

	auth.GET("/teams", teamsapi.ListTeams)
	auth.GET("/teams/stats", teamsapi.TeamStats)
	auth.POST("/teams", teamsapi.CreateTeam)
	auth.PUT("/teams/:id", teamsapi.UpdateTeam)
	auth.DELETE("/teams/:id", teamsapi.DeleteTeam)

	auth.GET("/scouts", scoutsapi.ListScouts)
	auth.GET("/scouts/stats", scoutsapi.ScoutStats)
	auth.POST("/scouts", scoutsapi.CreateScout)
	auth.PUT("/scouts/:id", scoutsapi.UpdateScout)
	auth.DELETE("/scouts/:id", scoutsapi.DeleteScout)

	auth.GET("/players", playersapi.ListPlayers)
	auth.POST("/players", playersapi.CreatePlayer)
	auth.DELETE("/players/:id", playersapi.DeletePlayer)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
}
