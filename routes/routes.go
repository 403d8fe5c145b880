package routes

import (
	"strings"

	"salonflow-backend/config"
	"salonflow-backend/controllers"
	"salonflow-backend/models"
	"salonflow-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := strings.Split(utils.Getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",")

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.GET("/profiles", controllers.GetBarberProfiles)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		managerOnly := utils.RequireRole(models.RoleManager)

		// Barber management
		barbers := api.Group("/barbers", managerOnly)
		{
			barbers.POST("", controllers.CreateBarber)
			barbers.GET("", controllers.GetBarbers)
			barbers.GET("/:id", controllers.GetBarber)
			barbers.PUT("/:id", controllers.UpdateBarber)
			barbers.DELETE("/:id", controllers.DeleteBarber)
		}

		// Service catalog
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.POST("", managerOnly, controllers.CreateService)
			services.PUT("/:id", managerOnly, controllers.UpdateService)
			services.DELETE("/:id", managerOnly, controllers.DeleteService)
		}

		// Service logs and the approval workflow
		logs := api.Group("/service-logs")
		{
			logs.POST("", controllers.CreateServiceLogs)
			logs.GET("", controllers.GetServiceLogs)
			logs.GET("/pending", managerOnly, controllers.GetPendingServiceLogs)
			logs.PUT("/:id/approve", managerOnly, controllers.ApproveServiceLog)
			logs.PUT("/:id/reject", managerOnly, controllers.RejectServiceLog)
			logs.DELETE("/:id", controllers.DeleteServiceLog)
		}

		// Reports
		reportController := controllers.ReportController{}
		reports := api.Group("/reports", managerOnly)
		{
			reports.POST("/daily", reportController.GenerateDailyReport)
			reports.GET("/daily", reportController.GetDailyReports)
			reports.GET("/daily/by-date", reportController.GetDailyReportByDate)
			reports.GET("/leaderboard/barbers", reportController.GetBarberLeaderboard)
			reports.GET("/leaderboard/services", reportController.GetServiceLeaderboard)
		}

		// Dashboards
		api.GET("/dashboard", managerOnly, controllers.GetDashboardOverview)
		api.GET("/dashboard/barber", utils.RequireRole(models.RoleBarber), controllers.GetBarberDailyStats)

		// Inventory
		inventory := api.Group("/inventory", managerOnly)
		{
			inventory.POST("", controllers.CreateInventoryItem)
			inventory.GET("", controllers.GetInventoryItems)
			inventory.GET("/kpis", controllers.GetInventoryKPIs)
			inventory.GET("/:id", controllers.GetInventoryItem)
			inventory.PUT("/:id", controllers.UpdateInventoryItem)
			inventory.DELETE("/:id", controllers.DeleteInventoryItem)
			inventory.POST("/:id/adjustments", controllers.AdjustStock)
			inventory.GET("/:id/adjustments", controllers.GetStockAdjustments)
		}
	}

	return r
}
