package main

import (
	"fmt"

	"salonflow-backend/config"
	"salonflow-backend/models"
	"salonflow-backend/routes"
	"salonflow-backend/services"
	"salonflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func init() {
	config.InitLogger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.ServiceLog{},
		&models.InventoryItem{},
		&models.StockAdjustment{},
		&models.DailyReport{},
	)
}

func main() {
	stockAlerts := services.NewStockAlertService(config.DB)
	stockAlerts.StartScheduler()

	port := utils.Getenv("PORT", "8080")
	r := routes.SetupRouter()
	printRoutes(r)

	log.Info().Str("port", port).Msg("Server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
