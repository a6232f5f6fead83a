package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fortran01/loyalty-program-go/config"
	"github.com/fortran01/loyalty-program-go/controllers"
	"github.com/fortran01/loyalty-program-go/database"
	"github.com/fortran01/loyalty-program-go/logging"
	"github.com/fortran01/loyalty-program-go/repositories"
	"github.com/fortran01/loyalty-program-go/routes"
	"github.com/fortran01/loyalty-program-go/services"
)

func main() {
	// Load environment variables; the sqlite defaults make .env optional.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	if err := logging.Init(); err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logging.Logger.Sync()

	if os.Getenv("JWT_SECRET") == "" {
		logging.Logger.Fatal("JWT_SECRET is not set")
	}

	// Connect to database
	database.ConnectDatabase()
	defer database.DB.Close()

	// Seed subcommand loads the sample data set and exits
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := database.Seed(database.DB); err != nil {
			logging.Logger.Fatal("seeding failed", zap.Error(err))
		}
		logging.Logger.Info("database seeded successfully")
		return
	}

	fallback, err := repositories.EnsureFallbackCategory(database.DB)
	if err != nil {
		logging.Logger.Fatal("failed to ensure fallback category", zap.Error(err))
	}

	store := repositories.NewGormStore(database.DB)
	loyaltyService := services.NewLoyaltyService(store, fallback.ID)
	loyaltyController := controllers.NewLoyaltyController(loyaltyService)

	// Initialize Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(router, loyaltyController)

	// Start server
	cfg := config.LoadConfig()
	router.Run(":" + cfg.Port)
}
