package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kafekita/pos-app/config"
	"github.com/kafekita/pos-app/middlewares"
	"github.com/kafekita/pos-app/router"
	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database: %v", err)
	}
	if err := storage.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
