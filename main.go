package main

import (
	"fmt"
	"log"
	"os"

	"github.com/BrianEstime1/hvac-backend/config"
	"github.com/BrianEstime1/hvac-backend/routes"
	"github.com/BrianEstime1/hvac-backend/services"
	"github.com/BrianEstime1/hvac-backend/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger, err := config.NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB(os.Getenv("DB_URL"))
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	s := store.New(db)
	if err := s.AutoMigrate(); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	// Appointment reminders run only when Twilio is configured.
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		services.NewReminderService(s.DB(), logger).StartScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(s, logger)
	printRoutes(r)

	logger.Info("starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
