package main

import (
	"context"
	"time"

	"github.com/Sri-Charith/AI-HealthVault/ai"
	"github.com/Sri-Charith/AI-HealthVault/config"
	controller "github.com/Sri-Charith/AI-HealthVault/controllers"
	"github.com/Sri-Charith/AI-HealthVault/database"
	"github.com/Sri-Charith/AI-HealthVault/helpers"
	"github.com/Sri-Charith/AI-HealthVault/logger"
	"github.com/Sri-Charith/AI-HealthVault/middleware"
	"github.com/Sri-Charith/AI-HealthVault/observability"
	"github.com/Sri-Charith/AI-HealthVault/routes"
	"github.com/Sri-Charith/AI-HealthVault/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	appLog := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		appLog.Errorf("mongo connect failed: %v", err)
		log.Fatal(err)
	}
	appLog.Info("connected to MongoDB")

	fitnessCollection := database.OpenCollection(client, cfg.MongoDatabase, "fitness")
	medicationCollection := database.OpenCollection(client, cfg.MongoDatabase, "medication")
	userCollection := database.OpenCollection(client, cfg.MongoDatabase, "user")

	if err := database.EnsureIndexes(ctx, fitnessCollection, medicationCollection, userCollection); err != nil {
		appLog.Errorf("index creation failed: %v", err)
		log.Fatal(err)
	}

	fitnessService := services.NewFitnessService(database.NewFitnessStore(fitnessCollection), appLog)
	medicationService := services.NewMedicationService(database.NewMedicationStore(medicationCollection), appLog)
	geminiClient := ai.NewClient(cfg.GeminiEndpoint, cfg.GeminiAPIKey)
	tokenManager := helpers.NewTokenManager(cfg.SecretKey)

	fitnessController := controller.NewFitnessController(fitnessService)
	medicationController := controller.NewMedicationController(medicationService)
	aiController := controller.NewAIController(fitnessService, medicationService, geminiClient, userCollection)
	userController := controller.NewUserController(userCollection, tokenManager)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(appLog))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(observability.Handler()))

	publicRoutes := router.Group("/")
	{
		publicRoutes.POST("/signup", userController.SignUp())
		publicRoutes.POST("/login", userController.Login())
		publicRoutes.POST("/refresh", userController.RefreshToken())
	}

	privateRoutes := router.Group("/")
	privateRoutes.Use(middleware.Authentication(tokenManager))
	{
		routes.FitnessRoutes(privateRoutes, fitnessController)
		routes.MedicationRoutes(privateRoutes, medicationController)
		routes.AIRoutes(privateRoutes, aiController)
	}

	appLog.Infof("listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
