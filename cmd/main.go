package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ontracklabs/ontrack-backend/internal/clients/github"
	"github.com/ontracklabs/ontrack-backend/internal/clients/leetcode"
	"github.com/ontracklabs/ontrack-backend/internal/db"
	"github.com/ontracklabs/ontrack-backend/internal/handlers"
	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/repos"
	"github.com/ontracklabs/ontrack-backend/internal/server"
	"github.com/ontracklabs/ontrack-backend/internal/services"
	"github.com/ontracklabs/ontrack-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	onboardingRepo := repos.NewOnboardingRepo(thePG, log)
	assessmentRepo := repos.NewAssessmentRepo(thePG, log)
	careerMarketRepo := repos.NewCareerMarketRepo(thePG, log)
	userStateRepo := repos.NewUserStateRepo(thePG, log)
	userResourceRepo := repos.NewUserResourceRepo(thePG, log)

	// External clients
	log.Info("Setting up clients from main...")
	githubClient := github.NewClient(log)
	leetcodeClient := leetcode.NewClient(log)
	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		log.Error("Could not init OpenAIClient", "error", err)
		os.Exit(1)
	}

	// Services
	log.Info("Setting up services from main...")
	resourceService := services.NewResourceService(log, openaiClient)
	careerService := services.NewCareerService(
		log,
		onboardingRepo,
		assessmentRepo,
		careerMarketRepo,
		userStateRepo,
		userResourceRepo,
		githubClient,
		leetcodeClient,
		openaiClient,
		resourceService,
	)
	coachService := services.NewCoachService(log, userStateRepo, userResourceRepo, openaiClient)

	// Handlers
	log.Info("Setting up handlers from main...")
	healthHandler := handlers.NewHealthHandler()
	statsHandler := handlers.NewStatsHandler(githubClient, leetcodeClient)
	careerHandler := handlers.NewCareerHandler(careerService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	coachHandler := handlers.NewCoachHandler(coachService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		HealthHandler:   healthHandler,
		StatsHandler:    statsHandler,
		CareerHandler:   careerHandler,
		ResourceHandler: resourceHandler,
		CoachHandler:    coachHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
