package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ontracklabs/ontrack-backend/internal/handlers"
)

type RouterConfig struct {
	HealthHandler   *handlers.HealthHandler
	StatsHandler    *handlers.StatsHandler
	CareerHandler   *handlers.CareerHandler
	ResourceHandler *handlers.ResourceHandler
	CoachHandler    *handlers.CoachHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:5173",
			"https://*.vercel.app",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		AllowWildcard:    true,
	}))

	router.GET("/", cfg.HealthHandler.Health)

	// Public scraper endpoints
	router.GET("/github-stats/:username", cfg.StatsHandler.GithubStats)
	router.GET("/leetcode-stats/:username", cfg.StatsHandler.LeetcodeStats)

	// AI pipeline
	router.POST("/run-ai/:user_id", cfg.CareerHandler.RunAI)
	router.POST("/find-resources", cfg.ResourceHandler.FindResources)
	router.POST("/coach/:user_id", cfg.CoachHandler.Coach)

	return router
}
