package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ontracklabs/ontrack-backend/internal/services"
)

// StatsHandler exposes the two public scraper endpoints. Absence maps to
// {"valid": false}, never an error status.
type StatsHandler struct {
	githubClient   services.GithubFetcher
	leetcodeClient services.LeetcodeFetcher
}

func NewStatsHandler(githubClient services.GithubFetcher, leetcodeClient services.LeetcodeFetcher) *StatsHandler {
	return &StatsHandler{githubClient: githubClient, leetcodeClient: leetcodeClient}
}

func (h *StatsHandler) GithubStats(c *gin.Context) {
	stats := h.githubClient.Fetch(c.Request.Context(), c.Param("username"))
	if stats == nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	RespondOK(c, stats)
}

func (h *StatsHandler) LeetcodeStats(c *gin.Context) {
	stats := h.leetcodeClient.Fetch(c.Request.Context(), c.Param("username"))
	if stats == nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	RespondOK(c, stats)
}
