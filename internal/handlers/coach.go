package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ontracklabs/ontrack-backend/internal/services"
)

type CoachHandler struct {
	coachService services.CoachService
}

func NewCoachHandler(coachService services.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

type coachRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *CoachHandler) Coach(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}

	var req coachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	reply := h.coachService.Reply(c.Request.Context(), userID, req.Message)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
