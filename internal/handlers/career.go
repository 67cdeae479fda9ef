package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ontracklabs/ontrack-backend/internal/services"
)

type CareerHandler struct {
	careerService services.CareerService
}

func NewCareerHandler(careerService services.CareerService) *CareerHandler {
	return &CareerHandler{careerService: careerService}
}

func (h *CareerHandler) RunAI(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}

	if err := h.careerService.Run(c.Request.Context(), userID); err != nil {
		var engineErr *services.EngineError
		if errors.As(err, &engineErr) {
			// Propagate the engine's structured {error, details} object.
			c.JSON(http.StatusBadGateway, engineErr)
			return
		}
		RespondError(c, http.StatusInternalServerError, "run_ai_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "done"})
}
