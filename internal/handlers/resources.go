package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ontracklabs/ontrack-backend/internal/services"
)

type ResourceHandler struct {
	resourceService services.ResourceService
}

func NewResourceHandler(resourceService services.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

func (h *ResourceHandler) FindResources(c *gin.Context) {
	var skills []string
	if err := c.ShouldBindJSON(&skills); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	resources, err := h.resourceService.FindForSkills(c.Request.Context(), skills)
	if err != nil {
		RespondError(c, http.StatusBadGateway, "resource_discovery_failed", err)
		return
	}
	RespondOK(c, resources)
}
