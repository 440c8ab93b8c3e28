package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"RaacProms/middlewares"
	"RaacProms/services"
)

type PortalHandler struct {
	service *services.PortalService
}

func NewPortalHandler(service *services.PortalService) *PortalHandler {
	return &PortalHandler{service: service}
}

// GetPortal serves the read-only follow-up view for the patient identified
// by the patient and token query parameters. Every refusal is the same
// generic 403, whether the patient is unknown or the token is wrong.
func (h *PortalHandler) GetPortal(c *gin.Context) {
	patientID := c.Query("patient")
	token := c.Query("token")

	view, err := h.service.View(c, patientID, token)
	if err != nil {
		if errors.Is(err, services.ErrAccessDenied) {
			c.JSON(403, gin.H{"error": "Access denied"})
			return
		}
		middlewares.HttpError(c, "Access denied", 403, err)
		return
	}
	c.JSON(200, view)
}
