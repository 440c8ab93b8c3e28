package handlers

import (
	"github.com/gin-gonic/gin"

	"RaacProms/services"
)

type StatsHandler struct {
	service *services.StatsService
}

func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats returns per-timepoint aggregates, optionally filtered by joint.
func (h *StatsHandler) GetStats(c *gin.Context) {
	joint := c.Query("joint")
	if joint != "" && joint != "hip" && joint != "knee" {
		c.JSON(400, gin.H{"error": "joint must be hip or knee"})
		return
	}
	rows, err := h.service.Get(c, joint)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, rows)
}
