package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"RaacProms/services"
	"RaacProms/utils"
)

type MeasureHandler struct {
	service *services.MeasureService
}

func NewMeasureHandler(service *services.MeasureService) *MeasureHandler {
	return &MeasureHandler{service: service}
}

// SaveMeasure stores a complete questionnaire for one (patient, timepoint),
// replacing any previous one.
func (h *MeasureHandler) SaveMeasure(c *gin.Context) {
	patientID := c.Param("patient_id")
	timepointID := c.Param("timepoint_id")

	var input utils.MeasureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	measure, err := h.service.Save(c, patientID, timepointID, input)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			c.JSON(404, gin.H{"error": "Patient not found"})
			return
		}
		if isValidationError(err) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, measure)
}

func (h *MeasureHandler) GetPatientMeasures(c *gin.Context) {
	patientID := c.Param("patient_id")
	measures, err := h.service.GetByPatient(c, patientID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, measures)
}
