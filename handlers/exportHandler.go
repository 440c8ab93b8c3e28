package handlers

import (
	"github.com/gin-gonic/gin"

	"RaacProms/services"
	"RaacProms/utils"
)

type ExportHandler struct {
	patientService *services.PatientService
	measureService *services.MeasureService
	backupService  *services.BackupService
}

func NewExportHandler(patientService *services.PatientService, measureService *services.MeasureService, backupService *services.BackupService) *ExportHandler {
	return &ExportHandler{
		patientService: patientService,
		measureService: measureService,
		backupService:  backupService,
	}
}

// ExportCSV downloads every measure joined with its patient as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	patients, err := h.patientService.GetAll(c, "")
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	measures, err := h.measureService.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	csv := utils.BuildMeasuresCSV(patients, measures)
	c.Header("Content-Disposition", `attachment; filename="proms_`+utils.TodayISO()+`.csv"`)
	c.Data(200, "text/csv; charset=utf-8", []byte(csv))
}

// ExportBackup downloads the whole store as one JSON blob.
func (h *ExportHandler) ExportBackup(c *gin.Context) {
	backup, err := h.backupService.Export(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, backup)
}

// ImportBackup replaces the whole store from an uploaded blob.
func (h *ExportHandler) ImportBackup(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.backupService.Import(c, raw); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Store imported"})
}
