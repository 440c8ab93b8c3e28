package controllers

import (
	"RaacProms/handlers"

	"github.com/gin-gonic/gin"
)

func SetupPromsRoutes(router *gin.RouterGroup, patientHandler *handlers.PatientHandler, measureHandler *handlers.MeasureHandler, reminderHandler *handlers.ReminderHandler, settingsHandler *handlers.SettingsHandler, exportHandler *handlers.ExportHandler, statsHandler *handlers.StatsHandler) {
	// Define the routes directly on the router group
	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.GET("/patients", patientHandler.GetAllPatients)

	router.PUT("/patients/:patient_id/measures/:timepoint_id", measureHandler.SaveMeasure)
	router.GET("/patients/:patient_id/measures", measureHandler.GetPatientMeasures)

	router.GET("/reminders", reminderHandler.ListReminders)
	router.GET("/reminders/:patient_id/:timepoint_id/email", reminderHandler.PreviewEmail)
	router.POST("/reminders/:patient_id/:timepoint_id/send", reminderHandler.SendReminder)
	router.GET("/reminders/:patient_id/:timepoint_id/ics", reminderHandler.DownloadICS)

	router.GET("/settings", settingsHandler.GetSettings)
	router.PUT("/settings", settingsHandler.UpdateSettings)

	router.GET("/export/csv", exportHandler.ExportCSV)
	router.GET("/export/backup", exportHandler.ExportBackup)
	router.POST("/import/backup", exportHandler.ImportBackup)

	router.GET("/stats", statsHandler.GetStats)
}
