package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"RaacProms/middlewares"
	"RaacProms/services"
)

type ReminderHandler struct {
	service *services.ReminderService
}

func NewReminderHandler(service *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// ListReminders returns the currently due reminders, ascending by due date.
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	reminders, err := h.service.List(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reminders)
}

// PreviewEmail renders the reminder email without sending it.
func (h *ReminderHandler) PreviewEmail(c *gin.Context) {
	email, err := h.service.Preview(c, c.Param("patient_id"), c.Param("timepoint_id"))
	if err != nil {
		h.pairError(c, err)
		return
	}
	c.JSON(200, email)
}

// SendReminder delivers the reminder email. Delivery failures surface as one
// generic error with no detail and no retry.
func (h *ReminderHandler) SendReminder(c *gin.Context) {
	err := h.service.Send(c, c.Param("patient_id"), c.Param("timepoint_id"))
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) || errors.Is(err, services.ErrUnknownTimepoint) || errors.Is(err, services.ErrNoOperationDate) {
			h.pairError(c, err)
			return
		}
		middlewares.HttpError(c, "Failed to send reminder", 502, err)
		return
	}
	c.JSON(200, gin.H{"message": "Reminder sent"})
}

// DownloadICS serves the calendar event for one reminder.
func (h *ReminderHandler) DownloadICS(c *gin.Context) {
	filename, ics, err := h.service.BuildICS(c, c.Param("patient_id"), c.Param("timepoint_id"), time.Now())
	if err != nil {
		h.pairError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "text/calendar; charset=utf-8", []byte(ics))
}

func (h *ReminderHandler) pairError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPatientNotFound):
		c.JSON(404, gin.H{"error": "Patient not found"})
	case errors.Is(err, services.ErrUnknownTimepoint):
		c.JSON(400, gin.H{"error": "Unknown timepoint"})
	case errors.Is(err, services.ErrNoOperationDate):
		c.JSON(400, gin.H{"error": "Patient has no operation date"})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}
