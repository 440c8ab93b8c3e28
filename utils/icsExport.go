package utils

import (
	"strings"
	"time"

	"RaacProms/models"
)

// ToCalendarDate formats an ISO date plus an HH:MM hour as an iCalendar
// local date-time, e.g. ("2025-08-19", "09:00") -> "20250819T090000".
// An empty hour falls back to 09:00.
func ToCalendarDate(isoDate, hhmm string) string {
	parts := strings.SplitN(isoDate, "-", 3)
	y, m, d := "0000", "01", "01"
	if len(parts) == 3 {
		y, m, d = parts[0], parts[1], parts[2]
	}
	if hhmm == "" {
		hhmm = "09:00"
	}
	hm := strings.SplitN(hhmm, ":", 2)
	hh, mm := "09", "00"
	if len(hm) == 2 {
		hh, mm = hm[0], hm[1]
	}
	return y + m + d + "T" + hh + mm + "00"
}

// addMinutes shifts an HH:MM hour, wrapping around midnight.
func addMinutes(hhmm string, minutes int) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		t, _ = time.Parse("15:04", "09:00")
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format("15:04")
}

// BuildReminderICS renders a single-event iCalendar document for one due
// reminder. The UID is deterministic for the (patient, timepoint, due date)
// triple; DTSTAMP is the generation time in UTC; the event starts at the
// configured default hour and lasts 30 minutes. Lines end with CRLF as the
// format requires.
func BuildReminderICS(patient models.Patient, tp models.Timepoint, dueISO, portalURL string, settings models.Settings, now time.Time) string {
	org := settings.OrgName
	if org == "" {
		org = "Clinic"
	}
	hour := settings.DefaultHour
	if hour == "" {
		hour = "09:00"
	}
	dtstamp := now.UTC().Format("20060102T150405Z")
	dtstart := ToCalendarDate(dueISO, hour)
	dtend := ToCalendarDate(dueISO, addMinutes(hour, 30))
	uid := patient.ID + "-" + tp.ID + "-" + dueISO + "@raac-proms"

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//RAAC PROMs//EN",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + dtstamp,
		"DTSTART:" + dtstart,
		"DTEND:" + dtend,
		"SUMMARY:Questionnaire reminder " + tp.Label + " - " + org,
		"DESCRIPTION:Please complete your questionnaire: " + portalURL,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}

// ICSFileName names the downloadable calendar file for a reminder.
func ICSFileName(patient models.Patient, tp models.Timepoint) string {
	return "reminder_" + tp.ID + "_" + patient.LastName + "_" + patient.FirstName + ".ics"
}
