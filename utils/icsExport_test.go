package utils

import (
	"strings"
	"testing"
	"time"

	"RaacProms/models"
)

func TestToCalendarDate(t *testing.T) {
	tests := []struct {
		iso  string
		hhmm string
		want string
	}{
		{"2025-08-19", "09:00", "20250819T090000"},
		{"2025-08-19", "", "20250819T090000"},
		{"2025-12-31", "23:45", "20251231T234500"},
	}
	for _, tt := range tests {
		if got := ToCalendarDate(tt.iso, tt.hhmm); got != tt.want {
			t.Errorf("ToCalendarDate(%q, %q) = %q, want %q", tt.iso, tt.hhmm, got, tt.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	if got := addMinutes("09:00", 30); got != "09:30" {
		t.Errorf("addMinutes(09:00, 30) = %q, want 09:30", got)
	}
	if got := addMinutes("23:45", 30); got != "00:15" {
		t.Errorf("addMinutes(23:45, 30) = %q, want 00:15", got)
	}
	if got := addMinutes("bogus", 30); got != "09:30" {
		t.Errorf("addMinutes(bogus, 30) = %q, want 09:30", got)
	}
}

func TestBuildReminderICS(t *testing.T) {
	patient := models.Patient{ID: "p1", FirstName: "Jane", LastName: "Doe"}
	tp := models.Timepoint{ID: "m1", Label: "1 month", OffsetDays: 30}
	settings := models.Settings{OrgName: "City Ortho", DefaultHour: "09:00"}
	now := time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC)

	ics := BuildReminderICS(patient, tp, "2025-02-01", "https://portal/x", settings, now)

	if !strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n") {
		t.Error("calendar should start with BEGIN:VCALENDAR and use CRLF line endings")
	}
	if strings.Contains(strings.ReplaceAll(ics, "\r\n", ""), "\n") {
		t.Error("calendar should contain no bare LF line endings")
	}
	for _, want := range []string{
		"UID:p1-m1-2025-02-01@raac-proms",
		"DTSTAMP:20250201T103000Z",
		"DTSTART:20250201T090000",
		"DTEND:20250201T093000",
		"SUMMARY:Questionnaire reminder 1 month - City Ortho",
		"DESCRIPTION:Please complete your questionnaire: https://portal/x",
		"END:VCALENDAR",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("calendar missing line %q\n%s", want, ics)
		}
	}
}

func TestBuildReminderICS_Deterministic(t *testing.T) {
	patient := models.Patient{ID: "p1"}
	tp := models.Timepoint{ID: "y1", Label: "1 year"}
	settings := models.Settings{}
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	a := BuildReminderICS(patient, tp, "2026-01-01", "u", settings, now)
	b := BuildReminderICS(patient, tp, "2026-01-01", "u", settings, now)
	if a != b {
		t.Error("same inputs should render the same calendar")
	}
}

func TestBuildReminderICS_DefaultHourRollsEnd(t *testing.T) {
	patient := models.Patient{ID: "p1"}
	tp := models.Timepoint{ID: "d2", Label: "Day 2"}
	settings := models.Settings{DefaultHour: "23:45"}
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	ics := BuildReminderICS(patient, tp, "2025-02-03", "u", settings, now)
	if !strings.Contains(ics, "DTSTART:20250203T234500") {
		t.Errorf("unexpected DTSTART in\n%s", ics)
	}
	// end time wraps past midnight; the date part stays on the due day
	if !strings.Contains(ics, "DTEND:20250203T001500") {
		t.Errorf("unexpected DTEND in\n%s", ics)
	}
}

func TestICSFileName(t *testing.T) {
	patient := models.Patient{FirstName: "Jane", LastName: "Doe"}
	tp := models.Timepoint{ID: "m6"}
	if got := ICSFileName(patient, tp); got != "reminder_m6_Doe_Jane.ics" {
		t.Errorf("ICSFileName = %q", got)
	}
}
