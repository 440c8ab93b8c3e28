package utils

import (
	"strings"
	"testing"

	"RaacProms/models"
)

func TestPortalURL(t *testing.T) {
	patient := models.Patient{ID: "p1", Token: "secret token"}
	got := PortalURL("https://clinic.example.com/portal", patient)
	if !strings.Contains(got, "patient=p1") {
		t.Errorf("portal url missing patient id: %q", got)
	}
	if !strings.Contains(got, "token=secret+token") {
		t.Errorf("portal url token not encoded: %q", got)
	}
}

func TestBuildReminderEmail_DefaultTemplates(t *testing.T) {
	settings := models.Settings{OrgName: "City Ortho"}
	patient := models.Patient{ID: "p1", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	tp := models.Timepoint{ID: "m1", Label: "1 month"}

	email := BuildReminderEmail(settings, patient, tp, "2025-02-01", "https://portal/x")

	if email.To != "jane@example.com" {
		t.Errorf("To = %q", email.To)
	}
	if email.Subject != "Your 1 month questionnaire - City Ortho" {
		t.Errorf("Subject = %q", email.Subject)
	}
	for _, want := range []string{"Jane Doe", "1 month", "https://portal/x", "2025-02-01", "City Ortho"} {
		if !strings.Contains(email.HTML, want) {
			t.Errorf("HTML body missing %q", want)
		}
	}
	if !strings.Contains(email.Text, "https://portal/x") {
		t.Errorf("Text body missing portal link: %q", email.Text)
	}
}

func TestBuildReminderEmail_LogoConditional(t *testing.T) {
	patient := models.Patient{FirstName: "Jane", LastName: "Doe", Email: "j@x.com"}
	tp := models.Timepoint{ID: "m1", Label: "1 month"}

	withLogo := BuildReminderEmail(models.Settings{OrgName: "O", LogoURL: "https://x/logo.png"}, patient, tp, "2025-02-01", "u")
	if !strings.Contains(withLogo.HTML, `src="https://x/logo.png"`) {
		t.Error("logo url set but no img tag rendered")
	}

	noLogo := BuildReminderEmail(models.Settings{OrgName: "O"}, patient, tp, "2025-02-01", "u")
	if strings.Contains(noLogo.HTML, "<img") {
		t.Error("img tag rendered without a logo url")
	}
}

func TestBuildReminderEmail_CustomSubjectTemplate(t *testing.T) {
	settings := models.Settings{
		OrgName:              "O",
		EmailSubjectTemplate: "{{tpLabel}} / {{patientLast}}",
	}
	patient := models.Patient{FirstName: "Jane", LastName: "Doe", Email: "j@x.com"}
	tp := models.Timepoint{ID: "y1", Label: "1 year"}

	email := BuildReminderEmail(settings, patient, tp, "2026-01-01", "u")
	if email.Subject != "1 year / Doe" {
		t.Errorf("Subject = %q", email.Subject)
	}
}

func TestMailtoLink(t *testing.T) {
	email := EmailPayload{
		To:      "jane@example.com",
		Subject: "Your visit & follow-up",
		Text:    "line one\nline two",
	}
	got := MailtoLink(email)
	if !strings.HasPrefix(got, "mailto:jane@example.com?subject=") {
		t.Errorf("MailtoLink = %q", got)
	}
	if !strings.Contains(got, "&body=") {
		t.Errorf("MailtoLink body separator missing: %q", got)
	}
	if !strings.Contains(got, "Your+visit+%26+follow-up") {
		t.Errorf("subject not query-escaped: %q", got)
	}
	if !strings.Contains(got, "line+one%0Aline+two") {
		t.Errorf("body not query-escaped: %q", got)
	}
}
