package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"

	"RaacProms/models"
)

// EmailPayload is a fully rendered reminder email.
type EmailPayload struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	HTML      string `json:"html"`
	Text      string `json:"text"`
	PortalURL string `json:"portal_url"`
}

// PortalURL builds the patient's read-only portal link by setting the patient
// id and token query parameters on the configured base URL.
func PortalURL(baseURL string, patient models.Patient) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := u.Query()
	q.Set("patient", patient.ID)
	q.Set("token", patient.Token)
	u.RawQuery = q.Encode()
	return u.String()
}

// BuildReminderEmail renders the configured subject and HTML templates for
// one (patient, timepoint, due date) reminder. Empty templates fall back to
// the defaults.
func BuildReminderEmail(settings models.Settings, patient models.Patient, tp models.Timepoint, dueISO, portalURL string) EmailPayload {
	orgName := settings.OrgName
	if orgName == "" {
		orgName = "Clinic"
	}
	vars := map[string]string{
		"orgName":      orgName,
		"logoUrl":      settings.LogoURL,
		"patientFirst": patient.FirstName,
		"patientLast":  patient.LastName,
		"tpLabel":      tp.Label,
		"portalURL":    portalURL,
		"dueDate":      dueISO,
	}
	subjectTpl := settings.EmailSubjectTemplate
	if subjectTpl == "" {
		subjectTpl = models.DefaultEmailSubject
	}
	htmlTpl := settings.EmailTemplate
	if htmlTpl == "" {
		htmlTpl = models.DefaultEmailTemplate
	}
	text := "Hello " + vars["patientFirst"] + " " + vars["patientLast"] + ",\n\n" +
		"Please complete your questionnaire (" + vars["tpLabel"] + "):\n" +
		portalURL + "\n\n" +
		"Due date: " + dueISO + "\n\n" +
		orgName
	return EmailPayload{
		To:        patient.Email,
		Subject:   RenderTemplate(subjectTpl, vars),
		HTML:      RenderTemplate(htmlTpl, vars),
		Text:      text,
		PortalURL: portalURL,
	}
}

// MailtoLink builds a mailto URL carrying the rendered subject and text body.
func MailtoLink(email EmailPayload) string {
	return "mailto:" + email.To +
		"?subject=" + url.QueryEscape(email.Subject) +
		"&body=" + url.QueryEscape(email.Text)
}

// SendViaAPI posts the rendered email as JSON to the configured endpoint,
// with a bearer authorization header when an API key is set. Only the status
// class of the response is consumed.
func SendViaAPI(ctx context.Context, endpoint, apiKey string, email EmailPayload) error {
	body, err := json.Marshal(map[string]string{
		"to":      email.To,
		"subject": email.Subject,
		"html":    email.HTML,
		"text":    email.Text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("email endpoint request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// SendViaSMTP delivers the rendered email through the SMTP relay configured
// by the SMTP_HOST, SMTP_PORT, SMTP_USER and SMTP_PASS environment variables.
func SendViaSMTP(settings models.Settings, email EmailPayload) error {
	from := settings.SenderEmail
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Text)
	m.AddAlternative("text/html", email.HTML)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}

	d := gomail.NewDialer(smtpHost, smtpPort, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"))
	return d.DialAndSend(m)
}
