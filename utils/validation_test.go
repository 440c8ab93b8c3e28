package utils

import (
	"strconv"
	"testing"

	"RaacProms/models"
)

func validPatient() models.Patient {
	return models.Patient{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Joint:     "hip",
		BirthDate: "1960-05-01",
		OpDate:    "2025-01-01",
	}
}

func TestValidatePatientData_Valid(t *testing.T) {
	if err := ValidatePatientData(validPatient()); err != nil {
		t.Errorf("valid patient rejected: %v", err)
	}
}

func TestValidatePatientData_DatesOptional(t *testing.T) {
	p := validPatient()
	p.BirthDate = ""
	p.OpDate = ""
	if err := ValidatePatientData(p); err != nil {
		t.Errorf("patient without dates rejected: %v", err)
	}
}

func TestValidatePatientData_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Patient)
	}{
		{"missing last name", func(p *models.Patient) { p.LastName = "" }},
		{"missing first name", func(p *models.Patient) { p.FirstName = "" }},
		{"bad email", func(p *models.Patient) { p.Email = "not-an-email" }},
		{"missing email", func(p *models.Patient) { p.Email = "" }},
		{"bad joint", func(p *models.Patient) { p.Joint = "shoulder" }},
		{"missing joint", func(p *models.Patient) { p.Joint = "" }},
		{"bad birth date", func(p *models.Patient) { p.BirthDate = "01/05/1960" }},
		{"bad op date", func(p *models.Patient) { p.OpDate = "2025-13-01" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPatient()
			tt.mutate(&p)
			if err := ValidatePatientData(p); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func completeMeasureInput() MeasureInput {
	oxford := make(map[string]int, len(models.OxfordItems))
	for i := range models.OxfordItems {
		oxford[strconv.Itoa(i)] = 2
	}
	womac := make(map[string]int)
	for _, sec := range models.WomacSections {
		for i := range sec.Items {
			womac[sec.Key+":"+strconv.Itoa(i)] = 1
		}
	}
	return MeasureInput{Date: "2025-02-01", Oxford: oxford, Womac: womac}
}

func TestValidateMeasureInput_Valid(t *testing.T) {
	if err := ValidateMeasureInput(completeMeasureInput()); err != nil {
		t.Errorf("complete measure rejected: %v", err)
	}
}

func TestValidateMeasureInput_PartialAnswersRejected(t *testing.T) {
	input := completeMeasureInput()
	delete(input.Oxford, "3")
	if err := ValidateMeasureInput(input); err == nil {
		t.Error("partial oxford answers should be rejected")
	}

	input = completeMeasureInput()
	delete(input.Womac, "pain:2")
	if err := ValidateMeasureInput(input); err == nil {
		t.Error("partial womac answers should be rejected")
	}
}

func TestValidateMeasureInput_BadDate(t *testing.T) {
	input := completeMeasureInput()
	input.Date = "02/01/2025"
	if err := ValidateMeasureInput(input); err == nil {
		t.Error("non-ISO date should be rejected")
	}

	input.Date = ""
	if err := ValidateMeasureInput(input); err == nil {
		t.Error("missing date should be rejected")
	}
}

func TestValidateSettingsData(t *testing.T) {
	ok := models.Settings{
		OrgName:     "City Ortho",
		SenderEmail: "noreply@clinic.example.com",
		APIEndpoint: "https://mailer.example.com/send",
		DefaultHour: "09:00",
	}
	if err := ValidateSettingsData(ok); err != nil {
		t.Errorf("valid settings rejected: %v", err)
	}

	bad := ok
	bad.OrgName = ""
	if err := ValidateSettingsData(bad); err == nil {
		t.Error("missing org name should be rejected")
	}

	bad = ok
	bad.DefaultHour = "9am"
	if err := ValidateSettingsData(bad); err == nil {
		t.Error("malformed default hour should be rejected")
	}

	bad = ok
	bad.APIEndpoint = "not a url"
	if err := ValidateSettingsData(bad); err == nil {
		t.Error("malformed api endpoint should be rejected")
	}
}

func TestAddDays(t *testing.T) {
	if got := AddDays("2025-01-01", 30); got != "2025-01-31" {
		t.Errorf("AddDays(+30) = %q, want 2025-01-31", got)
	}
	if got := AddDays("2025-01-01", -7); got != "2024-12-25" {
		t.Errorf("AddDays(-7) = %q, want 2024-12-25", got)
	}
	if got := AddDays("garbage", 1); got != "" {
		t.Errorf("AddDays(garbage) = %q, want empty", got)
	}
}

func TestValidISODate(t *testing.T) {
	if !ValidISODate("2025-02-28") {
		t.Error("2025-02-28 should be valid")
	}
	if ValidISODate("2025-02-30") {
		t.Error("2025-02-30 should be invalid")
	}
	if ValidISODate("2025-2-3") {
		t.Error("unpadded dates should be invalid")
	}
}
