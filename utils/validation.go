package utils

import (
	"errors"
	"log"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"RaacProms/models"
)

var (
	ErrInvalidDate   = errors.New("date must be formatted YYYY-MM-DD")
	ErrInvalidAnswer = errors.New("answers must cover every item with values between 0 and 4")
)

var hourRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ValidatePatientData validates the intake and update form fields. Last name,
// first name and email are required; the joint must be hip or knee; dates,
// when present, must be ISO formatted.
func ValidatePatientData(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.Email, validation.Required, is.Email),
		validation.Field(&patient.Joint, validation.Required, validation.In("hip", "knee")),
		validation.Field(&patient.BirthDate, validation.By(optionalISODate)),
		validation.Field(&patient.OpDate, validation.By(optionalISODate)),
	)
	if err != nil {
		log.Printf("Patient validation error: %v", err)
	}
	return err
}

// MeasureInput is the request body for saving a measure. Oxford answers are
// keyed "0".."11"; WOMAC answers are keyed "<section>:<index>".
type MeasureInput struct {
	Date    string         `json:"date"`
	Oxford  map[string]int `json:"oxford"`
	Womac   map[string]int `json:"womac"`
	Comment string         `json:"comment"`
}

// ValidateMeasureInput checks the completion date and both answer sets. A
// measure is fully answered at save time; partial questionnaires are
// rejected here.
func ValidateMeasureInput(input MeasureInput) error {
	err := validation.Errors{
		"date":   validation.Validate(input.Date, validation.Required, validation.By(requiredISODate)),
		"oxford": validation.Validate(input.Oxford, validation.By(completeOxford)),
		"womac":  validation.Validate(input.Womac, validation.By(completeWomac)),
	}.Filter()
	if err != nil {
		log.Printf("Measure validation error: %v", err)
	}
	return err
}

// ValidateSettingsData validates the settings form fields.
func ValidateSettingsData(settings models.Settings) error {
	err := validation.ValidateStruct(&settings,
		validation.Field(&settings.OrgName, validation.Required, validation.Length(1, 200)),
		validation.Field(&settings.SenderEmail, is.Email),
		validation.Field(&settings.APIEndpoint, is.RequestURL),
		validation.Field(&settings.DefaultHour, validation.Match(hourRegex).Error("must be formatted HH:MM")),
	)
	if err != nil {
		log.Printf("Settings validation error: %v", err)
	}
	return err
}

func optionalISODate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !ValidISODate(s) {
		return ErrInvalidDate
	}
	return nil
}

func requiredISODate(value interface{}) error {
	s, _ := value.(string)
	if !ValidISODate(s) {
		return ErrInvalidDate
	}
	return nil
}

func completeOxford(value interface{}) error {
	answers, _ := value.(map[string]int)
	if _, err := models.ScoreOxford(answers); err != nil {
		return ErrInvalidAnswer
	}
	return nil
}

func completeWomac(value interface{}) error {
	answers, _ := value.(map[string]int)
	if _, err := models.ScoreWomac(answers); err != nil {
		return ErrInvalidAnswer
	}
	return nil
}
