package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StorageKey is the fixed Redis key under which the debounced JSON snapshot
// of the whole store is written.
const StorageKey = "raac_proms_v3"

// Patient model. ID and Token are generated at intake and never change.
type Patient struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Token     string    `gorm:"column:token;unique;not null" json:"token"`
	FirstName string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;not null;index" json:"last_name"`
	BirthDate string    `gorm:"column:birth_date" json:"birth_date"`
	Joint     string    `gorm:"column:joint;check:joint IN ('hip', 'knee');not null" json:"joint"`
	OpDate    string    `gorm:"column:op_date;index" json:"op_date"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Measures  []Measure `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Measure model. One row per (patient, timepoint); saving again replaces the
// previous row. Scores are stamped at save time and equal the sum of the raw
// answers stored alongside them.
type Measure struct {
	ID          string         `gorm:"primaryKey;column:id" json:"id"`
	PatientID   string         `gorm:"column:patient_id;not null;index;uniqueIndex:idx_patient_timepoint" json:"patient_id"`
	Timepoint   string         `gorm:"column:timepoint;not null;uniqueIndex:idx_patient_timepoint" json:"timepoint"`
	Date        string         `gorm:"column:date;not null" json:"date"`
	Oxford      datatypes.JSON `gorm:"column:oxford" json:"oxford"`
	Womac       datatypes.JSON `gorm:"column:womac" json:"womac"`
	Comment     string         `gorm:"column:comment" json:"comment"`
	OxfordScore int            `gorm:"column:oxford_score;not null" json:"oxford_score"`
	WomacScore  int            `gorm:"column:womac_score;not null" json:"womac_score"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient     Patient        `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Measure) TableName() string {
	return "measure"
}

// Settings is a singleton row (id = 1) mutated via the settings form.
type Settings struct {
	ID                   uint   `gorm:"primaryKey;column:id" json:"id"`
	OrgName              string `gorm:"column:org_name" json:"org_name"`
	LogoURL              string `gorm:"column:logo_url" json:"logo_url"`
	SenderEmail          string `gorm:"column:sender_email" json:"sender_email"`
	APIEndpoint          string `gorm:"column:api_endpoint" json:"api_endpoint"`
	APIKey               string `gorm:"column:api_key" json:"api_key"`
	DefaultHour          string `gorm:"column:default_hour" json:"default_hour"`
	EmailSubjectTemplate string `gorm:"type:text;column:email_subject_template" json:"email_subject_template"`
	EmailTemplate        string `gorm:"type:text;column:email_template" json:"email_template"`
}

func (Settings) TableName() string {
	return "settings"
}

const SettingsID = 1

// DefaultEmailSubject is the subject template applied when none is configured.
const DefaultEmailSubject = "Your {{tpLabel}} questionnaire - {{orgName}}"

// DefaultEmailTemplate is the HTML body template applied when none is
// configured. Variables: orgName, logoUrl, patientFirst, patientLast,
// tpLabel, portalURL, dueDate.
const DefaultEmailTemplate = `
  <div style="font-family:system-ui,-apple-system,Segoe UI,Roboto,Arial,sans-serif;line-height:1.5">
    <div style="margin-bottom:12px">
      {{#if logoUrl}}<img src="{{logoUrl}}" alt="{{orgName}}" style="max-height:48px;vertical-align:middle"/>{{/if}}
      <h2 style="margin:8px 0 0 0;font-size:18px">{{orgName}}</h2>
    </div>
    <p>Hello {{patientFirst}} {{patientLast}},</p>
    <p>Please complete your questionnaire (<strong>{{tpLabel}}</strong>):</p>
    <p><a href="{{portalURL}}">Open my follow-up page</a></p>
    <p>Due date: <strong>{{dueDate}}</strong></p>
    <p>Kind regards,<br>{{orgName}}</p>
    <p style="font-size:12px;color:#666">Automated message - please do not reply.</p>
  </div>`

// SeedDefaultSettings inserts the settings singleton if it does not exist yet.
func SeedDefaultSettings(db *gorm.DB) error {
	defaults := Settings{
		ID:                   SettingsID,
		OrgName:              "Clinic",
		DefaultHour:          "09:00",
		EmailSubjectTemplate: DefaultEmailSubject,
		EmailTemplate:        DefaultEmailTemplate,
	}
	return db.FirstOrCreate(&defaults, Settings{ID: SettingsID}).Error
}

// Backup is the JSON blob written to Redis under StorageKey and served by the
// backup export endpoint.
type Backup struct {
	Patients []Patient `json:"patients"`
	Measures []Measure `json:"measures"`
	Settings Settings  `json:"settings"`
}
