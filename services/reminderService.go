package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"RaacProms/config"
	"RaacProms/models"
	"RaacProms/repositories"
	"RaacProms/utils"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrNoOperationDate = errors.New("patient has no operation date")
)

// Reminder is a derived (patient, timepoint, due date) triple. It is
// recomputed on every read and never persisted.
type Reminder struct {
	Patient   models.Patient   `json:"patient"`
	Timepoint models.Timepoint `json:"timepoint"`
	DueDate   string           `json:"due_date"`
}

// ReminderListItem decorates a reminder with a prebuilt mailto link.
type ReminderListItem struct {
	Reminder
	Mailto string `json:"mailto"`
}

// ComputeReminders scans all patients against the timepoint catalog and
// returns the pairs that are due: the patient has an operation date, no
// measure exists for the pair, and the due date is today or earlier. Output
// is ordered ascending by ISO due date, which matches chronological order.
// The computation is a pure function of its inputs.
func ComputeReminders(patients []models.Patient, measures []models.Measure, today string) []Reminder {
	done := make(map[string]bool, len(measures))
	for _, m := range measures {
		done[m.PatientID+"|"+m.Timepoint] = true
	}

	var out []Reminder
	for _, p := range patients {
		if p.OpDate == "" {
			continue
		}
		for _, tp := range models.Timepoints {
			due := utils.AddDays(p.OpDate, tp.OffsetDays)
			if due == "" {
				continue
			}
			if !done[p.ID+"|"+tp.ID] && due <= today {
				out = append(out, Reminder{Patient: p, Timepoint: tp, DueDate: due})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate < out[j].DueDate
	})
	return out
}

type ReminderService struct {
	patientRepo  *repositories.PatientRepository
	measureRepo  *repositories.MeasureRepository
	settingsRepo *repositories.SettingsRepository
	config       *config.AppConfig
}

func NewReminderService(patientRepo *repositories.PatientRepository, measureRepo *repositories.MeasureRepository, settingsRepo *repositories.SettingsRepository, config *config.AppConfig) *ReminderService {
	return &ReminderService{
		patientRepo:  patientRepo,
		measureRepo:  measureRepo,
		settingsRepo: settingsRepo,
		config:       config,
	}
}

// List computes the currently due reminders with mailto links attached.
func (s *ReminderService) List(ctx context.Context) ([]ReminderListItem, error) {
	patients, err := s.patientRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	measures, err := s.measureRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	reminders := ComputeReminders(patients, measures, utils.TodayISO())
	items := make([]ReminderListItem, 0, len(reminders))
	for _, r := range reminders {
		portalURL := utils.PortalURL(s.config.GetPortalBaseURL(), r.Patient)
		email := utils.BuildReminderEmail(*settings, r.Patient, r.Timepoint, r.DueDate, portalURL)
		items = append(items, ReminderListItem{Reminder: r, Mailto: utils.MailtoLink(email)})
	}
	return items, nil
}

// Preview renders the reminder email for one (patient, timepoint) pair
// without sending it.
func (s *ReminderService) Preview(ctx context.Context, patientID, timepointID string) (*utils.EmailPayload, error) {
	patient, tp, due, err := s.resolvePair(ctx, patientID, timepointID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	portalURL := utils.PortalURL(s.config.GetPortalBaseURL(), *patient)
	email := utils.BuildReminderEmail(*settings, *patient, tp, due, portalURL)
	return &email, nil
}

// Send builds the reminder email and delivers it through the configured API
// endpoint, or over SMTP when no endpoint is set. Delivery is one attempt
// with no retry.
func (s *ReminderService) Send(ctx context.Context, patientID, timepointID string) error {
	email, err := s.Preview(ctx, patientID, timepointID)
	if err != nil {
		return err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}
	if settings.APIEndpoint != "" {
		return utils.SendViaAPI(ctx, settings.APIEndpoint, settings.APIKey, *email)
	}
	return utils.SendViaSMTP(*settings, *email)
}

// BuildICS renders the downloadable calendar event for one reminder.
func (s *ReminderService) BuildICS(ctx context.Context, patientID, timepointID string, now time.Time) (string, string, error) {
	patient, tp, due, err := s.resolvePair(ctx, patientID, timepointID)
	if err != nil {
		return "", "", err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return "", "", err
	}
	portalURL := utils.PortalURL(s.config.GetPortalBaseURL(), *patient)
	ics := utils.BuildReminderICS(*patient, tp, due, portalURL, *settings, now)
	return utils.ICSFileName(*patient, tp), ics, nil
}

func (s *ReminderService) resolvePair(ctx context.Context, patientID, timepointID string) (*models.Patient, models.Timepoint, string, error) {
	tp, ok := models.TimepointByID(timepointID)
	if !ok {
		return nil, models.Timepoint{}, "", ErrUnknownTimepoint
	}
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, models.Timepoint{}, "", err
	}
	if patient == nil {
		return nil, models.Timepoint{}, "", ErrPatientNotFound
	}
	if patient.OpDate == "" {
		return nil, models.Timepoint{}, "", ErrNoOperationDate
	}
	due := utils.AddDays(patient.OpDate, tp.OffsetDays)
	if due == "" {
		return nil, models.Timepoint{}, "", ErrNoOperationDate
	}
	return patient, tp, due, nil
}
