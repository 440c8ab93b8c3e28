package services

import (
	"context"
	"errors"

	"RaacProms/models"
	"RaacProms/repositories"
	"RaacProms/utils"
)

// ErrAccessDenied is returned for any portal refusal. A missing patient and
// a wrong token are deliberately indistinguishable so that valid patient ids
// cannot be probed.
var ErrAccessDenied = errors.New("access denied")

// PortalPatient is the subset of a patient record shown on the portal. The
// token and contact details stay server-side.
type PortalPatient struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Joint     string `json:"joint"`
	OpDate    string `json:"op_date"`
}

// PortalTimelineEntry is one catalog timepoint with the scores recorded for
// it, if any. Comments are visible to administrators only and are not
// included here.
type PortalTimelineEntry struct {
	Timepoint   models.Timepoint `json:"timepoint"`
	Date        string           `json:"date,omitempty"`
	OxfordScore *int             `json:"oxford_score,omitempty"`
	WomacScore  *int             `json:"womac_score,omitempty"`
}

type PortalView struct {
	Patient  PortalPatient         `json:"patient"`
	Timeline []PortalTimelineEntry `json:"timeline"`
}

type PortalService struct {
	patientRepo *repositories.PatientRepository
	measureRepo *repositories.MeasureRepository
}

func NewPortalService(patientRepo *repositories.PatientRepository, measureRepo *repositories.MeasureRepository) *PortalService {
	return &PortalService{patientRepo: patientRepo, measureRepo: measureRepo}
}

// View grants read-only access to one patient's follow-up iff the presented
// token matches that patient's stored token exactly.
func (s *PortalService) View(ctx context.Context, patientID, token string) (*PortalView, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !authorizePortal(patient, token) {
		return nil, ErrAccessDenied
	}

	measures, err := s.measureRepo.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &PortalView{
		Patient: PortalPatient{
			FirstName: patient.FirstName,
			LastName:  patient.LastName,
			Joint:     patient.Joint,
			OpDate:    patient.OpDate,
		},
		Timeline: buildTimeline(measures),
	}, nil
}

func authorizePortal(patient *models.Patient, token string) bool {
	if patient == nil || token == "" {
		return false
	}
	return utils.SecureCompare(patient.Token, token)
}

// buildTimeline maps measures onto the full timepoint catalog, leaving
// entries without a measure empty.
func buildTimeline(measures []models.Measure) []PortalTimelineEntry {
	byTimepoint := make(map[string]models.Measure, len(measures))
	for _, m := range measures {
		byTimepoint[m.Timepoint] = m
	}
	timeline := make([]PortalTimelineEntry, 0, len(models.Timepoints))
	for _, tp := range models.Timepoints {
		entry := PortalTimelineEntry{Timepoint: tp}
		if m, ok := byTimepoint[tp.ID]; ok {
			oxford, womac := m.OxfordScore, m.WomacScore
			entry.Date = m.Date
			entry.OxfordScore = &oxford
			entry.WomacScore = &womac
		}
		timeline = append(timeline, entry)
	}
	return timeline
}
