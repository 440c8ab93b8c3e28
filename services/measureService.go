package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"RaacProms/models"
	"RaacProms/repositories"
	"RaacProms/utils"
)

var ErrUnknownTimepoint = errors.New("unknown timepoint")

type MeasureService struct {
	repository  *repositories.MeasureRepository
	patientRepo *repositories.PatientRepository
	snapshot    *SnapshotService
}

func NewMeasureService(repository *repositories.MeasureRepository, patientRepo *repositories.PatientRepository, snapshot *SnapshotService) *MeasureService {
	return &MeasureService{repository: repository, patientRepo: patientRepo, snapshot: snapshot}
}

// Save validates a complete answer set, stamps both scores and stores the
// measure, replacing any previous one for the same (patient, timepoint).
func (s *MeasureService) Save(ctx context.Context, patientID, timepointID string, input utils.MeasureInput) (*models.Measure, error) {
	if _, ok := models.TimepointByID(timepointID); !ok {
		return nil, ErrUnknownTimepoint
	}
	if err := utils.ValidateMeasureInput(input); err != nil {
		return nil, err
	}
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Validation guarantees complete answer sets, so scoring cannot fail
	// past this point and the stored scores equal the stored answers' sums.
	oxfordScore, err := models.ScoreOxford(input.Oxford)
	if err != nil {
		return nil, err
	}
	womacScore, err := models.ScoreWomac(input.Womac)
	if err != nil {
		return nil, err
	}

	oxfordJSON, err := json.Marshal(input.Oxford)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal oxford answers: %w", err)
	}
	womacJSON, err := json.Marshal(input.Womac)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal womac answers: %w", err)
	}

	measure := &models.Measure{
		PatientID:   patientID,
		Timepoint:   timepointID,
		Date:        input.Date,
		Oxford:      oxfordJSON,
		Womac:       womacJSON,
		Comment:     input.Comment,
		OxfordScore: oxfordScore,
		WomacScore:  womacScore,
	}
	if err := s.repository.Save(ctx, measure); err != nil {
		return nil, err
	}
	s.snapshot.Touch()
	return measure, nil
}

func (s *MeasureService) GetByPatient(ctx context.Context, patientID string) ([]models.Measure, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *MeasureService) GetAll(ctx context.Context) ([]models.Measure, error) {
	return s.repository.GetAll(ctx)
}
