package services

import (
	"context"
	"strings"

	"RaacProms/models"
	"RaacProms/repositories"
	"RaacProms/utils"
)

type PatientService struct {
	repository *repositories.PatientRepository
	snapshot   *SnapshotService
}

func NewPatientService(repository *repositories.PatientRepository, snapshot *SnapshotService) *PatientService {
	return &PatientService{repository: repository, snapshot: snapshot}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return err
	}
	if err := s.repository.Create(ctx, patient); err != nil {
		return err
	}
	s.snapshot.Touch()
	return nil
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.repository.GetByID(ctx, id)
}

// GetAll lists patients, optionally filtered by a case-insensitive name
// substring.
func (s *PatientService) GetAll(ctx context.Context, filter string) ([]models.Patient, error) {
	patients, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" {
		return patients, nil
	}
	needle := strings.ToLower(filter)
	filtered := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		name := strings.ToLower(p.LastName + " " + p.FirstName)
		if strings.Contains(name, needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *PatientService) Update(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return err
	}
	if err := s.repository.Update(ctx, patient); err != nil {
		return err
	}
	s.snapshot.Touch()
	return nil
}
