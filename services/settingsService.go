package services

import (
	"context"

	"RaacProms/models"
	"RaacProms/repositories"
	"RaacProms/utils"
)

type SettingsService struct {
	repository *repositories.SettingsRepository
	snapshot   *SnapshotService
}

func NewSettingsService(repository *repositories.SettingsRepository, snapshot *SnapshotService) *SettingsService {
	return &SettingsService{repository: repository, snapshot: snapshot}
}

func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.repository.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, settings *models.Settings) error {
	if err := utils.ValidateSettingsData(*settings); err != nil {
		return err
	}
	if err := s.repository.Update(ctx, settings); err != nil {
		return err
	}
	s.snapshot.Touch()
	return nil
}
