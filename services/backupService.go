package services

import (
	"context"
	"encoding/json"
	"log"

	"RaacProms/models"
	"RaacProms/repositories"
)

type BackupService struct {
	repository *repositories.BackupRepository
	snapshot   *SnapshotService
}

func NewBackupService(repository *repositories.BackupRepository, snapshot *SnapshotService) *BackupService {
	return &BackupService{repository: repository, snapshot: snapshot}
}

// Export returns the whole store as the {patients, measures, settings} blob.
func (s *BackupService) Export(ctx context.Context) (*models.Backup, error) {
	return s.repository.LoadAll(ctx)
}

// Import replaces the whole store from a previously exported blob. An
// unparseable blob is read as an empty store, favoring availability over
// import-error visibility.
func (s *BackupService) Import(ctx context.Context, raw []byte) error {
	var backup models.Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		log.Printf("Unparseable backup blob, importing empty store: %v", err)
		backup = models.Backup{}
	}
	if err := s.repository.ReplaceAll(ctx, &backup); err != nil {
		return err
	}
	s.snapshot.Touch()
	return nil
}
