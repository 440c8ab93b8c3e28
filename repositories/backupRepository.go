package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"RaacProms/cache"
	"RaacProms/database"
	"RaacProms/models"
)

// BackupRepository moves the whole store in and out of the single JSON blob
// shape {patients, measures, settings}.
type BackupRepository struct {
	cache *cache.Cache
}

func NewBackupRepository(cache *cache.Cache) *BackupRepository {
	return &BackupRepository{cache: cache}
}

// LoadAll reads the full store.
func (r *BackupRepository) LoadAll(ctx context.Context) (*models.Backup, error) {
	var backup models.Backup
	if err := database.DB.Order("created_at, id").Find(&backup.Patients).Error; err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}
	if err := database.DB.Order("created_at, id").Find(&backup.Measures).Error; err != nil {
		return nil, fmt.Errorf("failed to load measures: %w", err)
	}
	var settings models.Settings
	err := database.DB.First(&settings, "id = ?", models.SettingsID).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	backup.Settings = settings
	return &backup, nil
}

// ReplaceAll swaps the whole store for the given blob in one transaction and
// drops every cache entry afterwards.
func (r *BackupRepository) ReplaceAll(ctx context.Context, backup *models.Backup) error {
	lockKey := "store_lock"
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer release()

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Measure{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Patient{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Settings{}).Error; err != nil {
			return err
		}
		if len(backup.Patients) > 0 {
			if err := tx.Create(&backup.Patients).Error; err != nil {
				return err
			}
		}
		if len(backup.Measures) > 0 {
			if err := tx.Create(&backup.Measures).Error; err != nil {
				return err
			}
		}
		settings := backup.Settings
		settings.ID = models.SettingsID
		if settings.OrgName == "" && settings.EmailTemplate == "" {
			return models.SeedDefaultSettings(tx)
		}
		return tx.Create(&settings).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return r.invalidateAll(ctx)
}

func (r *BackupRepository) invalidateAll(ctx context.Context) error {
	for _, pattern := range []string{"patient_cache:*", patientsCacheKey, "measure_cache:*", measuresCacheKey, settingsCacheKey} {
		if err := r.cache.DeleteAll(ctx, pattern); err != nil {
			return fmt.Errorf("failed to invalidate cache %q: %w", pattern, err)
		}
	}
	return nil
}
