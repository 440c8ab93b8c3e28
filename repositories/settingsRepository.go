package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"RaacProms/cache"
	"RaacProms/database"
	"RaacProms/models"
)

const (
	SettingsCacheExpiry = 7 * 24 * time.Hour

	settingsCacheKey = "settings_cache"
)

type SettingsRepository struct {
	cache *cache.Cache
}

func NewSettingsRepository(cache *cache.Cache) *SettingsRepository {
	return &SettingsRepository{cache: cache}
}

// Get returns the settings singleton. A missing row falls back to the seeded
// defaults rather than erroring.
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cached models.Settings
	if hit, err := r.cache.GetJSON(ctx, settingsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	} else if err != nil {
		log.Printf("Failed to get settings from cache: %v", err)
	}

	var settings models.Settings
	err := database.DB.First(&settings, "id = ?", models.SettingsID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.Settings{
				ID:                   models.SettingsID,
				OrgName:              "Clinic",
				DefaultHour:          "09:00",
				EmailSubjectTemplate: models.DefaultEmailSubject,
				EmailTemplate:        models.DefaultEmailTemplate,
			}
			return &settings, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if err := r.cache.SetJSON(ctx, settingsCacheKey, settings, SettingsCacheExpiry); err != nil {
		log.Printf("Failed to set settings in cache: %v", err)
	}
	return &settings, nil
}

// Update replaces the settings singleton.
func (r *SettingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	lockKey := "settings_lock"
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer release()

	settings.ID = models.SettingsID
	if err := database.DB.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if err := r.cache.Delete(ctx, settingsCacheKey); err != nil {
		return fmt.Errorf("failed to delete settings cache: %w", err)
	}
	return nil
}
