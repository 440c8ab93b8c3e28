package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"RaacProms/cache"
	"RaacProms/database"
	"RaacProms/models"
)

const (
	MeasureCacheExpiry = 7 * 24 * time.Hour

	measuresCacheKey = "measures_cache"
)

type MeasureRepository struct {
	cache *cache.Cache
}

func NewMeasureRepository(cache *cache.Cache) *MeasureRepository {
	return &MeasureRepository{cache: cache}
}

// Save upserts the measure for its (patient, timepoint) pair. Saving again
// for the same pair replaces the previous answers, comment and scores.
func (r *MeasureRepository) Save(ctx context.Context, measure *models.Measure) error {
	lockKey := fmt.Sprintf("measure_lock:%s_%s", measure.PatientID, measure.Timepoint)
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer release()

	existing, err := r.getByPairUncached(measure.PatientID, measure.Timepoint)
	if err != nil {
		return err
	}
	if existing != nil {
		measure.ID = existing.ID
		measure.CreatedAt = existing.CreatedAt
	} else {
		measure.ID = uuid.New().String()
	}

	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "patient_id"}, {Name: "timepoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"date", "oxford", "womac", "comment", "oxford_score", "womac_score"}),
	}).Create(measure).Error
	if err != nil {
		return fmt.Errorf("failed to save measure: %w", err)
	}
	return r.invalidate(ctx, measure.PatientID, measure.Timepoint)
}

// GetByPair returns the measure for one (patient, timepoint) pair, or nil.
func (r *MeasureRepository) GetByPair(ctx context.Context, patientID, timepointID string) (*models.Measure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getMeasureCacheKey(patientID, timepointID)
	var cached models.Measure
	if hit, err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	} else if err != nil {
		log.Printf("Failed to get measure from cache: %v", err)
	}

	measure, err := r.getByPairUncached(patientID, timepointID)
	if err != nil || measure == nil {
		return measure, err
	}

	if err := r.cache.SetJSON(ctx, cacheKey, measure, MeasureCacheExpiry); err != nil {
		log.Printf("Failed to set measure in cache: %v", err)
	}
	return measure, nil
}

func (r *MeasureRepository) getByPairUncached(patientID, timepointID string) (*models.Measure, error) {
	var measure models.Measure
	err := database.DB.First(&measure, "patient_id = ? AND timepoint = ?", patientID, timepointID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get measure: %w", err)
	}
	return &measure, nil
}

// GetByPatient returns all measures for a patient in catalog order.
func (r *MeasureRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Measure, error) {
	measures, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byTimepoint := make(map[string]models.Measure)
	for _, m := range measures {
		if m.PatientID == patientID {
			byTimepoint[m.Timepoint] = m
		}
	}
	ordered := make([]models.Measure, 0, len(byTimepoint))
	for _, tp := range models.Timepoints {
		if m, ok := byTimepoint[tp.ID]; ok {
			ordered = append(ordered, m)
		}
	}
	return ordered, nil
}

func (r *MeasureRepository) GetAll(ctx context.Context) ([]models.Measure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cached []models.Measure
	if hit, err := r.cache.GetJSON(ctx, measuresCacheKey, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		log.Printf("Failed to get measures from cache: %v", err)
	}

	var measures []models.Measure
	err := database.DB.Order("created_at, id").Find(&measures).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all measures: %w", err)
	}

	if err := r.cache.SetJSON(ctx, measuresCacheKey, measures, MeasureCacheExpiry); err != nil {
		log.Printf("Failed to set measures in cache: %v", err)
	}
	return measures, nil
}

func (r *MeasureRepository) invalidate(ctx context.Context, patientID, timepointID string) error {
	if err := r.cache.Delete(ctx, r.getMeasureCacheKey(patientID, timepointID)); err != nil {
		return fmt.Errorf("failed to delete measure cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, measuresCacheKey)
}

func (r *MeasureRepository) getMeasureCacheKey(patientID, timepointID string) string {
	return fmt.Sprintf("measure_cache:%s:%s", patientID, timepointID)
}
