package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/project-todo/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStateRepository is a GORM implementation of StateRepository
type GormStateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new StateRepository backed by db
func NewStateRepository(db *gorm.DB) StateRepository {
	return &GormStateRepository{db: db}
}

// Get finds the value stored under key
func (r *GormStateRepository) Get(key string) (string, bool, error) {
	var record models.StateRecord
	if err := r.db.Where("state_key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read state %q: %w", key, err)
	}
	return record.Value, true, nil
}

// Set upserts the value stored under key
func (r *GormStateRepository) Set(key, value string) error {
	record := models.StateRecord{Key: key, Value: value}

	err := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "state_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to write state %q: %w", key, err)
	}
	return nil
}
