package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nishantjoshi-007/NutriScan/models"
)

// GormStore keeps each collection as one app_storage row.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) ([]byte, bool, error) {
	var item models.StorageItem
	err := s.db.Where("key = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return item.Value, true, nil
}

func (s *GormStore) Set(key string, value []byte) error {
	item := models.StorageItem{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
}

func (s *GormStore) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&models.StorageItem{}).Error
}
