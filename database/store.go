package database

import (
	"errors"

	"dealer-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record keys for the persisted collections.
const (
	KeyCustomers   = "customers"
	KeyInventory   = "inventory"
	KeyCurrentUser = "currentUser"
)

// RecordStore is the durable key-value storage behind the registries. Load
// reports absence instead of failing; callers fall back to seed data.
type RecordStore interface {
	Load(key string) ([]byte, bool)
	Save(key string, data []byte) error
	Delete(key string) error
}

// GormStore persists named record blobs in the stored_records table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(key string) ([]byte, bool) {
	var record models.StoredRecord
	if err := s.db.First(&record, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			// Read failures are treated as absence; the caller reseeds.
			return nil, false
		}
		return nil, false
	}
	return record.Data, true
}

func (s *GormStore) Save(key string, data []byte) error {
	record := models.StoredRecord{Key: key, Data: data}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&record).Error
}

func (s *GormStore) Delete(key string) error {
	return s.db.Delete(&models.StoredRecord{}, "key = ?", key).Error
}
