package models

import "time"

// StorageItem is one persisted collection: a JSON blob under a single key
// (the analysis history list, the daily log list). Whole-value rewrite on
// every write, mirroring the mobile client's key/value storage contract.
type StorageItem struct {
	Key       string    `gorm:"primaryKey;type:varchar(255)" json:"key"`
	Value     []byte    `gorm:"type:jsonb" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
