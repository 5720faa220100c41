package models

import "time"

// StateRecord is one key-value entry of persisted application state.
type StateRecord struct {
	Key       string    `gorm:"column:state_key;primarykey;type:varchar(191)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
