package models

import "time"

// Snapshot is one durable key-value slot holding a store's full serialized
// state. Each store writes its own slot; slots are independent.
type Snapshot struct {
	Slot      string    `gorm:"primaryKey;size:100" json:"slot"`
	Data      []byte    `gorm:"type:blob" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Snapshot model
func (Snapshot) TableName() string {
	return "snapshots"
}
