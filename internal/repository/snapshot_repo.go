package repository

import (
	"errors"

	"hotel-floor-dashboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot names for the two independent store snapshots. The observation store
// and the room-config store never share a slot.
const (
	SlotObservations = "hotel-observations"
	SlotRoomConfigs  = "hotel-room-configs"
)

// SnapshotRepository persists full store snapshots as named key-value slots
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load returns the bytes stored in a slot. An absent slot is not an error:
// it returns (nil, nil) so first-run callers can fall back to empty state.
func (r *SnapshotRepository) Load(slot string) ([]byte, error) {
	var snapshot models.Snapshot
	err := r.db.Where("slot = ?", slot).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return snapshot.Data, nil
}

// Save upserts a slot's bytes, replacing any previous snapshot
func (r *SnapshotRepository) Save(slot string, data []byte) error {
	snapshot := models.Snapshot{Slot: slot, Data: data}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snapshot).Error
}
