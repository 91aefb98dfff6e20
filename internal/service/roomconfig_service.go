package service

import (
	"encoding/json"
	"errors"
	"sync"

	"hotel-floor-dashboard/internal/models"
	"hotel-floor-dashboard/internal/repository"

	"go.uber.org/zap"
)

// ErrInvalidBedPosition is returned by SetBedPosition for values outside
// top/bottom/left/right
var ErrInvalidBedPosition = errors.New("invalid bed position")

// RoomConfigService owns per-room overrides (currently the bed position).
// Absence of a record is the default state; overrides are never deleted,
// only replaced. Independent of the observation store, separate slot.
type RoomConfigService struct {
	mu     sync.RWMutex
	byRoom map[string]models.RoomConfig
	store  SnapshotStore
	logger *zap.Logger
	dirty  bool
}

// NewRoomConfigService restores state from the room-config slot, falling
// back to empty on an absent or malformed snapshot.
func NewRoomConfigService(store SnapshotStore, logger *zap.Logger) *RoomConfigService {
	s := &RoomConfigService{
		byRoom: make(map[string]models.RoomConfig),
		store:  store,
		logger: logger,
	}

	data, err := store.Load(repository.SlotRoomConfigs)
	if err != nil {
		logger.Warn("Failed to load room config snapshot, starting empty", zap.Error(err))
		return s
	}
	if len(data) == 0 {
		return s
	}
	if err := s.LoadSnapshot(data); err != nil {
		logger.Warn("Malformed room config snapshot, starting empty", zap.Error(err))
	}
	return s
}

// SetBedPosition upserts a room's bed position override
func (s *RoomConfigService) SetBedPosition(roomID string, position models.BedPosition) error {
	if !models.ValidBedPosition(position) {
		return ErrInvalidBedPosition
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.byRoom[roomID]
	cfg.BedPosition = position
	s.byRoom[roomID] = cfg
	s.persistLocked()
	return nil
}

// GetConfig returns a room's stored overrides, or the zero config if the
// room was never configured
func (s *RoomConfigService) GetConfig(roomID string) models.RoomConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byRoom[roomID]
}

// SaveSnapshot serializes the full store state for the persistence adapter
func (s *RoomConfigService) SaveSnapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.byRoom)
}

// LoadSnapshot replaces the store state with a previously saved snapshot;
// malformed input leaves the current state untouched
func (s *RoomConfigService) LoadSnapshot(data []byte) error {
	var byRoom map[string]models.RoomConfig
	if err := json.Unmarshal(data, &byRoom); err != nil {
		return err
	}
	if byRoom == nil {
		byRoom = make(map[string]models.RoomConfig)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRoom = byRoom
	return nil
}

// FlushPending retries the snapshot write if an earlier one failed
func (s *RoomConfigService) FlushPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return
	}
	s.persistLocked()
}

func (s *RoomConfigService) persistLocked() {
	data, err := json.Marshal(s.byRoom)
	if err != nil {
		s.logger.Error("Failed to serialize room config snapshot", zap.Error(err))
		return
	}
	if err := s.store.Save(repository.SlotRoomConfigs, data); err != nil {
		s.dirty = true
		s.logger.Warn("Failed to persist room config snapshot, will retry", zap.Error(err))
		return
	}
	s.dirty = false
}
