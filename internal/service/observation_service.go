package service

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"hotel-floor-dashboard/internal/models"
	"hotel-floor-dashboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SnapshotStore is the persistence adapter consumed by the stores: durable
// key-value byte storage with one named slot per store.
type SnapshotStore interface {
	Load(slot string) ([]byte, error)
	Save(slot string, data []byte) error
}

// ErrEmptyObservation is returned by Add for empty or whitespace-only text
var ErrEmptyObservation = errors.New("observation text is empty")

// ObservationService owns the mapping from room id to its ordered list of
// observations. In-memory state is authoritative; every mutation is written
// through to the snapshot store, and a failed write marks the service dirty
// so the persistence worker retries it.
type ObservationService struct {
	mu     sync.RWMutex
	byRoom map[string][]models.Observation
	store  SnapshotStore
	logger *zap.Logger
	dirty  bool
}

// NewObservationService restores state from the observation slot. An absent
// or malformed snapshot falls back to an empty store; it is never fatal.
func NewObservationService(store SnapshotStore, logger *zap.Logger) *ObservationService {
	s := &ObservationService{
		byRoom: make(map[string][]models.Observation),
		store:  store,
		logger: logger,
	}

	data, err := store.Load(repository.SlotObservations)
	if err != nil {
		logger.Warn("Failed to load observation snapshot, starting empty", zap.Error(err))
		return s
	}
	if len(data) == 0 {
		return s
	}
	if err := s.LoadSnapshot(data); err != nil {
		logger.Warn("Malformed observation snapshot, starting empty", zap.Error(err))
	}
	return s
}

// Add creates a new observation for a room and prepends it to the room's
// list, so lists stay newest-first. Empty or whitespace-only text is
// rejected with ErrEmptyObservation. The room id is not checked against the
// catalog; notes for unknown rooms are stored and simply never displayed.
func (s *ObservationService) Add(roomID, text string) (models.Observation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Observation{}, ErrEmptyObservation
	}

	obs := models.Observation{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRoom[roomID] = append([]models.Observation{obs}, s.byRoom[roomID]...)
	s.persistLocked()

	return obs, nil
}

// Delete removes the observation with the given id from a room's list.
// Deleting an id that does not exist is a no-op, not an error.
func (s *ObservationService) Delete(roomID, observationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.byRoom[roomID]
	for i, obs := range list {
		if obs.ID == observationID {
			s.byRoom[roomID] = append(list[:i:i], list[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// ListFor returns a room's observations newest-first. Rooms with no
// observations yield an empty list, never a missing result.
func (s *ObservationService) ListFor(roomID string) []models.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.byRoom[roomID]
	out := make([]models.Observation, len(list))
	copy(out, list)
	return out
}

// SaveSnapshot serializes the full store state for the persistence adapter
func (s *ObservationService) SaveSnapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.byRoom)
}

// LoadSnapshot replaces the store state with a previously saved snapshot.
// Malformed input leaves the current state untouched and returns the parse
// error; it never panics or half-applies.
func (s *ObservationService) LoadSnapshot(data []byte) error {
	var byRoom map[string][]models.Observation
	if err := json.Unmarshal(data, &byRoom); err != nil {
		return err
	}
	if byRoom == nil {
		byRoom = make(map[string][]models.Observation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRoom = byRoom
	return nil
}

// FlushPending retries the snapshot write if an earlier one failed
func (s *ObservationService) FlushPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return
	}
	s.persistLocked()
}

// persistLocked writes the current state to the snapshot slot. A write
// failure is logged and flagged for retry; in-memory state stays
// authoritative for the rest of the session. Callers must hold mu.
func (s *ObservationService) persistLocked() {
	data, err := json.Marshal(s.byRoom)
	if err != nil {
		s.logger.Error("Failed to serialize observation snapshot", zap.Error(err))
		return
	}
	if err := s.store.Save(repository.SlotObservations, data); err != nil {
		s.dirty = true
		s.logger.Warn("Failed to persist observation snapshot, will retry", zap.Error(err))
		return
	}
	s.dirty = false
}
