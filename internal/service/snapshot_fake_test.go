package service

import (
	"errors"
	"sync"
)

// fakeSnapshotStore is an in-memory snapshot store for unit tests. It can be
// told to fail saves to exercise the dirty/retry path.
type fakeSnapshotStore struct {
	mu        sync.Mutex
	data      map[string][]byte
	failSave  bool
	loadErr   error
	saveCalls int
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{
		data: make(map[string][]byte),
	}
}

func (f *fakeSnapshotStore) Load(slot string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.data[slot], nil
}

func (f *fakeSnapshotStore) Save(slot string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.failSave {
		return errors.New("storage quota exceeded")
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	f.data[slot] = stored
	return nil
}

func (f *fakeSnapshotStore) stored(slot string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[slot]
}
