package repository

import (
	"testing"

	"hotel-floor-dashboard/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRepo(t *testing.T) *SnapshotRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Snapshot{}))
	return NewSnapshotRepo(db)
}

func TestLoad_AbsentSlot(t *testing.T) {
	repo := setupTestRepo(t)

	data, err := repo.Load(SlotObservations)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := setupTestRepo(t)

	payload := []byte(`{"205":[{"id":"a","roomId":"205","text":"leak","timestamp":1700000000000}]}`)
	require.NoError(t, repo.Save(SlotObservations, payload))

	data, err := repo.Load(SlotObservations)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestSave_OverwritesSlot(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Save(SlotObservations, []byte("first")))
	require.NoError(t, repo.Save(SlotObservations, []byte("second")))

	data, err := repo.Load(SlotObservations)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestSlots_Independent(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Save(SlotObservations, []byte("observations")))
	require.NoError(t, repo.Save(SlotRoomConfigs, []byte("configs")))

	obs, err := repo.Load(SlotObservations)
	require.NoError(t, err)
	cfg, err := repo.Load(SlotRoomConfigs)
	require.NoError(t, err)

	assert.Equal(t, []byte("observations"), obs)
	assert.Equal(t, []byte("configs"), cfg)
}
