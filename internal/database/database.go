package database

import (
	"log"
	"time"

	"hotel-floor-dashboard/internal/config"
	"hotel-floor-dashboard/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the local sqlite database backing the snapshot slots and
// returns a GORM connection. State never leaves the device.
func Connect(cfg *config.Config) *gorm.DB {
	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Storage.Path), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Failed to open database at %s: %v", cfg.Storage.Path, err)
	}

	if err := db.AutoMigrate(&models.Snapshot{}); err != nil {
		log.Fatalf("Failed to migrate snapshot table: %v", err)
	}

	log.Printf("Successfully opened database at %s", cfg.Storage.Path)

	return db
}
