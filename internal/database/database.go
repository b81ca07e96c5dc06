package database

import (
	"eaglehub/config"
	"eaglehub/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the embedded SQLite database. The hub is local-first: this
// file is the whole persistent state, no server database is involved.
func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all collections.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Video{},
		&models.ChatMessage{},
		&models.SpinResult{},
		&models.InfluencerApplication{},
		&models.SellerApplication{},
		&models.AppSetting{},
	)
}
