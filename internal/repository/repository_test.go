package repository

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eaglehub/internal/models"
)

// newTestDB opens a fresh in-memory database per test. The shared-cache
// DSN keeps the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Video{},
		&models.ChatMessage{},
		&models.SpinResult{},
		&models.InfluencerApplication{},
		&models.SellerApplication{},
		&models.AppSetting{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
