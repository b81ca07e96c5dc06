package models

import "time"

// AppSetting stores admin-configurable key/value settings (branding etc).
type AppSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100;not null" json:"key"`
	Value     string    `gorm:"size:512;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AppSetting) TableName() string { return "app_settings" }

// AppSettings is the branding payload the frontend consumes.
type AppSettings struct {
	LogoURL string `json:"logo_url"`
}
