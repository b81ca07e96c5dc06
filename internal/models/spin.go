package models

import "time"

// SpinResult is an append-only record of one wheel spin.
type SpinResult struct {
	ID        string    `gorm:"primaryKey;size:40" json:"id"`
	Phone     string    `gorm:"size:20;not null;index" json:"phone"`
	Result    string    `gorm:"size:20;not null" json:"result"` // premium | platinum | gold | 3more | try | bad | mystery
	CreatedAt time.Time `json:"created_at"`
}
