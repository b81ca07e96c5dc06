package models

import "time"

// ChatMessage is immutable once created and never deleted. Phone is set for
// user-authored messages and empty for admin replies.
//
// The same struct travels to the Realtime Database: json tags double as the
// remote field names, so a record read back from the remote store decodes
// into the exact shape the local table holds.
type ChatMessage struct {
	ID        string    `gorm:"primaryKey;size:40" json:"id"`
	Page      string    `gorm:"size:20;not null;index" json:"page"`
	UserType  string    `gorm:"size:10;not null" json:"user_type"` // user | admin
	Username  string    `gorm:"size:64;not null" json:"username"`
	Phone     string    `gorm:"size:20;index" json:"phone,omitempty"`
	Text      string    `gorm:"size:2000;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
