package models

import "time"

type Video struct {
	ID             string    `gorm:"primaryKey;size:40" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	URL            string    `gorm:"size:512" json:"url"`
	Source         string    `gorm:"size:10" json:"source"` // upload | url
	FileName       string    `gorm:"size:255" json:"file_name,omitempty"`
	RoleVisibility string    `gorm:"size:20;not null;index" json:"role_visibility"` // customer | influencer | seller | all
	TargetPage     string    `gorm:"size:20;not null;index" json:"target_page"`
	CreatedAt      time.Time `json:"created_at"`
}
