package models

import "time"

// InfluencerApplication is created once on submission; status is the only
// field that ever changes, and only pending applications may transition.
type InfluencerApplication struct {
	ID         string    `gorm:"primaryKey;size:40" json:"id"`
	Name       string    `gorm:"size:120;not null" json:"name"`
	Phone      string    `gorm:"size:20;not null;index" json:"phone"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	Profession string    `gorm:"size:120" json:"profession"`
	Followers  int       `gorm:"not null" json:"followers"`
	Status     string    `gorm:"size:10;not null;index" json:"status"` // pending | approved | rejected
	CreatedAt  time.Time `json:"created_at"`
}

type SellerApplication struct {
	ID          string    `gorm:"primaryKey;size:40" json:"id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Address     string    `gorm:"size:255;not null" json:"address"`
	Phone       string    `gorm:"size:20;not null;index" json:"phone"`
	ProductType string    `gorm:"size:64;not null" json:"product_type"`
	ImageURLs   []string  `gorm:"serializer:json" json:"image_urls"`
	Status      string    `gorm:"size:10;not null;index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
