package models

import (
	"time"

	"eaglehub/internal/domain"
)

// Cards are the reward tiers a user may hold simultaneously. Spins and the
// admin console only ever set them; nothing clears a tier once won except
// an explicit admin toggle.
type Cards struct {
	Premium  bool `json:"premium"`
	Platinum bool `json:"platinum"`
	Gold     bool `json:"gold"`
}

// Has reports whether the named tier is set.
func (c Cards) Has(card string) bool {
	switch card {
	case domain.CardPremium:
		return c.Premium
	case domain.CardPlatinum:
		return c.Platinum
	case domain.CardGold:
		return c.Gold
	}
	return false
}

// Set flips the named tier to the given value. Unknown names are ignored.
func (c *Cards) Set(card string, on bool) {
	switch card {
	case domain.CardPremium:
		c.Premium = on
	case domain.CardPlatinum:
		c.Platinum = on
	case domain.CardGold:
		c.Gold = on
	}
}

// User is keyed by phone number; there is no password or profile-update
// path, sign-in is an idempotent upsert by phone.
type User struct {
	Phone     string    `gorm:"primaryKey;size:20" json:"phone"`
	Username  string    `gorm:"size:64;not null" json:"username"`
	Email     string    `gorm:"size:255" json:"email"`
	Role      string    `gorm:"size:20;not null;index" json:"role"` // customer | influencer | seller
	Cards     Cards     `gorm:"embedded;embeddedPrefix:card_" json:"cards"`
	CreatedAt time.Time `json:"created_at"`
}
