package repository

import (
	"eaglehub/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByPhone(phone string) (*models.User, error) {
	var u models.User
	err := r.db.Where("phone = ?", phone).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateCards persists the full tier flag set for the given phone.
// Unknown phones are a no-op, matching the console's silent toggle.
func (r *UserRepository) UpdateCards(phone string, cards models.Cards) error {
	return r.db.Model(&models.User{}).Where("phone = ?", phone).Updates(map[string]interface{}{
		"card_premium":  cards.Premium,
		"card_platinum": cards.Platinum,
		"card_gold":     cards.Gold,
	}).Error
}

func (r *UserRepository) List() ([]models.User, error) {
	var list []models.User
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}
