package repository

import (
	"eaglehub/internal/models"

	"gorm.io/gorm"
)

type SpinRepository struct {
	db *gorm.DB
}

func NewSpinRepository(db *gorm.DB) *SpinRepository {
	return &SpinRepository{db: db}
}

func (r *SpinRepository) Create(s *models.SpinResult) error {
	return r.db.Create(s).Error
}

// LastNByPhone returns the phone's n most recent spins, oldest of them
// first, for the profile view.
func (r *SpinRepository) LastNByPhone(phone string, n int) ([]models.SpinResult, error) {
	var list []models.SpinResult
	err := r.db.Where("phone = ?", phone).Order("created_at DESC").Limit(n).Find(&list).Error
	if err != nil {
		return nil, err
	}
	// reverse into chronological order
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}
