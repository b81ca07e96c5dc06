package repository

import (
	"errors"

	"eaglehub/internal/domain"
	"eaglehub/internal/models"

	"gorm.io/gorm"
)

// ErrTerminalStatus is returned when a status change is attempted on an
// application that already left pending. Approved and rejected are terminal.
var ErrTerminalStatus = errors.New("application status is terminal")

// ApplicationRepository covers both application kinds; they share the
// pending -> approved | rejected lifecycle.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) CreateInfluencer(a *models.InfluencerApplication) error {
	return r.db.Create(a).Error
}

func (r *ApplicationRepository) CreateSeller(a *models.SellerApplication) error {
	return r.db.Create(a).Error
}

func (r *ApplicationRepository) ListInfluencer() ([]models.InfluencerApplication, error) {
	var list []models.InfluencerApplication
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ApplicationRepository) ListSeller() ([]models.SellerApplication, error) {
	var list []models.SellerApplication
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ApplicationRepository) ListInfluencerByPhone(phone string) ([]models.InfluencerApplication, error) {
	var list []models.InfluencerApplication
	err := r.db.Where("phone = ?", phone).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ApplicationRepository) ListSellerByPhone(phone string) ([]models.SellerApplication, error) {
	var list []models.SellerApplication
	err := r.db.Where("phone = ?", phone).Order("created_at DESC").Find(&list).Error
	return list, err
}

// UpdateStatus moves an application of the given kind out of pending.
// Returns gorm.ErrRecordNotFound for unknown ids and ErrTerminalStatus when
// the application was already approved or rejected.
func (r *ApplicationRepository) UpdateStatus(kind, id, status string) error {
	switch kind {
	case domain.ApplicationInfluencer:
		var a models.InfluencerApplication
		if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
			return err
		}
		if a.Status != domain.StatusPending {
			return ErrTerminalStatus
		}
		return r.db.Model(&a).Update("status", status).Error
	case domain.ApplicationSeller:
		var a models.SellerApplication
		if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
			return err
		}
		if a.Status != domain.StatusPending {
			return ErrTerminalStatus
		}
		return r.db.Model(&a).Update("status", status).Error
	}
	return gorm.ErrRecordNotFound
}
