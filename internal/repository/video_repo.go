package repository

import (
	"eaglehub/internal/domain"
	"eaglehub/internal/models"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(v *models.Video) error {
	return r.db.Create(v).Error
}

func (r *VideoRepository) GetByID(id string) (*models.Video, error) {
	var v models.Video
	err := r.db.Where("id = ?", id).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepository) Update(v *models.Video) error {
	return r.db.Save(v).Error
}

func (r *VideoRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Video{}).Error
}

func (r *VideoRepository) List() ([]models.Video, error) {
	var list []models.Video
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

// ListVisibleToRole returns videos whose visibility is "all" or matches the
// role, newest first.
func (r *VideoRepository) ListVisibleToRole(role string) ([]models.Video, error) {
	var list []models.Video
	err := r.db.Where("role_visibility = ? OR role_visibility = ?", domain.RoleAll, role).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

// LatestForPage returns the most recently created video targeting the page,
// or nil when the page has none.
func (r *VideoRepository) LatestForPage(page string) (*models.Video, error) {
	var v models.Video
	err := r.db.Where("target_page = ?", page).Order("created_at DESC").First(&v).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
