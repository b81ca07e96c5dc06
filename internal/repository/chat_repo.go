package repository

import (
	"eaglehub/internal/models"

	"gorm.io/gorm"
)

// ChatRepository is the local side of the chat store: messages land here
// whenever the remote database is unreachable or unconfigured.
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Append(m *models.ChatMessage) error {
	return r.db.Create(m).Error
}

// ListByPage returns the full local history for a page, oldest first.
func (r *ChatRepository) ListByPage(page string) ([]models.ChatMessage, error) {
	var list []models.ChatMessage
	err := r.db.Where("page = ?", page).Order("created_at ASC").Find(&list).Error
	return list, err
}
