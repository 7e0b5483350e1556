package repositories

import (
	"github.com/socialweb-app/backend/internal/models"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for direct-message operations
type MessageRepository interface {
	CreateMessage(message *models.Message) error
	GetBetween(a, b string) ([]models.Message, error)
	GetByUser(username string) ([]models.Message, error)
	MarkSeen(uids []string) error
}

type postgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a MessageRepository backed by PostgreSQL
func NewPostgresMessageRepository(db *gorm.DB) MessageRepository {
	return &postgresMessageRepository{db: db}
}

func (r *postgresMessageRepository) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetBetween returns the merged two-direction thread between a and b,
// ascending by creation time.
func (r *postgresMessageRepository) GetBetween(a, b string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where(
		"(sender_username = ? AND receiver_username = ?) OR (sender_username = ? AND receiver_username = ?)",
		a, b, b, a,
	).Order("created_at ASC, id ASC").Find(&messages).Error
	return messages, err
}

// GetByUser returns every message the user sent or received, ascending by
// creation time.
func (r *postgresMessageRepository) GetByUser(username string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("sender_username = ? OR receiver_username = ?", username, username).
		Order("created_at ASC, id ASC").Find(&messages).Error
	return messages, err
}

// MarkSeen flips the seen flag on the given messages
func (r *postgresMessageRepository) MarkSeen(uids []string) error {
	if len(uids) == 0 {
		return nil
	}
	return r.db.Model(&models.Message{}).Where("uid IN ?", uids).Update("seen", true).Error
}
