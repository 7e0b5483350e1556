package repositories

import (
	"github.com/socialweb-app/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	GetByRecipient(username string) ([]models.Notification, error)
	MarkSeen(uids []string) error
	CountUnseen(username string) (int64, error)
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a NotificationRepository backed by PostgreSQL
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByRecipient returns the recipient's notifications, newest first
func (r *postgresNotificationRepository) GetByRecipient(username string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("to_username = ?", username).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkSeen flips the seen flag on the given notifications
func (r *postgresNotificationRepository) MarkSeen(uids []string) error {
	if len(uids) == 0 {
		return nil
	}
	return r.db.Model(&models.Notification{}).Where("uid IN ?", uids).Update("seen", true).Error
}

func (r *postgresNotificationRepository) CountUnseen(username string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("to_username = ? AND seen = false", username).Count(&count).Error
	return count, err
}
