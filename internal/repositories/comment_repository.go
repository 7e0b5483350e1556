package repositories

import (
	"errors"

	"github.com/socialweb-app/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
// Sibling order everywhere is creation order (ascending primary key).
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByUID(uid string) (*models.Comment, error)
	GetByPostID(postID string) ([]models.Comment, error)
	GetReplies(parentUID string) ([]models.Comment, error)
	CountByPostID(postID string) (int64, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment in PostgreSQL
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByUID retrieves a comment by its opaque UID
func (r *PostgresCommentRepository) GetCommentByUID(uid string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Where("uid = ?", uid).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// GetByPostID retrieves the top-level comments of a post
func (r *PostgresCommentRepository) GetByPostID(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postID).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetReplies retrieves the direct replies of a comment
func (r *PostgresCommentRepository) GetReplies(parentUID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("parent_uid = ?", parentUID).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByPostID counts the top-level comments of a post
func (r *PostgresCommentRepository) CountByPostID(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
