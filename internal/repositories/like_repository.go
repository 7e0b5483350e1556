package repositories

import (
	"github.com/socialweb-app/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for a liked_by edge set. Posts and
// comments each get their own implementation; the toggle logic is identical.
// AddLike and RemoveLike are idempotent by value: inserting an existing edge
// or deleting a missing one is a no-op, so concurrent toggles never error.
type LikeRepository interface {
	AddLike(targetID, username string) error
	RemoveLike(targetID, username string) error
	HasLike(targetID, username string) (bool, error)
	CountLikes(targetID string) (int64, error)
}

// PostgresPostLikeRepository implements LikeRepository over post likes
type PostgresPostLikeRepository struct {
	db *gorm.DB
}

// NewPostgresPostLikeRepository creates a new PostgresPostLikeRepository
func NewPostgresPostLikeRepository(db *gorm.DB) *PostgresPostLikeRepository {
	return &PostgresPostLikeRepository{db: db}
}

func (r *PostgresPostLikeRepository) AddLike(postID, username string) error {
	like := models.PostLike{PostID: postID, Username: username}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
}

func (r *PostgresPostLikeRepository) RemoveLike(postID, username string) error {
	return r.db.Where("post_id = ? AND username = ?", postID, username).
		Delete(&models.PostLike{}).Error
}

func (r *PostgresPostLikeRepository) HasLike(postID, username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.PostLike{}).
		Where("post_id = ? AND username = ?", postID, username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresPostLikeRepository) CountLikes(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// PostgresCommentLikeRepository implements LikeRepository over comment likes
type PostgresCommentLikeRepository struct {
	db *gorm.DB
}

// NewPostgresCommentLikeRepository creates a new PostgresCommentLikeRepository
func NewPostgresCommentLikeRepository(db *gorm.DB) *PostgresCommentLikeRepository {
	return &PostgresCommentLikeRepository{db: db}
}

func (r *PostgresCommentLikeRepository) AddLike(commentUID, username string) error {
	like := models.CommentLike{CommentUID: commentUID, Username: username}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
}

func (r *PostgresCommentLikeRepository) RemoveLike(commentUID, username string) error {
	return r.db.Where("comment_uid = ? AND username = ?", commentUID, username).
		Delete(&models.CommentLike{}).Error
}

func (r *PostgresCommentLikeRepository) HasLike(commentUID, username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.CommentLike{}).
		Where("comment_uid = ? AND username = ?", commentUID, username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresCommentLikeRepository) CountLikes(commentUID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.CommentLike{}).Where("comment_uid = ?", commentUID).Count(&count).Error
	return count, err
}
