package repositories

import (
	"github.com/socialweb-app/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for FOLLOWS edge operations.
// CreateFollow and DeleteFollow are idempotent by value.
type FollowRepository interface {
	CreateFollow(follower, following string) error
	DeleteFollow(follower, following string) error
	IsFollowing(follower, following string) (bool, error)
	GetFollowing(username string) ([]string, error)
	GetFollowers(username string) ([]string, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) CreateFollow(follower, following string) error {
	follow := models.Follow{FollowerUsername: follower, FollowingUsername: following}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
}

func (r *PostgresFollowRepository) DeleteFollow(follower, following string) error {
	return r.db.Where("follower_username = ? AND following_username = ?", follower, following).
		Delete(&models.Follow{}).Error
}

func (r *PostgresFollowRepository) IsFollowing(follower, following string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_username = ? AND following_username = ?", follower, following).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowing returns the usernames the user follows, in edge-creation order
func (r *PostgresFollowRepository) GetFollowing(username string) ([]string, error) {
	var usernames []string
	err := r.db.Model(&models.Follow{}).Where("follower_username = ?", username).
		Order("id ASC").Pluck("following_username", &usernames).Error
	return usernames, err
}

// GetFollowers returns the usernames following the user, in edge-creation order
func (r *PostgresFollowRepository) GetFollowers(username string) ([]string, error) {
	var usernames []string
	err := r.db.Model(&models.Follow{}).Where("following_username = ?", username).
		Order("id ASC").Pluck("follower_username", &usernames).Error
	return usernames, err
}
