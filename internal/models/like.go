package models

import "time"

// PostLike represents a LIKED_POST edge from a user to a post.
type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"size:24;index;uniqueIndex:idx_post_user_like"`
	Username  string    `json:"username" gorm:"size:60;index;uniqueIndex:idx_post_user_like"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike represents a LIKED_COMMENT edge from a user to a comment.
type CommentLike struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CommentUID string    `json:"comment_uid" gorm:"size:36;index;uniqueIndex:idx_comment_user_like"`
	Username   string    `json:"username" gorm:"size:60;index;uniqueIndex:idx_comment_user_like"`
	CreatedAt  time.Time `json:"created_at"`
}
