package models

import "time"

// Notification types emitted by social actions.
const (
	NotificationFollow       = "follow"
	NotificationLikePost     = "like_post"
	NotificationLikeComment  = "like_comment"
	NotificationCommentPost  = "comment_post"
	NotificationReplyComment = "reply_comment"
)

// Element types referenced by a notification target.
const (
	ElementAccount = "account"
	ElementPost    = "post"
	ElementComment = "comment"
)

// Notification represents a user notification (PostgreSQL). Immutable except
// for the Seen flag, which flips false->true when the recipient reads it.
type Notification struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	UID          string    `json:"uid" gorm:"size:36;uniqueIndex"`
	ToUsername   string    `json:"to_username" gorm:"size:60;index"`
	ToUID        string    `json:"to_uid" gorm:"size:36;index"`
	FromUsername string    `json:"from_username" gorm:"size:60;index"`
	FromUID      string    `json:"from_uid" gorm:"size:36"`
	Type         string    `json:"type" gorm:"size:30;index"`
	TargetUID    string    `json:"target_uid" gorm:"size:36"`
	ElementType  string    `json:"element_type" gorm:"size:20"`
	Seen         bool      `json:"seen" gorm:"default:false;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}
