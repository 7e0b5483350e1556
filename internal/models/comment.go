package models

import "time"

// Comment represents a comment node (PostgreSQL). Exactly one of PostID or
// ParentUID is set: PostID for top-level comments, ParentUID for replies.
// Walking ParentUID always terminates at a comment whose PostID is set.
type Comment struct {
	ID             uint      `json:"-" gorm:"primaryKey"`
	UID            string    `json:"uid" gorm:"size:36;uniqueIndex"`
	PostID         string    `json:"post_id,omitempty" gorm:"size:24;index"`
	ParentUID      string    `json:"parent_uid,omitempty" gorm:"size:36;index"`
	Text           string    `json:"text" gorm:"size:500"`
	AuthorUsername string    `json:"author_username" gorm:"size:60;index"`
	AuthorUID      string    `json:"author_uid" gorm:"size:36;index"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for commenting or replying.
// Emptiness is rejected service-side so the form gets its inline message.
type CreateCommentRequest struct {
	Text string `json:"text"`
}
