package models

import "time"

// Follow represents a single directed FOLLOWS edge between two users.
// "A follows B" stores exactly one row; B's followers and A's following
// are both derived from it.
type Follow struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	FollowerUsername  string    `json:"follower_username" gorm:"size:60;index;uniqueIndex:idx_follower_following"`
	FollowingUsername string    `json:"following_username" gorm:"size:60;index;uniqueIndex:idx_follower_following"`
	CreatedAt         time.Time `json:"created_at"`
}
