package models

import "time"

// Gender values accepted for the profile gender field.
const (
	GenderMasculino = "masculino"
	GenderFemenino  = "femenino"
	GenderOtro      = "otro"
)

// User represents an account node (PostgreSQL). The UID is the opaque
// identifier denormalized into posts, comments, notifications and messages;
// the numeric ID stays internal to the relational store.
type User struct {
	ID           uint       `json:"-" gorm:"primaryKey"`
	UID          string     `json:"uid" gorm:"size:36;uniqueIndex"`
	Username     string     `json:"username" gorm:"size:60;uniqueIndex"`
	Email        string     `json:"email" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-"`
	AvatarURL    string     `json:"avatar_url"`
	CoverURL     string     `json:"cover_url"`
	Gender       string     `json:"gender" gorm:"size:20"`
	Bio          string     `json:"bio" gorm:"size:200"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UserCompact is the public author projection embedded in enriched responses.
type UserCompact struct {
	UID       string `json:"uid"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// ToCompact returns the public projection of the user.
func (u *User) ToCompact() UserCompact {
	return UserCompact{UID: u.UID, Username: u.Username, AvatarURL: u.AvatarURL}
}

// UpdateProfileRequest defines the form body for editing the own profile.
// Avatar and cover arrive as base64 data URIs and are pushed through the
// blob store before the user row is updated.
type UpdateProfileRequest struct {
	Gender    string `json:"gender" form:"gender" validate:"omitempty,oneof=masculino femenino otro"`
	Bio       string `json:"bio" form:"bio"`
	Birthdate string `json:"birthdate" form:"birthdate"`
	Avatar    string `json:"avatar" form:"avatar"`
	Cover     string `json:"cover" form:"cover"`
}
