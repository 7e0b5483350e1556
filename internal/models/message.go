package models

import "time"

// Message represents a direct 1:1 message (PostgreSQL). At least one of Text
// or ImageURL is present. Immutable except for the Seen flag.
type Message struct {
	ID               uint      `json:"-" gorm:"primaryKey"`
	UID              string    `json:"uid" gorm:"size:36;uniqueIndex"`
	SenderUsername   string    `json:"sender_username" gorm:"size:60;index"`
	SenderUID        string    `json:"sender_uid" gorm:"size:36"`
	ReceiverUsername string    `json:"receiver_username" gorm:"size:60;index"`
	ReceiverUID      string    `json:"receiver_uid" gorm:"size:36"`
	Text             string    `json:"text" gorm:"size:2000"`
	ImageURL         string    `json:"image_url"`
	Seen             bool      `json:"seen" gorm:"default:false;index"`
	CreatedAt        time.Time `json:"created_at" gorm:"index"`
}

// SendMessageRequest defines the request body for sending a chat message.
// Image arrives as a base64 data URI and is stored through the blob store.
type SendMessageRequest struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}
