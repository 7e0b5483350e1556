package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a publication stored in MongoDB. Author fields are a
// snapshot taken at creation time and are not updated on later renames.
type Post struct {
	ID             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Images         []string           `json:"images" bson:"images"`
	Links          []string           `json:"links" bson:"links"`
	Hashtags       []string           `json:"hashtags" bson:"hashtags"`
	AuthorUsername string             `json:"author_username" bson:"author_username"`
	AuthorUID      string             `json:"author_uid" bson:"author_uid"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// UID returns the opaque post identifier used across edges and JSON.
func (p *Post) UID() string {
	return p.ID.Hex()
}

// CreatePostRequest defines the request body for publishing a post.
// Images arrive as base64 data URIs; hashtags are lowercased and stored
// without the leading '#'.
type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Links       []string `json:"links,omitempty" validate:"omitempty,dive,url"`
	Hashtags    []string `json:"hashtags,omitempty"`
}
