package models

import "time"

// Activity is a catalog entry: a point of interest or task that roadmaps reference.
// Activities are immutable from the scheduler's point of view.
type Activity struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	MediaURL    string    `bson:"media_url,omitempty" json:"media_url,omitempty"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatorID   string    `bson:"creator_id" json:"creator_id"`
	Public      bool      `bson:"public" json:"public"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// CreateActivityRequest is the payload for adding a catalog activity.
type CreateActivityRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	MediaURL    string   `json:"mediaUrl"`
	Tags        []string `json:"tags"`
	Public      bool     `json:"public"`
}

// UpdateActivityRequest carries editable activity fields.
type UpdateActivityRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Location    *string  `json:"location,omitempty"`
	MediaURL    *string  `json:"mediaUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
