package models

import "time"

// Roadmap visibility values.
const (
	VisibilityPublic  = "PUBLIC"
	VisibilityPrivate = "PRIVATE"
)

// Roadmap ("roteiro") is a reusable, unscheduled collection of activities.
// Converting a roadmap binds its activities to absolute dates, producing an Itinerary.
type Roadmap struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Visibility  string    `bson:"visibility" json:"visibility"`
	OwnerID     string    `bson:"owner_id" json:"owner_id"`
	ActivityIDs []string  `bson:"activity_ids,omitempty" json:"-"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// RoadmapResponse is a roadmap with its activities resolved from the catalog.
type RoadmapResponse struct {
	Roadmap
	Activities []Activity `json:"activities"`
}

// CreateRoadmapRequest is the payload for creating a roadmap.
type CreateRoadmapRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Visibility  string   `json:"visibility"`
	Activities  []string `json:"activities"`
}

// UpdateRoadmapRequest carries editable roadmap fields.
type UpdateRoadmapRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Visibility  *string  `json:"visibility,omitempty"`
}
