package models

import "time"

// ScheduledActivity is a catalog activity bound to an absolute timestamp inside an
// itinerary. Completed is the only field a user mutates after creation.
type ScheduledActivity struct {
	ActivityID string    `bson:"activity_id" json:"activityId"`
	Time       time.Time `bson:"time" json:"time"`
	Completed  bool      `bson:"completed" json:"completed"`
}

// Itinerary is a roadmap's activities bound to dates, trackable for completion.
// The aggregate is created atomically with its full activity snapshot; afterwards only
// per-activity completion flags (and times) change, or the whole aggregate is deleted.
type Itinerary struct {
	ID           string              `bson:"id" json:"id"`
	RoadmapID    string              `bson:"roadmap_id" json:"roadmap_id"`
	OwnerID      string              `bson:"owner_id" json:"owner_id"`
	Title        string              `bson:"title" json:"title"`
	Location     string              `bson:"location,omitempty" json:"location,omitempty"`
	Activities   []ScheduledActivity `bson:"activities" json:"activities"`
	Participants []string            `bson:"participants,omitempty" json:"participants,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}

// ItineraryResponse decorates an itinerary with its derived status and progress.
// Status is recomputed on every read; it is never stored.
type ItineraryResponse struct {
	Itinerary
	Status    string  `json:"status,omitempty"`
	Progress  float64 `json:"progress"`
	TotalDays int     `json:"totalDays"`
}

// CreateItineraryRequest is the direct creation payload: activities already carry
// absolute RFC 3339 timestamps resolved by the client. UserID is set from the
// authenticated session, never from the wire.
type CreateItineraryRequest struct {
	UserID     string `json:"-"`
	RoadmapID  string `json:"roadmapId" binding:"required"`
	Activities []struct {
		ActivityID string    `json:"activityId" binding:"required"`
		Time       time.Time `json:"time" binding:"required"`
	} `json:"activities" binding:"required"`
}

// SlotInput is one day/time assignment in a conversion request.
type SlotInput struct {
	ActivityID string `json:"activityId" binding:"required"`
	Day        int    `json:"day" binding:"required"`
	Time       string `json:"time" binding:"required"` // "HH:MM", 24h
}

// ConvertRoadmapRequest schedules a roadmap's activities over a date range. The server
// resolves each (day, time) slot into an absolute timestamp and validates the result
// before anything is persisted.
type ConvertRoadmapRequest struct {
	UserID    string      `json:"-"`
	StartDate string      `json:"startDate" binding:"required"` // "YYYY-MM-DD"
	EndDate   string      `json:"endDate" binding:"required"`   // "YYYY-MM-DD"
	Location  string      `json:"location"`
	Slots     []SlotInput `json:"slots" binding:"required"`
}

// ActivityPatch updates a single scheduled activity inside an itinerary.
// Nil fields are left untouched.
type ActivityPatch struct {
	ActivityID string     `json:"activityId" binding:"required"`
	Completed  *bool      `json:"completed,omitempty"`
	Time       *time.Time `json:"time,omitempty"`
}

// UpdateItineraryRequest is the batch patch payload for PUT /itineraries/:id.
type UpdateItineraryRequest struct {
	Activities []ActivityPatch `json:"activities" binding:"required"`
}
