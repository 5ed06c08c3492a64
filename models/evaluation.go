package models

import "time"

// Evaluation is a user's rating of one scheduled activity inside an itinerary.
type Evaluation struct {
	ID          string    `bson:"id" json:"id"`
	ItineraryID string    `bson:"itinerary_id" json:"itineraryId"`
	ActivityID  string    `bson:"activity_id" json:"activityId"`
	UserID      string    `bson:"user_id" json:"userId"`
	Rating      int       `bson:"rating" json:"rating"`
	Comment     string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// CreateEvaluationRequest is the payload for rating an itinerary activity.
type CreateEvaluationRequest struct {
	ItineraryID string `json:"itineraryId" binding:"required"`
	ActivityID  string `json:"activityId" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment"`
}

// ActivityRating aggregates evaluations of a catalog activity.
type ActivityRating struct {
	ActivityID string  `json:"activityId"`
	Average    float64 `json:"average"`
	Count      int     `json:"count"`
}
