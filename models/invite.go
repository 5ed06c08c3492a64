package models

import "time"

// Invite status values.
const (
	InvitePending  = "PENDING"
	InviteAccepted = "ACCEPTED"
	InviteDeclined = "DECLINED"
)

// Invite asks a user to join an itinerary as a participant.
type Invite struct {
	ID          string    `bson:"id" json:"id"`
	ItineraryID string    `bson:"itinerary_id" json:"itineraryId"`
	UserID      string    `bson:"user_id" json:"userId"`
	InviterID   string    `bson:"inviter_id" json:"inviterId"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	RespondedAt time.Time `bson:"responded_at,omitempty" json:"responded_at,omitempty"`
}

// CreateInviteRequest is the payload for inviting a user to an itinerary.
type CreateInviteRequest struct {
	ItineraryID string `json:"itineraryId" binding:"required"`
	UserID      string `json:"userId" binding:"required"`
}
