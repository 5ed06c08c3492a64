package models

import "time"

// Notification types.
const (
	NotificationFollow     = "FOLLOW"
	NotificationInvitation = "ROADMAP_INVITATION"
	NotificationLike       = "LIKE"
	NotificationComment    = "COMMENT"
)

// Notification is an in-app event delivered to a user. The client polls
// /notifications/recent; there is no push channel.
type Notification struct {
	ID              string    `bson:"id" json:"id"`
	Type            string    `bson:"type" json:"type"`
	SourceID        string    `bson:"source_id" json:"sourceId"`
	DestinationID   string    `bson:"destination_id" json:"destinationId"`
	EntityID        string    `bson:"entity_id,omitempty" json:"entityId,omitempty"`
	Payload         string    `bson:"payload,omitempty" json:"payload,omitempty"`
	Received        bool      `bson:"received" json:"received"`
	ActionCompleted bool      `bson:"action_completed" json:"actionCompleted"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

// NotificationResponse is a notification joined with its source user.
type NotificationResponse struct {
	Notification
	Source PublicProfile `json:"source"`
}
