package itineraryRepo

import (
	"time"

	"tourai/models"
)

// ItineraryRepository defines methods for itinerary data access.
type ItineraryRepository interface {
	// GetByID retrieves an itinerary by its unique ID.
	GetByID(id string) (*models.Itinerary, error)
	// ListByUser retrieves itineraries where userID is the owner or a participant.
	ListByUser(userID string) ([]models.Itinerary, error)
	// Create inserts a new itinerary with its full activity snapshot.
	Create(itinerary *models.Itinerary) error
	// SetActivityFields patches completion and/or time of one scheduled activity.
	// Nil fields are left untouched.
	SetActivityFields(itineraryID, activityID string, completed *bool, t *time.Time) error
	// AddParticipant records an accepted invitee on the itinerary.
	AddParticipant(itineraryID, userID string) error
	// Delete removes the whole aggregate.
	Delete(id string) error
}
