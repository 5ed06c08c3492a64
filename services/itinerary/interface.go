package itinerary

import (
	activityRepo "tourai/database/repository/activity"
	itineraryRepo "tourai/database/repository/itinerary"
	roadmapRepo "tourai/database/repository/roadmap"
	"tourai/models"
)

// ItineraryService manages dated itineraries. Creation is atomic: the full
// activity snapshot is validated and persisted in one step, and afterwards only
// per-activity completion flags and times change.
type ItineraryService interface {
	// Create persists an itinerary whose activities already carry absolute timestamps.
	Create(req models.CreateItineraryRequest) (*models.ItineraryResponse, error)
	// ConvertRoadmap schedules a roadmap's activities over a date range. Every
	// activity must be assigned a (day, time) slot; the schedule is validated
	// before anything is persisted.
	ConvertRoadmap(roadmapID string, req models.ConvertRoadmapRequest) (*models.ItineraryResponse, error)
	// GetByID retrieves one itinerary with its derived status. Restricted to the
	// owner and participants.
	GetByID(id, requesterID string) (*models.ItineraryResponse, error)
	// ListByUser retrieves the itineraries the user owns or participates in.
	ListByUser(userID string) ([]models.ItineraryResponse, error)
	// UpdateActivities patches completion flags and times of scheduled activities.
	UpdateActivities(id, requesterID string, req models.UpdateItineraryRequest) (*models.ItineraryResponse, error)
	// Delete removes the whole aggregate. Owner only.
	Delete(id, requesterID string) error
}

// DefaultItineraryService is the production implementation.
type DefaultItineraryService struct {
	Repo       itineraryRepo.ItineraryRepository
	Roadmaps   roadmapRepo.RoadmapRepository
	Activities activityRepo.ActivityRepository
}
