package roadmap

import (
	activityRepo "tourai/database/repository/activity"
	roadmapRepo "tourai/database/repository/roadmap"
	"tourai/models"
)

// RoadmapService manages reusable activity collections. A roadmap carries no
// dates; scheduling happens when it is converted into an itinerary.
type RoadmapService interface {
	Create(ownerID string, req models.CreateRoadmapRequest) (*models.RoadmapResponse, error)
	GetByID(id, requesterID string) (*models.RoadmapResponse, error)
	ListByOwner(userID string) ([]models.RoadmapResponse, error)
	ListPublic(page, size int) ([]models.RoadmapResponse, error)
	Update(id, requesterID string, req models.UpdateRoadmapRequest) (*models.RoadmapResponse, error)
	Delete(id, requesterID string) error
	AddActivity(roadmapID, requesterID, activityID string) error
	RemoveActivity(roadmapID, requesterID, activityID string) error
}

// DefaultRoadmapService is the production implementation.
type DefaultRoadmapService struct {
	Repo       roadmapRepo.RoadmapRepository
	Activities activityRepo.ActivityRepository
}
