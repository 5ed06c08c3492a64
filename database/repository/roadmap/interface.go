package roadmapRepo

import "tourai/models"

// RoadmapRepository defines methods for roadmap data access.
type RoadmapRepository interface {
	// GetByID retrieves a roadmap by its unique ID.
	GetByID(id string) (*models.Roadmap, error)
	// ListByOwner retrieves all roadmaps owned by userID.
	ListByOwner(userID string) ([]models.Roadmap, error)
	// ListPublic retrieves public roadmaps, paginated.
	ListPublic(page, size int) ([]models.Roadmap, error)
	// Create inserts a new roadmap record.
	Create(roadmap *models.Roadmap) error
	// Update modifies an existing roadmap record.
	Update(roadmap *models.Roadmap) error
	// Delete removes a roadmap record by its ID.
	Delete(id string) error
	// AddActivity associates a catalog activity with the roadmap.
	AddActivity(roadmapID, activityID string) error
	// RemoveActivity dissociates a catalog activity from the roadmap.
	RemoveActivity(roadmapID, activityID string) error
}
