package activity

import (
	activityRepo "tourai/database/repository/activity"
	evaluationRepo "tourai/database/repository/evaluation"
	"tourai/models"
)

// ActivityService manages the activity catalog that roadmaps draw from.
type ActivityService interface {
	Create(creatorID string, req models.CreateActivityRequest) (*models.Activity, error)
	GetByID(id string) (*models.Activity, error)
	ListVisible(userID string) ([]models.Activity, error)
	Update(id, requesterID string, req models.UpdateActivityRequest) (*models.Activity, error)
	Delete(id, requesterID string) error
	// Rating aggregates all evaluations of the activity across itineraries.
	Rating(id string) (*models.ActivityRating, error)
}

// DefaultActivityService is the production implementation.
type DefaultActivityService struct {
	Repo        activityRepo.ActivityRepository
	Evaluations evaluationRepo.EvaluationRepository
}
