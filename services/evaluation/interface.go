package evaluation

import (
	evaluationRepo "tourai/database/repository/evaluation"
	itineraryRepo "tourai/database/repository/itinerary"
	"tourai/models"
)

// EvaluationService records ratings of scheduled activities. Only the itinerary's
// owner and participants may evaluate, and only activities that are actually on
// the schedule.
type EvaluationService interface {
	Create(userID string, req models.CreateEvaluationRequest) (*models.Evaluation, error)
	ListForItineraryActivity(itineraryID, activityID string) ([]models.Evaluation, error)
}

// DefaultEvaluationService is the production implementation.
type DefaultEvaluationService struct {
	Repo        evaluationRepo.EvaluationRepository
	Itineraries itineraryRepo.ItineraryRepository
}
