package evaluationRepo

import "tourai/models"

// EvaluationRepository defines methods for evaluation data access.
type EvaluationRepository interface {
	// Create inserts a new evaluation record.
	Create(evaluation *models.Evaluation) error
	// ListForItineraryActivity retrieves evaluations of one scheduled activity.
	ListForItineraryActivity(itineraryID, activityID string) ([]models.Evaluation, error)
	// RatingForActivity aggregates all evaluations of a catalog activity.
	RatingForActivity(activityID string) (*models.ActivityRating, error)
}
