package evaluation

import (
	"fmt"
	"time"

	"tourai/models"

	"github.com/google/uuid"
)

// Create records a rating of one scheduled activity.
func (s *DefaultEvaluationService) Create(userID string, req models.CreateEvaluationRequest) (*models.Evaluation, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", req.Rating)
	}

	it, err := s.Itineraries.GetByID(req.ItineraryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch itinerary %s: %w", req.ItineraryID, err)
	}

	member := it.OwnerID == userID
	for _, p := range it.Participants {
		if p == userID {
			member = true
			break
		}
	}
	if !member {
		return nil, fmt.Errorf("user %s is not part of itinerary %s", userID, req.ItineraryID)
	}

	scheduled := false
	for _, a := range it.Activities {
		if a.ActivityID == req.ActivityID {
			scheduled = true
			break
		}
	}
	if !scheduled {
		return nil, fmt.Errorf("activity %s is not part of itinerary %s", req.ActivityID, req.ItineraryID)
	}

	eval := &models.Evaluation{
		ID:          uuid.NewString(),
		ItineraryID: req.ItineraryID,
		ActivityID:  req.ActivityID,
		UserID:      userID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(eval); err != nil {
		return nil, fmt.Errorf("failed to create evaluation: %w", err)
	}
	return eval, nil
}

// ListForItineraryActivity retrieves evaluations of one scheduled activity.
func (s *DefaultEvaluationService) ListForItineraryActivity(itineraryID, activityID string) ([]models.Evaluation, error) {
	evals, err := s.Repo.ListForItineraryActivity(itineraryID, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return evals, nil
}
