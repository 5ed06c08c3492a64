package activity

import (
	"fmt"
	"time"

	"tourai/models"

	"github.com/google/uuid"
)

// Create adds an activity to the catalog.
func (s *DefaultActivityService) Create(creatorID string, req models.CreateActivityRequest) (*models.Activity, error) {
	now := time.Now().UTC()
	act := &models.Activity{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		MediaURL:    req.MediaURL,
		Tags:        req.Tags,
		CreatorID:   creatorID,
		Public:      req.Public,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(act); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return act, nil
}

// GetByID retrieves one catalog activity.
func (s *DefaultActivityService) GetByID(id string) (*models.Activity, error) {
	act, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity %s: %w", id, err)
	}
	return act, nil
}

// ListVisible retrieves public activities plus the user's own.
func (s *DefaultActivityService) ListVisible(userID string) ([]models.Activity, error) {
	activities, err := s.Repo.ListVisible(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// Update modifies editable fields. Nil fields are left untouched. Creator only.
func (s *DefaultActivityService) Update(id, requesterID string, req models.UpdateActivityRequest) (*models.Activity, error) {
	act, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity %s: %w", id, err)
	}
	if act.CreatorID != requesterID {
		return nil, fmt.Errorf("only the creator may modify activity %s", id)
	}
	if req.Name != nil {
		act.Name = *req.Name
	}
	if req.Description != nil {
		act.Description = *req.Description
	}
	if req.Location != nil {
		act.Location = *req.Location
	}
	if req.MediaURL != nil {
		act.MediaURL = *req.MediaURL
	}
	if req.Tags != nil {
		act.Tags = req.Tags
	}
	act.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(act); err != nil {
		return nil, fmt.Errorf("failed to update activity %s: %w", id, err)
	}
	return act, nil
}

// Delete removes a catalog activity. Creator only.
func (s *DefaultActivityService) Delete(id, requesterID string) error {
	act, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch activity %s: %w", id, err)
	}
	if act.CreatorID != requesterID {
		return fmt.Errorf("only the creator may delete activity %s", id)
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete activity %s: %w", id, err)
	}
	return nil
}

// Rating aggregates all evaluations of the activity across itineraries.
func (s *DefaultActivityService) Rating(id string) (*models.ActivityRating, error) {
	rating, err := s.Evaluations.RatingForActivity(id)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rating for activity %s: %w", id, err)
	}
	return rating, nil
}
