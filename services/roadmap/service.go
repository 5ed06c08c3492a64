package roadmap

import (
	"fmt"
	"time"

	"tourai/models"

	"github.com/google/uuid"
)

// Create persists a new roadmap owned by ownerID.
func (s *DefaultRoadmapService) Create(ownerID string, req models.CreateRoadmapRequest) (*models.RoadmapResponse, error) {
	visibility := req.Visibility
	switch visibility {
	case "":
		visibility = models.VisibilityPrivate
	case models.VisibilityPublic, models.VisibilityPrivate:
	default:
		return nil, fmt.Errorf("invalid visibility %q", req.Visibility)
	}

	if len(req.Activities) > 0 {
		if err := s.verifyCatalog(req.Activities); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	rm := &models.Roadmap{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Visibility:  visibility,
		OwnerID:     ownerID,
		ActivityIDs: req.Activities,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(rm); err != nil {
		return nil, fmt.Errorf("failed to create roadmap: %w", err)
	}
	return s.toResponse(rm)
}

// GetByID retrieves a roadmap with its activities resolved. Private roadmaps are
// visible to their owner only.
func (s *DefaultRoadmapService) GetByID(id, requesterID string) (*models.RoadmapResponse, error) {
	rm, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roadmap %s: %w", id, err)
	}
	if rm.Visibility != models.VisibilityPublic && rm.OwnerID != requesterID {
		return nil, fmt.Errorf("roadmap %s is not accessible", id)
	}
	return s.toResponse(rm)
}

// ListByOwner retrieves all of the user's roadmaps.
func (s *DefaultRoadmapService) ListByOwner(userID string) ([]models.RoadmapResponse, error) {
	roadmaps, err := s.Repo.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}
	return s.toResponses(roadmaps)
}

// ListPublic retrieves public roadmaps for discovery, paginated.
func (s *DefaultRoadmapService) ListPublic(page, size int) ([]models.RoadmapResponse, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	roadmaps, err := s.Repo.ListPublic(page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list public roadmaps: %w", err)
	}
	return s.toResponses(roadmaps)
}

// Update modifies editable fields. Nil fields are left untouched. Owner only.
func (s *DefaultRoadmapService) Update(id, requesterID string, req models.UpdateRoadmapRequest) (*models.RoadmapResponse, error) {
	rm, err := s.ownedRoadmap(id, requesterID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		rm.Title = *req.Title
	}
	if req.Description != nil {
		rm.Description = *req.Description
	}
	if req.Tags != nil {
		rm.Tags = req.Tags
	}
	if req.Visibility != nil {
		if *req.Visibility != models.VisibilityPublic && *req.Visibility != models.VisibilityPrivate {
			return nil, fmt.Errorf("invalid visibility %q", *req.Visibility)
		}
		rm.Visibility = *req.Visibility
	}
	rm.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(rm); err != nil {
		return nil, fmt.Errorf("failed to update roadmap %s: %w", id, err)
	}
	return s.toResponse(rm)
}

// Delete removes a roadmap. Owner only.
func (s *DefaultRoadmapService) Delete(id, requesterID string) error {
	if _, err := s.ownedRoadmap(id, requesterID); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete roadmap %s: %w", id, err)
	}
	return nil
}

// AddActivity associates a catalog activity with the roadmap. Owner only.
func (s *DefaultRoadmapService) AddActivity(roadmapID, requesterID, activityID string) error {
	if _, err := s.ownedRoadmap(roadmapID, requesterID); err != nil {
		return err
	}
	if _, err := s.Activities.GetByID(activityID); err != nil {
		return fmt.Errorf("failed to fetch activity %s: %w", activityID, err)
	}
	if err := s.Repo.AddActivity(roadmapID, activityID); err != nil {
		return fmt.Errorf("failed to add activity to roadmap %s: %w", roadmapID, err)
	}
	return nil
}

// RemoveActivity dissociates a catalog activity from the roadmap. Owner only.
func (s *DefaultRoadmapService) RemoveActivity(roadmapID, requesterID, activityID string) error {
	if _, err := s.ownedRoadmap(roadmapID, requesterID); err != nil {
		return err
	}
	if err := s.Repo.RemoveActivity(roadmapID, activityID); err != nil {
		return fmt.Errorf("failed to remove activity from roadmap %s: %w", roadmapID, err)
	}
	return nil
}

func (s *DefaultRoadmapService) ownedRoadmap(id, requesterID string) (*models.Roadmap, error) {
	rm, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roadmap %s: %w", id, err)
	}
	if rm.OwnerID != requesterID {
		return nil, fmt.Errorf("only the owner may modify roadmap %s", id)
	}
	return rm, nil
}

func (s *DefaultRoadmapService) verifyCatalog(ids []string) error {
	found, err := s.Activities.GetManyByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to resolve activities: %w", err)
	}
	if len(found) != len(ids) {
		present := make(map[string]bool, len(found))
		for _, a := range found {
			present[a.ID] = true
		}
		for _, id := range ids {
			if !present[id] {
				return fmt.Errorf("unknown activity %s", id)
			}
		}
	}
	return nil
}

func (s *DefaultRoadmapService) toResponse(rm *models.Roadmap) (*models.RoadmapResponse, error) {
	activities, err := s.Activities.GetManyByIDs(rm.ActivityIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve roadmap activities: %w", err)
	}
	return &models.RoadmapResponse{Roadmap: *rm, Activities: activities}, nil
}

func (s *DefaultRoadmapService) toResponses(roadmaps []models.Roadmap) ([]models.RoadmapResponse, error) {
	responses := make([]models.RoadmapResponse, 0, len(roadmaps))
	for i := range roadmaps {
		resp, err := s.toResponse(&roadmaps[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}
