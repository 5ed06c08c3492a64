package itinerary

import (
	"fmt"
	"time"

	"tourai/models"
	"tourai/services/scheduler"

	"github.com/google/uuid"
)

// Create persists an itinerary whose activities already carry absolute timestamps.
func (s *DefaultItineraryService) Create(req models.CreateItineraryRequest) (*models.ItineraryResponse, error) {
	roadmap, err := s.Roadmaps.GetByID(req.RoadmapID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roadmap %s: %w", req.RoadmapID, err)
	}
	if !canSchedule(roadmap, req.UserID) {
		return nil, fmt.Errorf("roadmap %s is not accessible", req.RoadmapID)
	}

	activities := make([]models.ScheduledActivity, 0, len(req.Activities))
	ids := make([]string, 0, len(req.Activities))
	for _, a := range req.Activities {
		activities = append(activities, models.ScheduledActivity{
			ActivityID: a.ActivityID,
			Time:       a.Time.UTC(),
		})
		ids = append(ids, a.ActivityID)
	}
	if err := s.verifyCatalog(ids); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	it := &models.Itinerary{
		ID:         uuid.NewString(),
		RoadmapID:  roadmap.ID,
		OwnerID:    req.UserID,
		Title:      roadmap.Title,
		Activities: activities,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(it); err != nil {
		return nil, fmt.Errorf("failed to create itinerary: %w", err)
	}
	return s.toResponse(it), nil
}

// ConvertRoadmap schedules a roadmap's activities over a date range.
func (s *DefaultItineraryService) ConvertRoadmap(roadmapID string, req models.ConvertRoadmapRequest) (*models.ItineraryResponse, error) {
	roadmap, err := s.Roadmaps.GetByID(roadmapID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roadmap %s: %w", roadmapID, err)
	}
	if !canSchedule(roadmap, req.UserID) {
		return nil, fmt.Errorf("roadmap %s is not accessible", roadmapID)
	}

	rng, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	plan := scheduler.NewPlan()
	for _, slot := range req.Slots {
		tod, err := scheduler.ParseTimeOfDay(slot.Time)
		if err != nil {
			return nil, err
		}
		if err := plan.Assign(slot.ActivityID, slot.Day, tod); err != nil {
			return nil, err
		}
	}

	scheduled, err := scheduler.Materialize(plan, roadmap.ActivityIDs, rng, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	it := &models.Itinerary{
		ID:         uuid.NewString(),
		RoadmapID:  roadmap.ID,
		OwnerID:    req.UserID,
		Title:      roadmap.Title,
		Location:   req.Location,
		Activities: scheduled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(it); err != nil {
		return nil, fmt.Errorf("failed to create itinerary: %w", err)
	}
	return s.toResponse(it), nil
}

// GetByID retrieves one itinerary with its derived status.
func (s *DefaultItineraryService) GetByID(id, requesterID string) (*models.ItineraryResponse, error) {
	it, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch itinerary %s: %w", id, err)
	}
	if !canView(it, requesterID) {
		return nil, fmt.Errorf("itinerary %s is not accessible", id)
	}
	return s.toResponse(it), nil
}

// ListByUser retrieves the itineraries the user owns or participates in.
func (s *DefaultItineraryService) ListByUser(userID string) ([]models.ItineraryResponse, error) {
	its, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	responses := make([]models.ItineraryResponse, 0, len(its))
	for i := range its {
		responses = append(responses, *s.toResponse(&its[i]))
	}
	return responses, nil
}

// UpdateActivities patches completion flags and times of scheduled activities.
func (s *DefaultItineraryService) UpdateActivities(id, requesterID string, req models.UpdateItineraryRequest) (*models.ItineraryResponse, error) {
	it, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch itinerary %s: %w", id, err)
	}
	if !canView(it, requesterID) {
		return nil, fmt.Errorf("itinerary %s is not accessible", id)
	}

	known := make(map[string]bool, len(it.Activities))
	for _, a := range it.Activities {
		known[a.ActivityID] = true
	}
	for _, patch := range req.Activities {
		if !known[patch.ActivityID] {
			return nil, fmt.Errorf("activity %s is not part of itinerary %s", patch.ActivityID, id)
		}
	}

	for _, patch := range req.Activities {
		var t *time.Time
		if patch.Time != nil {
			utc := patch.Time.UTC()
			t = &utc
		}
		if err := s.Repo.SetActivityFields(id, patch.ActivityID, patch.Completed, t); err != nil {
			return nil, fmt.Errorf("failed to patch activity %s: %w", patch.ActivityID, err)
		}
	}

	updated, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload itinerary %s: %w", id, err)
	}
	return s.toResponse(updated), nil
}

// Delete removes the whole aggregate. Owner only.
func (s *DefaultItineraryService) Delete(id, requesterID string) error {
	it, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch itinerary %s: %w", id, err)
	}
	if it.OwnerID != requesterID {
		return fmt.Errorf("only the owner may delete itinerary %s", id)
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete itinerary %s: %w", id, err)
	}
	return nil
}

func (s *DefaultItineraryService) verifyCatalog(ids []string) error {
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

func (s *DefaultItineraryService) toResponse(it *models.Itinerary) *models.ItineraryResponse {
	summary := scheduler.Summarize(it.Activities, time.Now().UTC())
	return &models.ItineraryResponse{
		Itinerary: *it,
		Status:    string(summary.Status),
		Progress:  summary.Progress,
		TotalDays: summary.TotalDays,
	}
}

// canSchedule mirrors roadmap visibility: a private roadmap can only be turned
// into an itinerary by its owner.
func canSchedule(rm *models.Roadmap, userID string) bool {
	return rm.Visibility == models.VisibilityPublic || rm.OwnerID == userID
}

func canView(it *models.Itinerary, userID string) bool {
	if it.OwnerID == userID {
		return true
	}
	for _, p := range it.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

func parseDateRange(start, end string) (scheduler.DateRange, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return scheduler.DateRange{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return scheduler.DateRange{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return scheduler.DateRange{Start: s, End: e}, nil
}
