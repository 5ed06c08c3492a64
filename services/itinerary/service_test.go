package itinerary

import (
	"testing"
	"time"

	"tourai/models"
	"tourai/services/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItineraryRepo struct {
	byID map[string]*models.Itinerary
}

func (r *stubItineraryRepo) GetByID(id string) (*models.Itinerary, error) {
	it := r.byID[id]
	if it == nil {
		return nil, assert.AnError
	}
	return it, nil
}

func (r *stubItineraryRepo) ListByUser(userID string) ([]models.Itinerary, error) {
	var out []models.Itinerary
	for _, it := range r.byID {
		if it.OwnerID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *stubItineraryRepo) Create(it *models.Itinerary) error {
	if r.byID == nil {
		r.byID = make(map[string]*models.Itinerary)
	}
	r.byID[it.ID] = it
	return nil
}

func (r *stubItineraryRepo) SetActivityFields(itineraryID, activityID string, completed *bool, t *time.Time) error {
	it := r.byID[itineraryID]
	for i := range it.Activities {
		if it.Activities[i].ActivityID == activityID {
			if completed != nil {
				it.Activities[i].Completed = *completed
			}
			if t != nil {
				it.Activities[i].Time = *t
			}
		}
	}
	return nil
}

func (r *stubItineraryRepo) AddParticipant(itineraryID, userID string) error {
	it := r.byID[itineraryID]
	it.Participants = append(it.Participants, userID)
	return nil
}

func (r *stubItineraryRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type stubRoadmapRepo struct {
	roadmap *models.Roadmap
}

func (r *stubRoadmapRepo) GetByID(id string) (*models.Roadmap, error) {
	if r.roadmap == nil || r.roadmap.ID != id {
		return nil, assert.AnError
	}
	return r.roadmap, nil
}
func (r *stubRoadmapRepo) ListByOwner(userID string) ([]models.Roadmap, error)    { return nil, nil }
func (r *stubRoadmapRepo) ListPublic(page, size int) ([]models.Roadmap, error)    { return nil, nil }
func (r *stubRoadmapRepo) Create(rm *models.Roadmap) error                        { return nil }
func (r *stubRoadmapRepo) Update(rm *models.Roadmap) error                        { return nil }
func (r *stubRoadmapRepo) Delete(id string) error                                 { return nil }
func (r *stubRoadmapRepo) AddActivity(roadmapID, activityID string) error         { return nil }
func (r *stubRoadmapRepo) RemoveActivity(roadmapID, activityID string) error      { return nil }

type stubActivityRepo struct {
	activities map[string]models.Activity
}

func (r *stubActivityRepo) GetByID(id string) (*models.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, assert.AnError
	}
	return &a, nil
}

func (r *stubActivityRepo) GetManyByIDs(ids []string) ([]models.Activity, error) {
	var out []models.Activity
	for _, id := range ids {
		if a, ok := r.activities[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubActivityRepo) ListVisible(userID string) ([]models.Activity, error) { return nil, nil }
func (r *stubActivityRepo) Create(a *models.Activity) error                      { return nil }
func (r *stubActivityRepo) Update(a *models.Activity) error                      { return nil }
func (r *stubActivityRepo) Delete(id string) error                               { return nil }

func newService() (*DefaultItineraryService, *stubItineraryRepo) {
	repo := &stubItineraryRepo{byID: make(map[string]*models.Itinerary)}
	svc := &DefaultItineraryService{
		Repo: repo,
		Roadmaps: &stubRoadmapRepo{roadmap: &models.Roadmap{
			ID:          "rm-1",
			Title:       "Lisbon weekend",
			OwnerID:     "user-1",
			Visibility:  models.VisibilityPrivate,
			ActivityIDs: []string{"a1", "a2"},
		}},
		Activities: &stubActivityRepo{activities: map[string]models.Activity{
			"a1": {ID: "a1", Name: "Castle"},
			"a2": {ID: "a2", Name: "Tram ride"},
		}},
	}
	return svc, repo
}

func TestConvertRoadmapProducesOrderedSchedule(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.ConvertRoadmap("rm-1", models.ConvertRoadmapRequest{
		UserID:    "user-1",
		StartDate: "2100-06-01",
		EndDate:   "2100-06-03",
		Location:  "Lisbon",
		Slots: []models.SlotInput{
			{ActivityID: "a2", Day: 2, Time: "10:00"},
			{ActivityID: "a1", Day: 1, Time: "14:30"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 2)

	// Day 1 comes first regardless of slot submission order.
	assert.Equal(t, "a1", resp.Activities[0].ActivityID)
	assert.Equal(t, time.Date(2100, 6, 1, 14, 30, 0, 0, time.UTC), resp.Activities[0].Time)
	assert.Equal(t, "a2", resp.Activities[1].ActivityID)
	assert.Equal(t, time.Date(2100, 6, 2, 10, 0, 0, 0, time.UTC), resp.Activities[1].Time)

	assert.Equal(t, "planned", resp.Status)
	assert.Equal(t, 2, resp.TotalDays)
	assert.Equal(t, "Lisbon weekend", resp.Title)
}

func TestConvertRoadmapRejectsMissingSlot(t *testing.T) {
	svc, repo := newService()

	_, err := svc.ConvertRoadmap("rm-1", models.ConvertRoadmapRequest{
		UserID:    "user-1",
		StartDate: "2100-06-01",
		EndDate:   "2100-06-03",
		Slots:     []models.SlotInput{{ActivityID: "a1", Day: 1, Time: "09:00"}},
	})
	var incomplete *scheduler.IncompleteScheduleError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"a2"}, incomplete.Missing)
	assert.Empty(t, repo.byID, "nothing may be persisted on a rejected schedule")
}

func TestConvertRoadmapRejectsCollidingSlots(t *testing.T) {
	svc, repo := newService()

	_, err := svc.ConvertRoadmap("rm-1", models.ConvertRoadmapRequest{
		UserID:    "user-1",
		StartDate: "2100-06-01",
		EndDate:   "2100-06-03",
		Slots: []models.SlotInput{
			{ActivityID: "a1", Day: 1, Time: "09:00"},
			{ActivityID: "a2", Day: 1, Time: "09:00"},
		},
	})
	var duplicate *scheduler.DuplicateSlotError
	require.ErrorAs(t, err, &duplicate)
	assert.Empty(t, repo.byID)
}

func TestConvertRoadmapRejectsPrivateRoadmapForNonOwner(t *testing.T) {
	svc, repo := newService()

	_, err := svc.ConvertRoadmap("rm-1", models.ConvertRoadmapRequest{
		UserID:    "intruder",
		StartDate: "2100-06-01",
		EndDate:   "2100-06-03",
		Slots: []models.SlotInput{
			{ActivityID: "a1", Day: 1, Time: "09:00"},
			{ActivityID: "a2", Day: 2, Time: "10:00"},
		},
	})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "Lisbon weekend", "a rejected conversion must not leak the roadmap")
	assert.Empty(t, repo.byID)
}

func TestConvertRoadmapAllowsPublicRoadmapForAnyUser(t *testing.T) {
	svc, repo := newService()
	svc.Roadmaps.(*stubRoadmapRepo).roadmap.Visibility = models.VisibilityPublic

	resp, err := svc.ConvertRoadmap("rm-1", models.ConvertRoadmapRequest{
		UserID:    "user-2",
		StartDate: "2100-06-01",
		EndDate:   "2100-06-03",
		Slots: []models.SlotInput{
			{ActivityID: "a1", Day: 1, Time: "09:00"},
			{ActivityID: "a2", Day: 2, Time: "10:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "user-2", resp.OwnerID)
	assert.Len(t, repo.byID, 1)
}

func TestCreateRejectsPrivateRoadmapForNonOwner(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Create(models.CreateItineraryRequest{UserID: "intruder", RoadmapID: "rm-1"})
	require.Error(t, err)
	assert.Empty(t, repo.byID)
}

func TestUpdateActivitiesTogglesCompletion(t *testing.T) {
	svc, repo := newService()
	repo.byID["it-1"] = &models.Itinerary{
		ID:      "it-1",
		OwnerID: "user-1",
		Activities: []models.ScheduledActivity{
			{ActivityID: "a1", Time: time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)},
			{ActivityID: "a2", Time: time.Date(2020, 1, 2, 9, 0, 0, 0, time.UTC)},
		},
	}

	done := true
	resp, err := svc.UpdateActivities("it-1", "user-1", models.UpdateItineraryRequest{
		Activities: []models.ActivityPatch{{ActivityID: "a1", Completed: &done}},
	})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", resp.Status)
	assert.InDelta(t, 50.0, resp.Progress, 0.01)
}

func TestUpdateActivitiesRejectsUnknownActivity(t *testing.T) {
	svc, repo := newService()
	repo.byID["it-1"] = &models.Itinerary{
		ID:         "it-1",
		OwnerID:    "user-1",
		Activities: []models.ScheduledActivity{{ActivityID: "a1"}},
	}

	done := true
	_, err := svc.UpdateActivities("it-1", "user-1", models.UpdateItineraryRequest{
		Activities: []models.ActivityPatch{{ActivityID: "nope", Completed: &done}},
	})
	assert.Error(t, err)
	assert.False(t, repo.byID["it-1"].Activities[0].Completed, "no partial application on rejected patch")
}

func TestDeleteIsOwnerOnly(t *testing.T) {
	svc, repo := newService()
	repo.byID["it-1"] = &models.Itinerary{ID: "it-1", OwnerID: "user-1"}

	assert.Error(t, svc.Delete("it-1", "intruder"))
	require.NoError(t, svc.Delete("it-1", "user-1"))
	assert.Empty(t, repo.byID)
}
