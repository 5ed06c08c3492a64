package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tourai/models"
	"tourai/services/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItineraryService struct {
	convertErr error
	created    *models.ItineraryResponse
}

func (s *stubItineraryService) Create(req models.CreateItineraryRequest) (*models.ItineraryResponse, error) {
	return s.created, nil
}

func (s *stubItineraryService) ConvertRoadmap(roadmapID string, req models.ConvertRoadmapRequest) (*models.ItineraryResponse, error) {
	if s.convertErr != nil {
		return nil, s.convertErr
	}
	return s.created, nil
}

func (s *stubItineraryService) GetByID(id, requesterID string) (*models.ItineraryResponse, error) {
	return s.created, nil
}

func (s *stubItineraryService) ListByUser(userID string) ([]models.ItineraryResponse, error) {
	return []models.ItineraryResponse{*s.created}, nil
}

func (s *stubItineraryService) UpdateActivities(id, requesterID string, req models.UpdateItineraryRequest) (*models.ItineraryResponse, error) {
	return s.created, nil
}

func (s *stubItineraryService) Delete(id, requesterID string) error {
	return nil
}

func newItineraryRouter(svc *stubItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &ItineraryHandler{Service: svc}
	authed := func(c *gin.Context) { c.Set("userID", "user-1"); c.Next() }
	r.POST("/api/roadmaps/:id/convert", authed, h.ConvertRoadmapHandler)
	r.GET("/api/itineraries/:id", authed, h.GetHandler)
	return r
}

func sampleResponse() *models.ItineraryResponse {
	return &models.ItineraryResponse{
		Itinerary: models.Itinerary{
			ID:        "it-1",
			RoadmapID: "rm-1",
			OwnerID:   "user-1",
			Title:     "Lisbon weekend",
			Activities: []models.ScheduledActivity{
				{ActivityID: "a1", Time: time.Date(2027, 5, 1, 9, 0, 0, 0, time.UTC)},
			},
		},
		Status:    "planned",
		Progress:  0,
		TotalDays: 1,
	}
}

func TestConvertRoadmapHandlerCreated(t *testing.T) {
	router := newItineraryRouter(&stubItineraryService{created: sampleResponse()})

	body := `{"userId":"ignored","startDate":"2027-05-01","endDate":"2027-05-02",` +
		`"slots":[{"activityId":"a1","day":1,"time":"09:00"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/roadmaps/rm-1/convert", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"planned"`)
	assert.Contains(t, w.Body.String(), `"totalDays":1`)
}

func TestConvertRoadmapHandlerScheduleErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"incomplete", &scheduler.IncompleteScheduleError{Missing: []string{"a2"}}},
		{"bad range", &scheduler.InvalidDateRangeError{}},
		{"out of range", &scheduler.SlotOutOfRangeError{ActivityID: "a1", Day: 9, AvailableDays: 2}},
		{"duplicate slot", &scheduler.DuplicateSlotError{Day: 1, ActivityIDs: []string{"a1", "a2"}}},
		{"past date", &scheduler.PastDateError{ActivityID: "a1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newItineraryRouter(&stubItineraryService{convertErr: tc.err})

			body := `{"userId":"u","startDate":"2027-05-01","endDate":"2027-05-02",` +
				`"slots":[{"activityId":"a1","day":1,"time":"09:00"}]}`
			req := httptest.NewRequest(http.MethodPost, "/api/roadmaps/rm-1/convert", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func TestConvertRoadmapHandlerNeedsNoUserIDInPayload(t *testing.T) {
	router := newItineraryRouter(&stubItineraryService{created: sampleResponse()})

	// Ownership comes from the session; the payload carries no user field.
	body := `{"startDate":"2027-05-01","endDate":"2027-05-02",` +
		`"slots":[{"activityId":"a1","day":1,"time":"09:00"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/roadmaps/rm-1/convert", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestConvertRoadmapHandlerRejectsBadPayload(t *testing.T) {
	router := newItineraryRouter(&stubItineraryService{created: sampleResponse()})

	req := httptest.NewRequest(http.MethodPost, "/api/roadmaps/rm-1/convert", strings.NewReader(`{"startDate":"2027-05-01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetItineraryHandlerRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &ItineraryHandler{Service: &stubItineraryService{created: sampleResponse()}}
	r.GET("/api/itineraries/:id", h.GetHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/itineraries/it-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
