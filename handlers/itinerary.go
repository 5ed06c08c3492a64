package handlers

import (
	"errors"
	"net/http"

	"tourai/models"
	"tourai/services/itinerary"
	"tourai/services/scheduler"
	"tourai/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItineraryHandler exposes itinerary endpoints, including roadmap conversion.
type ItineraryHandler struct {
	Service itinerary.ItineraryService
}

// CreateHandler handles POST /itineraries.
func (h *ItineraryHandler) CreateHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// The authenticated user always owns the itinerary, whatever the payload says.
	req.UserID = userID

	resp, err := h.Service.Create(req)
	if err != nil {
		logger.Error("Failed to create itinerary", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ConvertRoadmapHandler handles POST /roadmaps/:id/convert.
func (h *ItineraryHandler) ConvertRoadmapHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	roadmapID := c.Param("id")

	var req models.ConvertRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = userID

	resp, err := h.Service.ConvertRoadmap(roadmapID, req)
	if err != nil {
		if status, ok := scheduleErrorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to convert roadmap", zap.String("roadmapId", roadmapID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetHandler handles GET /itineraries/:id.
func (h *ItineraryHandler) GetHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	resp, err := h.Service.GetByID(c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListHandler handles GET /itineraries.
func (h *ItineraryHandler) ListHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	responses, err := h.Service.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateActivitiesHandler handles PUT /itineraries/:id.
func (h *ItineraryHandler) UpdateActivitiesHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.UpdateActivities(c.Param("id"), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteHandler handles DELETE /itineraries/:id.
func (h *ItineraryHandler) DeleteHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Itinerary deleted"})
}

// scheduleErrorStatus maps scheduling validation failures to 422 so clients can
// distinguish a rejected schedule from a malformed request.
func scheduleErrorStatus(err error) (int, bool) {
	var incomplete *scheduler.IncompleteScheduleError
	var badRange *scheduler.InvalidDateRangeError
	var outOfRange *scheduler.SlotOutOfRangeError
	var duplicate *scheduler.DuplicateSlotError
	var past *scheduler.PastDateError
	if errors.As(err, &incomplete) || errors.As(err, &badRange) ||
		errors.As(err, &outOfRange) || errors.As(err, &duplicate) || errors.As(err, &past) {
		return http.StatusUnprocessableEntity, true
	}
	return 0, false
}
