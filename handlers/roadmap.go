package handlers

import (
	"net/http"
	"strconv"

	"tourai/models"
	"tourai/services/roadmap"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoadmapHandler exposes roadmap endpoints.
type RoadmapHandler struct {
	Service roadmap.RoadmapService
}

// CreateHandler handles POST /roadmaps.
func (h *RoadmapHandler) CreateHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req models.CreateRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.Create(userID, req)
	if err != nil {
		getLogger(c).Error("Failed to create roadmap", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetHandler handles GET /roadmaps/:id.
func (h *RoadmapHandler) GetHandler(c *gin.Context) {
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

// ListMineHandler handles GET /roadmaps.
func (h *RoadmapHandler) ListMineHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	responses, err := h.Service.ListByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, responses)
}

// ListPublicHandler handles GET /roadmaps/public?page=&size=.
func (h *RoadmapHandler) ListPublicHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	responses, err := h.Service.ListPublic(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateHandler handles PUT /roadmaps/:id.
func (h *RoadmapHandler) UpdateHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req models.UpdateRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.Update(c.Param("id"), userID, req)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteHandler handles DELETE /roadmaps/:id.
func (h *RoadmapHandler) DeleteHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Roadmap deleted"})
}

// AddActivityHandler handles POST /roadmaps/:id/activities/:activityId.
func (h *RoadmapHandler) AddActivityHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.AddActivity(c.Param("id"), userID, c.Param("activityId")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity added"})
}

// RemoveActivityHandler handles DELETE /roadmaps/:id/activities/:activityId.
func (h *RoadmapHandler) RemoveActivityHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.RemoveActivity(c.Param("id"), userID, c.Param("activityId")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity removed"})
}
