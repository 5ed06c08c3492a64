package handlers

import (
	"net/http"

	"tourai/models"
	"tourai/services/activity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActivityHandler exposes catalog activity endpoints.
type ActivityHandler struct {
	Service activity.ActivityService
}

// CreateHandler handles POST /activities.
func (h *ActivityHandler) CreateHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	act, err := h.Service.Create(userID, req)
	if err != nil {
		getLogger(c).Error("Failed to create activity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, act)
}

// GetHandler handles GET /activities/:id.
func (h *ActivityHandler) GetHandler(c *gin.Context) {
	act, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, act)
}

// ListHandler handles GET /activities.
func (h *ActivityHandler) ListHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	activities, err := h.Service.ListVisible(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// UpdateHandler handles PUT /activities/:id.
func (h *ActivityHandler) UpdateHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	act, err := h.Service.Update(c.Param("id"), userID, req)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, act)
}

// DeleteHandler handles DELETE /activities/:id.
func (h *ActivityHandler) DeleteHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}

// RatingHandler handles GET /activities/:id/rating.
func (h *ActivityHandler) RatingHandler(c *gin.Context) {
	rating, err := h.Service.Rating(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rating)
}
