package handlers

import (
	"net/http"

	"tourai/models"
	"tourai/services/evaluation"

	"github.com/gin-gonic/gin"
)

// EvaluationHandler exposes activity rating endpoints.
type EvaluationHandler struct {
	Service evaluation.EvaluationService
}

// CreateHandler handles POST /evaluations.
func (h *EvaluationHandler) CreateHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req models.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	eval, err := h.Service.Create(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, eval)
}

// ListHandler handles GET /itineraries/:id/activities/:activityId/evaluations.
func (h *EvaluationHandler) ListHandler(c *gin.Context) {
	evals, err := h.Service.ListForItineraryActivity(c.Param("id"), c.Param("activityId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, evals)
}
