package handlers

import (
	"net/http"

	"tourai/models"
	"tourai/services/invite"

	"github.com/gin-gonic/gin"
)

// InviteHandler exposes itinerary invite endpoints.
type InviteHandler struct {
	Service invite.InviteService
}

// CreateHandler handles POST /invites.
func (h *InviteHandler) CreateHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inv, err := h.Service.Create(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// AcceptHandler handles POST /invites/:id/accept.
func (h *InviteHandler) AcceptHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	inv, err := h.Service.Accept(c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// DeclineHandler handles POST /invites/:id/decline.
func (h *InviteHandler) DeclineHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	inv, err := h.Service.Decline(c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}
