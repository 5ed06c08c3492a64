package handlers

import (
	"net/http"
	"strconv"

	"tourai/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the polling endpoints for in-app notifications.
type NotificationHandler struct {
	Service notification.NotificationService
}

// RecentHandler handles GET /notifications/recent?page=&size=&type=.
func (h *NotificationHandler) RecentHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	typeFilter := c.Query("type")

	responses, err := h.Service.Recent(userID, page, size, typeFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, responses)
}

// MarkReadHandler handles PATCH /notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.MarkRead(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// MarkActionCompletedHandler handles PATCH /notifications/:id/action.
func (h *NotificationHandler) MarkActionCompletedHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.MarkActionCompleted(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Action completed"})
}
