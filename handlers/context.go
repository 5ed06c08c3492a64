package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// requesterID extracts the authenticated user ID bound by the auth middleware.
// Aborts with 401 and returns false when the request is unauthenticated.
func requesterID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication"})
		return "", false
	}
	return idStr, true
}
