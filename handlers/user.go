package handlers

import (
	"net/http"
	"strconv"

	"tourai/models"
	"tourai/services/user"
	"tourai/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account and social-graph endpoints.
type UserHandler struct {
	Service user.UserService
}

// RegisterHandler handles POST /auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.Register(req)
	if err != nil {
		logger.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateHandler handles POST /auth/login.
func (h *UserHandler) AuthenticateHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		logger.Warn("Authentication failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler handles POST /auth/signout.
func (h *UserHandler) SignOutHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.SignOut(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetMeHandler handles GET /users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	usr, err := h.Service.GetByID(userID)
	if err != nil {
		logger.Error("User not found", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetProfileHandler handles GET /users/:id.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	id := c.Param("id")
	profile, err := h.Service.GetProfile(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateHandler handles PUT /users/me.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req struct {
		Name      *string `json:"name,omitempty"`
		Bio       *string `json:"bio,omitempty"`
		AvatarURL *string `json:"avatarUrl,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usr, err := h.Service.Update(userID, req.Name, req.Bio, req.AvatarURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteHandler handles DELETE /users/me.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// SearchHandler handles GET /users/search?q=&page=&size=.
func (h *UserHandler) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	profiles, err := h.Service.Search(query, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// FollowHandler handles POST /users/:id/follow.
func (h *UserHandler) FollowHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	targetID := c.Param("id")
	if err := h.Service.Follow(userID, targetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Following"})
}

// UnfollowHandler handles DELETE /users/:id/follow.
func (h *UserHandler) UnfollowHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	targetID := c.Param("id")
	if err := h.Service.Unfollow(userID, targetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

// FollowStatsHandler handles GET /users/:id/follow-stats.
func (h *UserHandler) FollowStatsHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	targetID := c.Param("id")
	stats, err := h.Service.FollowStats(targetID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
