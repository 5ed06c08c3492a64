package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tourai/models"
	"tourai/services/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler exposes social feed endpoints.
type PostHandler struct {
	Service post.PostService
}

// CreateHandler handles POST /posts.
func (h *PostHandler) CreateHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.Create(userID, req)
	if err != nil {
		getLogger(c).Error("Failed to create post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListNewHandler handles GET /posts/new?quantity=.
func (h *PostHandler) ListNewHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	quantity, _ := strconv.Atoi(c.DefaultQuery("quantity", "10"))
	responses, err := h.Service.ListNew(userID, quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, responses)
}

// ListOlderHandler handles GET /posts/older?lastPostDate=&quantity=.
// lastPostDate is the RFC 3339 cursor from the previous page.
func (h *PostHandler) ListOlderHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	cursor := c.Query("lastPostDate")
	before, err := time.Parse(time.RFC3339, cursor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lastPostDate cursor"})
		return
	}
	quantity, _ := strconv.Atoi(c.DefaultQuery("quantity", "10"))

	responses, err := h.Service.ListOlder(userID, before, quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteHandler handles DELETE /posts/:id.
func (h *PostHandler) DeleteHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// LikeHandler handles POST /posts/:id/like.
func (h *PostHandler) LikeHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.Like(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Liked"})
}

// UnlikeHandler handles DELETE /posts/:id/like.
func (h *PostHandler) UnlikeHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	if err := h.Service.Unlike(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unliked"})
}

// CommentHandler handles POST /posts/:id/comments.
func (h *PostHandler) CommentHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.Comment(c.Param("id"), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListCommentsHandler handles GET /posts/:id/comments.
func (h *PostHandler) ListCommentsHandler(c *gin.Context) {
	responses, err := h.Service.ListComments(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, responses)
}
