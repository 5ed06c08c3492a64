package handlers

import (
	"net/http"

	"tourai/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntelligenceHandler exposes AI recommendation endpoints.
type IntelligenceHandler struct {
	Service intelligence.IntelligenceService
}

// RecommendHandler handles POST /ai/recommendations.
func (h *IntelligenceHandler) RecommendHandler(c *gin.Context) {
	if _, ok := requesterID(c); !ok {
		return
	}
	var req struct {
		Location  string   `json:"location" binding:"required"`
		Interests []string `json:"interests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recs, err := h.Service.RecommendRoadmaps(c.Request.Context(), req.Location, req.Interests)
	if err != nil {
		getLogger(c).Error("Recommendation failed", zap.String("location", req.Location), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}
