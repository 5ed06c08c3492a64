package intelligence

import (
	"context"

	"tourai/models"
)

// ContentGenerator abstracts the generative backend so the recommendation logic
// can be tested without network calls.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// IntelligenceService produces AI roadmap recommendations.
type IntelligenceService interface {
	// RecommendRoadmaps suggests roadmap ideas for a destination and interest set.
	RecommendRoadmaps(ctx context.Context, location string, interests []string) ([]models.AIRecommendation, error)
}

// DefaultIntelligenceService is the production implementation.
type DefaultIntelligenceService struct {
	Generator ContentGenerator
}
