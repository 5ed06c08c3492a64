package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"tourai/models"
	"tourai/utils"

	"go.uber.org/zap"
)

const recommendationCacheTTL = 6 * time.Hour

// RecommendRoadmaps suggests roadmap ideas for a destination and interest set.
// Results are cached per (location, interests) since generation is slow and the
// same destination is asked about repeatedly.
func (s *DefaultIntelligenceService) RecommendRoadmaps(ctx context.Context, location string, interests []string) ([]models.AIRecommendation, error) {
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}

	cacheKey := recommendationCacheKey(location, interests)
	cache := utils.GetCacheClient()
	if cached, err := cache.Get(ctx, cacheKey).Result(); err == nil {
		var recs []models.AIRecommendation
		if err := json.Unmarshal([]byte(cached), &recs); err == nil {
			return recs, nil
		}
	}

	raw, err := s.Generator.GenerateContent(ctx, buildPrompt(location, interests))
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	recs, err := ParseRecommendations(raw)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(recs); err == nil {
		if err := cache.Set(ctx, cacheKey, b, recommendationCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("RecommendRoadmaps: failed to cache result", zap.Error(err))
		}
	}
	return recs, nil
}

// ParseRecommendations decodes the model output. The model frequently wraps its
// JSON in a markdown code fence; strip it before decoding.
func ParseRecommendations(raw string) ([]models.AIRecommendation, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var recs []models.AIRecommendation
	if err := json.Unmarshal([]byte(cleaned), &recs); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}
	return recs, nil
}

func buildPrompt(location string, interests []string) string {
	var sb strings.Builder
	sb.WriteString("Suggest up to 5 travel roadmaps for a trip to ")
	sb.WriteString(location)
	sb.WriteString(".")
	if len(interests) > 0 {
		sb.WriteString(" The traveller is interested in: ")
		sb.WriteString(strings.Join(interests, ", "))
		sb.WriteString(".")
	}
	sb.WriteString(" Respond with a JSON array only, each element an object with")
	sb.WriteString(` "title", "description" and "tags" (array of strings) fields.`)
	return sb.String()
}

func recommendationCacheKey(location string, interests []string) string {
	sorted := append([]string(nil), interests...)
	sort.Strings(sorted)
	return "airec:" + strings.ToLower(location) + ":" + strings.ToLower(strings.Join(sorted, ","))
}
