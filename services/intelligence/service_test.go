package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendationsPlainJSON(t *testing.T) {
	raw := `[{"title":"Old Town walk","description":"A day on foot","tags":["walking","history"]}]`
	recs, err := ParseRecommendations(raw)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Old Town walk", recs[0].Title)
	assert.Equal(t, []string{"walking", "history"}, recs[0].Tags)
}

func TestParseRecommendationsStripsCodeFence(t *testing.T) {
	raw := "```json\n[{\"title\":\"Coastal route\",\"description\":\"Beaches\",\"tags\":[]}]\n```"
	recs, err := ParseRecommendations(raw)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Coastal route", recs[0].Title)
}

func TestParseRecommendationsBareFence(t *testing.T) {
	raw := "```\n[{\"title\":\"Food tour\",\"description\":\"Eat everything\",\"tags\":[\"food\"]}]\n```"
	recs, err := ParseRecommendations(raw)
	require.NoError(t, err)
	require.Len(t, recs, 1)
}

func TestParseRecommendationsRejectsGarbage(t *testing.T) {
	_, err := ParseRecommendations("Sorry, I cannot help with that.")
	assert.Error(t, err)
}

func TestRecommendationCacheKeyIsOrderInsensitive(t *testing.T) {
	a := recommendationCacheKey("Lisbon", []string{"food", "art"})
	b := recommendationCacheKey("lisbon", []string{"art", "food"})
	assert.Equal(t, a, b)
}

func TestBuildPromptMentionsInterests(t *testing.T) {
	prompt := buildPrompt("Porto", []string{"wine", "river"})
	assert.Contains(t, prompt, "Porto")
	assert.Contains(t, prompt, "wine, river")
	assert.Contains(t, prompt, "JSON array")
}
