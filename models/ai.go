package models

// AIRecommendation is one roadmap suggestion produced by the recommendation engine.
type AIRecommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
