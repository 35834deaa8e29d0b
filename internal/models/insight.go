package models

// Idea types assigned by the content generator.
const (
	IdeaTypeTrending        = "trending"
	IdeaTypeHighEngagement  = "high_engagement"
	IdeaTypeQuickWin        = "quick_win"
	IdeaTypeAudienceRequest = "audience_request"
)

// Recommendation types. Every generation pass produces exactly one
// recommendation set covering these three.
const (
	RecTypeAudienceGrowth      = "audience_growth"
	RecTypeContentOptimization = "content_optimization"
	RecTypeAudienceEngagement  = "audience_engagement"
)

type ContentIdea struct {
	ID          int    `json:"id"`
	ChannelID   string `json:"channel_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Potential   string `json:"potential,omitempty"`
	IdeaType    string `json:"idea_type"`
}

type Recommendation struct {
	ID        int    `json:"id"`
	ChannelID string `json:"channel_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Type      string `json:"type"`
}

// GeneratedInsights is one batch from the content generator (LLM or local
// fallback): up to 8 ideas and exactly 3 recommendations.
type GeneratedInsights struct {
	ContentIdeas    []ContentIdea    `json:"content_ideas"`
	Recommendations []Recommendation `json:"recommendations"`
}

func ValidIdeaType(t string) bool {
	switch t {
	case IdeaTypeTrending, IdeaTypeHighEngagement, IdeaTypeQuickWin, IdeaTypeAudienceRequest:
		return true
	}
	return false
}

func ValidRecommendationType(t string) bool {
	switch t {
	case RecTypeAudienceGrowth, RecTypeContentOptimization, RecTypeAudienceEngagement:
		return true
	}
	return false
}
