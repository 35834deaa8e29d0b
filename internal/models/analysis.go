package models

import "fmt"

// ChannelAnalysis is the joined read model served to the frontend: channel
// header, analytics (zeroed defaults when not yet synthesized), recent
// videos, category breakdown, content ideas and recommendations.
type ChannelAnalysis struct {
	Channel         ChannelSummary          `json:"channel"`
	Analytics       AnalyticsSummary        `json:"analytics"`
	TopVideos       []VideoSummary          `json:"top_videos"`
	Categories      []CategoryWeight        `json:"categories"`
	ContentIdeas    []IdeaSummary           `json:"content_ideas"`
	Recommendations []RecommendationSummary `json:"recommendations"`
}

type ChannelSummary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	CustomURL       string `json:"custom_url,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	SubscriberCount int64  `json:"subscriber_count,omitempty"`
	VideoCount      int64  `json:"video_count,omitempty"`
	ViewCount       int64  `json:"view_count,omitempty"`
	JoinDate        string `json:"join_date,omitempty"`
}

type AnalyticsSummary struct {
	AvgViews             int64  `json:"avg_views"`
	EngagementRate       string `json:"engagement_rate"`
	NewSubscribers       int64  `json:"new_subscribers"`
	AvgViewsChange       int64  `json:"avg_views_change"`
	EngagementRateChange string `json:"engagement_rate_change"`
	NewSubscribersChange int64  `json:"new_subscribers_change"`
}

type VideoSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	ViewCount    int64  `json:"view_count,omitempty"`
	LikeCount    int64  `json:"like_count,omitempty"`
}

type IdeaSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Potential   string `json:"potential,omitempty"`
	IdeaType    string `json:"idea_type"`
}

type RecommendationSummary struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// Validate checks the read model against its schema before it leaves the
// API. Returns a map of violated field paths to messages, or nil when the
// model is well formed.
func (a *ChannelAnalysis) Validate() map[string]string {
	fields := map[string]string{}

	if a.Channel.ID == "" {
		fields["channel.id"] = "channel ID is required"
	}
	if a.Channel.Title == "" {
		fields["channel.title"] = "channel title is required"
	}

	for i, v := range a.TopVideos {
		if v.ID == "" {
			fields[fmt.Sprintf("top_videos[%d].id", i)] = "video ID is required"
		}
		if v.Title == "" {
			fields[fmt.Sprintf("top_videos[%d].title", i)] = "video title is required"
		}
	}

	for i, c := range a.Categories {
		if c.Name == "" {
			fields[fmt.Sprintf("categories[%d].name", i)] = "category name is required"
		}
		if c.Percentage < 0 || c.Percentage > 100 {
			fields[fmt.Sprintf("categories[%d].percentage", i)] = "percentage must be between 0 and 100"
		}
	}

	for i, idea := range a.ContentIdeas {
		if idea.Title == "" {
			fields[fmt.Sprintf("content_ideas[%d].title", i)] = "idea title is required"
		}
		if idea.Description == "" {
			fields[fmt.Sprintf("content_ideas[%d].description", i)] = "idea description is required"
		}
		if !ValidIdeaType(idea.IdeaType) {
			fields[fmt.Sprintf("content_ideas[%d].idea_type", i)] = "unknown idea type " + idea.IdeaType
		}
	}

	for i, rec := range a.Recommendations {
		if rec.Title == "" {
			fields[fmt.Sprintf("recommendations[%d].title", i)] = "recommendation title is required"
		}
		if rec.Content == "" {
			fields[fmt.Sprintf("recommendations[%d].content", i)] = "recommendation content is required"
		}
		if !ValidRecommendationType(rec.Type) {
			fields[fmt.Sprintf("recommendations[%d].type", i)] = "unknown recommendation type " + rec.Type
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
