package models

// Channel is a YouTube channel as stored after ingestion. ChannelID is the
// external YouTube identifier and the foreign key for every other entity.
type Channel struct {
	ID              int    `json:"id"`
	ChannelID       string `json:"channel_id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	CustomURL       string `json:"custom_url,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	SubscriberCount int64  `json:"subscriber_count,omitempty"`
	VideoCount      int64  `json:"video_count,omitempty"`
	ViewCount       int64  `json:"view_count,omitempty"`
	JoinDate        string `json:"join_date,omitempty"`
	LastUpdated     string `json:"last_updated,omitempty"`
}

type Video struct {
	ID           int    `json:"id"`
	VideoID      string `json:"video_id"`
	ChannelID    string `json:"channel_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	ViewCount    int64  `json:"view_count,omitempty"`
	LikeCount    int64  `json:"like_count,omitempty"`
	CommentCount int64  `json:"comment_count,omitempty"`
}

// Category is one heuristically assigned content-type label for a channel.
// Percentages are rounded independently, so a channel's categories need not
// sum to exactly 100.
type Category struct {
	ID         int    `json:"id"`
	ChannelID  string `json:"channel_id"`
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// CategoryWeight is the categorizer's output before persistence.
type CategoryWeight struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

type AnalyzeChannelRequest struct {
	ChannelName string `json:"channel_name"`
}
