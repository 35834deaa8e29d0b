package models

// Analytics holds the per-channel aggregate metrics. At most one row per
// channel. NewSubscribers and the three *Change fields are synthetic demo
// values produced by a trend estimator, not measured trends.
type Analytics struct {
	ID                   int    `json:"id"`
	ChannelID            string `json:"channel_id"`
	AvgViews             int64  `json:"avg_views"`
	EngagementRate       string `json:"engagement_rate"`
	NewSubscribers       int64  `json:"new_subscribers"`
	AvgViewsChange       int64  `json:"avg_views_change"`
	EngagementRateChange string `json:"engagement_rate_change"`
	NewSubscribersChange int64  `json:"new_subscribers_change"`
}
