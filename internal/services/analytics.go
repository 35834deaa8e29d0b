package services

import (
	"fmt"
	"math"
	"math/rand"

	"channelscope-backend/internal/models"
)

// TrendEstimator produces the month-over-month delta figures for a channel.
// The pipeline only depends on this interface; swap in a real historical
// comparison without touching the synthesizer.
type TrendEstimator interface {
	// NewSubscribers estimates subscribers gained this month.
	NewSubscribers(subscriberCount int64) int64
	// ViewsDelta estimates the change in average views versus last month.
	ViewsDelta(avgViews int64) int64
	// EngagementDelta estimates the change in engagement rate, in percentage
	// points, versus last month.
	EngagementDelta(ratePercent float64) float64
	// SubscribersDelta estimates the change in monthly subscriber gain.
	SubscribersDelta(newSubscribers int64) int64
}

// RandomTrendEstimator is the placeholder implementation: uniformly random
// values scaled by the base metric (new subs 1-5% of the subscriber count,
// view/subscriber deltas within ±10%, engagement delta within ±1 point).
// These are demo numbers, not measured trends; tests must assert ranges
// only, never exact values.
type RandomTrendEstimator struct{}

func (RandomTrendEstimator) NewSubscribers(subscriberCount int64) int64 {
	return int64(math.Round(float64(subscriberCount) * (rand.Float64()*0.04 + 0.01)))
}

func (RandomTrendEstimator) ViewsDelta(avgViews int64) int64 {
	return int64(math.Round((rand.Float64()*0.2 - 0.1) * float64(avgViews)))
}

func (RandomTrendEstimator) EngagementDelta(ratePercent float64) float64 {
	return (rand.Float64()*0.02 - 0.01) * ratePercent
}

func (RandomTrendEstimator) SubscribersDelta(newSubscribers int64) int64 {
	return int64(math.Round((rand.Float64()*0.2 - 0.1) * float64(newSubscribers)))
}

// SynthesizeAnalytics computes aggregate view and engagement numbers from a
// video set and fills the delta fields from the estimator. A channel whose
// videos have zero total views gets a "0%" engagement rate rather than a
// division by zero.
func SynthesizeAnalytics(channel models.Channel, videos []models.Video, est TrendEstimator) models.Analytics {
	var totalViews, totalLikes, totalComments int64
	for _, v := range videos {
		totalViews += v.ViewCount
		totalLikes += v.LikeCount
		totalComments += v.CommentCount
	}

	count := len(videos)
	if count == 0 {
		count = 1
	}
	avgViews := int64(math.Round(float64(totalViews) / float64(count)))

	engagementRate := "0%"
	ratePercent := 0.0
	if totalViews > 0 {
		ratePercent = float64(totalLikes+totalComments) / float64(totalViews) * 100
		engagementRate = fmt.Sprintf("%.1f%%", ratePercent)
	}

	newSubscribers := est.NewSubscribers(channel.SubscriberCount)

	return models.Analytics{
		ChannelID:            channel.ChannelID,
		AvgViews:             avgViews,
		EngagementRate:       engagementRate,
		NewSubscribers:       newSubscribers,
		AvgViewsChange:       est.ViewsDelta(avgViews),
		EngagementRateChange: fmt.Sprintf("%.1f%%", est.EngagementDelta(ratePercent)),
		NewSubscribersChange: est.SubscribersDelta(newSubscribers),
	}
}
