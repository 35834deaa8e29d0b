package services

import (
	"testing"

	"channelscope-backend/internal/models"
)

// fixedTrends makes the synthesized deltas deterministic for assertions.
type fixedTrends struct{}

func (fixedTrends) NewSubscribers(subscriberCount int64) int64 { return subscriberCount / 100 }
func (fixedTrends) ViewsDelta(avgViews int64) int64            { return avgViews / 10 }
func (fixedTrends) EngagementDelta(ratePercent float64) float64 {
	return ratePercent / 10
}
func (fixedTrends) SubscribersDelta(newSubscribers int64) int64 { return newSubscribers / 10 }

func TestSynthesizeAnalytics(t *testing.T) {
	channel := models.Channel{ChannelID: "UC123", SubscriberCount: 10000}
	videos := []models.Video{
		{ViewCount: 1000, LikeCount: 40, CommentCount: 10},
		{ViewCount: 3000, LikeCount: 120, CommentCount: 30},
	}

	a := SynthesizeAnalytics(channel, videos, fixedTrends{})

	if a.ChannelID != "UC123" {
		t.Errorf("expected channel ID UC123, got %s", a.ChannelID)
	}
	if a.AvgViews != 2000 {
		t.Errorf("expected avg views 2000, got %d", a.AvgViews)
	}
	// (40+120+10+30) / 4000 * 100 = 5.0
	if a.EngagementRate != "5.0%" {
		t.Errorf("expected engagement rate 5.0%%, got %s", a.EngagementRate)
	}
	if a.NewSubscribers != 100 {
		t.Errorf("expected 100 new subscribers, got %d", a.NewSubscribers)
	}
	if a.AvgViewsChange != 200 {
		t.Errorf("expected avg views change 200, got %d", a.AvgViewsChange)
	}
	if a.EngagementRateChange != "0.5%" {
		t.Errorf("expected engagement rate change 0.5%%, got %s", a.EngagementRateChange)
	}
	if a.NewSubscribersChange != 10 {
		t.Errorf("expected new subscribers change 10, got %d", a.NewSubscribersChange)
	}
}

func TestSynthesizeAnalyticsZeroViews(t *testing.T) {
	channel := models.Channel{ChannelID: "UC123"}
	videos := []models.Video{
		{ViewCount: 0, LikeCount: 0, CommentCount: 0},
	}

	a := SynthesizeAnalytics(channel, videos, fixedTrends{})

	if a.EngagementRate != "0%" {
		t.Errorf("expected 0%% engagement for zero views, got %s", a.EngagementRate)
	}
	if a.AvgViews != 0 {
		t.Errorf("expected 0 avg views, got %d", a.AvgViews)
	}
}

func TestSynthesizeAnalyticsNoVideos(t *testing.T) {
	channel := models.Channel{ChannelID: "UC123", SubscriberCount: 500}

	a := SynthesizeAnalytics(channel, nil, fixedTrends{})

	if a.AvgViews != 0 {
		t.Errorf("expected 0 avg views for no videos, got %d", a.AvgViews)
	}
	if a.EngagementRate != "0%" {
		t.Errorf("expected 0%% engagement for no videos, got %s", a.EngagementRate)
	}
}

func TestRandomTrendEstimatorRanges(t *testing.T) {
	est := RandomTrendEstimator{}

	for i := 0; i < 100; i++ {
		subs := est.NewSubscribers(100000)
		if subs < 1000 || subs > 5000 {
			t.Fatalf("new subscribers %d outside 1-5%% of subscriber count", subs)
		}

		views := est.ViewsDelta(10000)
		if views < -1000 || views > 1000 {
			t.Fatalf("views delta %d outside ±10%%", views)
		}

		eng := est.EngagementDelta(5.0)
		if eng < -0.05 || eng > 0.05 {
			t.Fatalf("engagement delta %f outside ±1%% of rate", eng)
		}
	}
}
