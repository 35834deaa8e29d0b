package repository

import (
	"sort"
	"strings"
	"sync"

	"channelscope-backend/internal/models"
)

// Store is the in-memory persistence layer. It is constructed once in main
// and injected into the services that need it. All collections are guarded
// by a single RWMutex; two concurrent ingestion runs for the same channel can
// still interleave at the operation level (last write wins), which matches
// the single-user usage this store is meant for.
type Store struct {
	mu              sync.RWMutex
	channels        map[int]models.Channel
	videos          map[int]models.Video
	categories      map[int]models.Category
	contentIdeas    map[int]models.ContentIdea
	recommendations map[int]models.Recommendation
	analytics       map[int]models.Analytics

	nextChannelID        int
	nextVideoID          int
	nextCategoryID       int
	nextIdeaID           int
	nextRecommendationID int
	nextAnalyticsID      int
}

func NewStore() *Store {
	return &Store{
		channels:             make(map[int]models.Channel),
		videos:               make(map[int]models.Video),
		categories:           make(map[int]models.Category),
		contentIdeas:         make(map[int]models.ContentIdea),
		recommendations:      make(map[int]models.Recommendation),
		analytics:            make(map[int]models.Analytics),
		nextChannelID:        1,
		nextVideoID:          1,
		nextCategoryID:       1,
		nextIdeaID:           1,
		nextRecommendationID: 1,
		nextAnalyticsID:      1,
	}
}

// Channel operations

func (s *Store) GetChannelByID(channelID string) (models.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findChannel(channelID)
}

func (s *Store) findChannel(channelID string) (models.Channel, bool) {
	for _, c := range s.channels {
		if c.ChannelID == channelID {
			return c, true
		}
	}
	return models.Channel{}, false
}

// GetChannelByName matches on title or custom URL, case-insensitive substring.
func (s *Store) GetChannelByName(name string) (models.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(name)
	for _, c := range s.channels {
		if strings.Contains(strings.ToLower(c.Title), needle) {
			return c, true
		}
		if c.CustomURL != "" && strings.Contains(strings.ToLower(c.CustomURL), needle) {
			return c, true
		}
	}
	return models.Channel{}, false
}

func (s *Store) CreateChannel(c models.Channel) models.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextChannelID
	s.nextChannelID++
	s.channels[c.ID] = c
	return c
}

// TouchChannel stamps lastUpdated on an already known channel.
func (s *Store) TouchChannel(channelID, lastUpdated string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.findChannel(channelID)
	if !ok {
		return false
	}
	c.LastUpdated = lastUpdated
	s.channels[c.ID] = c
	return true
}

// Video operations

func (s *Store) ListVideosByChannel(channelID string) []models.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var videos []models.Video
	for _, v := range s.videos {
		if v.ChannelID == channelID {
			videos = append(videos, v)
		}
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })
	return videos
}

func (s *Store) CreateVideo(v models.Video) models.Video {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = s.nextVideoID
	s.nextVideoID++
	s.videos[v.ID] = v
	return v
}

// Category operations

func (s *Store) ListCategoriesByChannel(channelID string) []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var categories []models.Category
	for _, c := range s.categories {
		if c.ChannelID == channelID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories
}

func (s *Store) CreateCategory(c models.Category) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[c.ID] = c
	return c
}

// Content idea operations (append-only)

func (s *Store) ListIdeasByChannel(channelID string) []models.ContentIdea {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ideas []models.ContentIdea
	for _, idea := range s.contentIdeas {
		if idea.ChannelID == channelID {
			ideas = append(ideas, idea)
		}
	}
	sort.Slice(ideas, func(i, j int) bool { return ideas[i].ID < ideas[j].ID })
	return ideas
}

func (s *Store) CreateContentIdea(idea models.ContentIdea) models.ContentIdea {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea.ID = s.nextIdeaID
	s.nextIdeaID++
	s.contentIdeas[idea.ID] = idea
	return idea
}

// Recommendation operations (append-only)

func (s *Store) ListRecommendationsByChannel(channelID string) []models.Recommendation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []models.Recommendation
	for _, rec := range s.recommendations {
		if rec.ChannelID == channelID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	return recs
}

func (s *Store) CreateRecommendation(rec models.Recommendation) models.Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.nextRecommendationID
	s.nextRecommendationID++
	s.recommendations[rec.ID] = rec
	return rec
}

// Analytics operations (at most one row per channel)

func (s *Store) GetAnalyticsByChannel(channelID string) (models.Analytics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findAnalytics(channelID)
}

func (s *Store) findAnalytics(channelID string) (models.Analytics, bool) {
	for _, a := range s.analytics {
		if a.ChannelID == channelID {
			return a, true
		}
	}
	return models.Analytics{}, false
}

func (s *Store) CreateAnalytics(a models.Analytics) models.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextAnalyticsID
	s.nextAnalyticsID++
	s.analytics[a.ID] = a
	return a
}

// UpdateAnalytics replaces the analytics row for a channel in place.
func (s *Store) UpdateAnalytics(channelID string, a models.Analytics) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.findAnalytics(channelID)
	if !ok {
		return false
	}
	a.ID = existing.ID
	a.ChannelID = channelID
	s.analytics[a.ID] = a
	return true
}

// Full analysis read

// GetFullAnalysis joins every table for one channel into the read model.
// Returns false only when the channel itself is unknown; a missing analytics
// row is replaced with zeroed defaults.
func (s *Store) GetFullAnalysis(channelID string) (*models.ChannelAnalysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	channel, ok := s.findChannel(channelID)
	if !ok {
		return nil, false
	}

	analytics, ok := s.findAnalytics(channelID)
	if !ok {
		analytics = models.Analytics{
			ChannelID:            channelID,
			EngagementRate:       "0%",
			EngagementRateChange: "0%",
		}
	}

	analysis := &models.ChannelAnalysis{
		Channel: models.ChannelSummary{
			ID:              channel.ChannelID,
			Title:           channel.Title,
			Description:     channel.Description,
			CustomURL:       channel.CustomURL,
			ThumbnailURL:    channel.ThumbnailURL,
			SubscriberCount: channel.SubscriberCount,
			VideoCount:      channel.VideoCount,
			ViewCount:       channel.ViewCount,
			JoinDate:        channel.JoinDate,
		},
		Analytics: models.AnalyticsSummary{
			AvgViews:             analytics.AvgViews,
			EngagementRate:       analytics.EngagementRate,
			NewSubscribers:       analytics.NewSubscribers,
			AvgViewsChange:       analytics.AvgViewsChange,
			EngagementRateChange: analytics.EngagementRateChange,
			NewSubscribersChange: analytics.NewSubscribersChange,
		},
		TopVideos:       []models.VideoSummary{},
		Categories:      []models.CategoryWeight{},
		ContentIdeas:    []models.IdeaSummary{},
		Recommendations: []models.RecommendationSummary{},
	}

	var videos []models.Video
	for _, v := range s.videos {
		if v.ChannelID == channelID {
			videos = append(videos, v)
		}
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })
	for _, v := range videos {
		analysis.TopVideos = append(analysis.TopVideos, models.VideoSummary{
			ID:           v.VideoID,
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
		})
	}

	var categories []models.Category
	for _, c := range s.categories {
		if c.ChannelID == channelID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	for _, c := range categories {
		analysis.Categories = append(analysis.Categories, models.CategoryWeight{
			Name:       c.Name,
			Percentage: c.Percentage,
		})
	}

	var ideas []models.ContentIdea
	for _, idea := range s.contentIdeas {
		if idea.ChannelID == channelID {
			ideas = append(ideas, idea)
		}
	}
	sort.Slice(ideas, func(i, j int) bool { return ideas[i].ID < ideas[j].ID })
	for _, idea := range ideas {
		analysis.ContentIdeas = append(analysis.ContentIdeas, models.IdeaSummary{
			Title:       idea.Title,
			Description: idea.Description,
			Potential:   idea.Potential,
			IdeaType:    idea.IdeaType,
		})
	}

	var recs []models.Recommendation
	for _, rec := range s.recommendations {
		if rec.ChannelID == channelID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	for _, rec := range recs {
		analysis.Recommendations = append(analysis.Recommendations, models.RecommendationSummary{
			Title:   rec.Title,
			Content: rec.Content,
			Type:    rec.Type,
		})
	}

	return analysis, true
}
