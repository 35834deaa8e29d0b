package services

import (
	"context"
	"log"
	"time"

	"channelscope-backend/internal/models"
	"channelscope-backend/internal/repository"
)

// MetadataProvider is the slice of the YouTube service the pipeline needs.
type MetadataProvider interface {
	FindChannel(ctx context.Context, input string) (*models.Channel, error)
	RecentUploads(ctx context.Context, channelID string) ([]models.Video, error)
}

// InsightGenerator produces content ideas and recommendations for a channel.
// Implementations must recover internally; generation never fails.
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, channelTitle, channelDescription string, videoTitles []string, categories []models.CategoryWeight) models.GeneratedInsights
}

// AnalyzerService runs the ingestion pipeline: resolve channel, fetch
// uploads, categorize, synthesize analytics, persist. Idea and
// recommendation generation is deferred to the first full-analysis read or
// an explicit more-ideas request.
type AnalyzerService struct {
	store    *repository.Store
	metadata MetadataProvider
	insights InsightGenerator
	trends   TrendEstimator
}

func NewAnalyzerService(store *repository.Store, metadata MetadataProvider, insights InsightGenerator, trends TrendEstimator) *AnalyzerService {
	return &AnalyzerService{
		store:    store,
		metadata: metadata,
		insights: insights,
		trends:   trends,
	}
}

// AnalyzeChannel ingests one channel and returns its external ID. Steps run
// sequentially with no retries; a metadata failure is fatal to the request.
// Re-analyzing a known channel only bumps its lastUpdated stamp before
// re-fetching videos, categories and analytics.
func (s *AnalyzerService) AnalyzeChannel(ctx context.Context, input string) (string, error) {
	channel, err := s.metadata.FindChannel(ctx, input)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, ok := s.store.GetChannelByID(channel.ChannelID); ok {
		s.store.TouchChannel(channel.ChannelID, now)
	} else {
		channel.LastUpdated = now
		s.store.CreateChannel(*channel)
	}

	videos, err := s.metadata.RecentUploads(ctx, channel.ChannelID)
	if err != nil {
		return "", err
	}

	titles := make([]string, 0, len(videos))
	for _, video := range videos {
		video.ChannelID = channel.ChannelID
		s.store.CreateVideo(video)
		titles = append(titles, video.Title)
	}

	for _, weight := range CategorizeTitles(titles) {
		s.store.CreateCategory(models.Category{
			ChannelID:  channel.ChannelID,
			Name:       weight.Name,
			Percentage: weight.Percentage,
		})
	}

	analytics := SynthesizeAnalytics(*channel, videos, s.trends)
	if _, ok := s.store.GetAnalyticsByChannel(channel.ChannelID); ok {
		s.store.UpdateAnalytics(channel.ChannelID, analytics)
	} else {
		s.store.CreateAnalytics(analytics)
	}

	log.Printf("Analyzed channel %s (%d videos)", channel.ChannelID, len(videos))
	return channel.ChannelID, nil
}

// FullAnalysis returns the joined read model for a channel, generating and
// persisting ideas and recommendations on first read when either set is
// still empty.
func (s *AnalyzerService) FullAnalysis(ctx context.Context, channelID string) (*models.ChannelAnalysis, error) {
	analysis, ok := s.store.GetFullAnalysis(channelID)
	if !ok {
		return nil, &NotFoundError{Message: "Channel analysis not found"}
	}

	if len(analysis.ContentIdeas) == 0 || len(analysis.Recommendations) == 0 {
		insights := s.generateInsights(ctx, channelID)
		for _, idea := range insights.ContentIdeas {
			idea.ChannelID = channelID
			s.store.CreateContentIdea(idea)
		}
		for _, rec := range insights.Recommendations {
			rec.ChannelID = channelID
			s.store.CreateRecommendation(rec)
		}

		analysis, ok = s.store.GetFullAnalysis(channelID)
		if !ok {
			return nil, &NotFoundError{Message: "Channel analysis not found"}
		}
	}

	if fields := analysis.Validate(); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	return analysis, nil
}

// MoreIdeas generates a fresh idea batch for the channel, appends it to the
// stored set and returns the new batch. The stored idea set only ever grows.
func (s *AnalyzerService) MoreIdeas(ctx context.Context, channelID string) ([]models.ContentIdea, error) {
	if _, ok := s.store.GetChannelByID(channelID); !ok {
		return nil, &NotFoundError{Message: "Channel not found"}
	}

	insights := s.generateInsights(ctx, channelID)
	ideas := make([]models.ContentIdea, 0, len(insights.ContentIdeas))
	for _, idea := range insights.ContentIdeas {
		idea.ChannelID = channelID
		ideas = append(ideas, s.store.CreateContentIdea(idea))
	}

	return ideas, nil
}

func (s *AnalyzerService) generateInsights(ctx context.Context, channelID string) models.GeneratedInsights {
	channel, _ := s.store.GetChannelByID(channelID)

	videos := s.store.ListVideosByChannel(channelID)
	titles := make([]string, 0, len(videos))
	for _, v := range videos {
		titles = append(titles, v.Title)
	}

	categories := s.store.ListCategoriesByChannel(channelID)
	weights := make([]models.CategoryWeight, 0, len(categories))
	for _, c := range categories {
		weights = append(weights, models.CategoryWeight{Name: c.Name, Percentage: c.Percentage})
	}

	return s.insights.GenerateInsights(ctx, channel.Title, channel.Description, titles, weights)
}
