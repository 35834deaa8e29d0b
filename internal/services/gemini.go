package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"channelscope-backend/internal/models"
)

// GeminiService asks Gemini for content ideas and growth recommendations.
// Every failure path, transport error, empty candidate, malformed JSON,
// falls through to the local fallback generator, so GenerateInsights never
// returns an error.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	return &GeminiService{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// GenerateInsights requests 8 content ideas and 3 recommendations for the
// channel. The result is clamped to 8 ideas and normalized to exactly 3
// recommendations covering all three recommendation types.
func (s *GeminiService) GenerateInsights(ctx context.Context, channelTitle, channelDescription string, videoTitles []string, categories []models.CategoryWeight) models.GeneratedInsights {
	prompt := buildInsightPrompt(channelTitle, channelDescription, videoTitles, categories)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini API error, using fallback insights: %v", err)
		return fallbackInsights(channelTitle, videoTitles, categories)
	}

	rawText := extractText(resp)
	rawText = strings.TrimPrefix(rawText, "```json")
	rawText = strings.TrimPrefix(rawText, "```")
	rawText = strings.TrimSuffix(rawText, "```")
	rawText = strings.TrimSpace(rawText)

	var parsed struct {
		ContentIdeas []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Potential   string `json:"potential"`
			IdeaType    string `json:"ideaType"`
		} `json:"contentIdeas"`
		Recommendations []struct {
			Title   string `json:"title"`
			Content string `json:"content"`
			Type    string `json:"type"`
		} `json:"recommendations"`
	}

	if err := json.Unmarshal([]byte(rawText), &parsed); err != nil {
		log.Printf("Gemini returned malformed insight JSON, using fallback: %v", err)
		return fallbackInsights(channelTitle, videoTitles, categories)
	}

	if len(parsed.ContentIdeas) == 0 {
		log.Println("Gemini returned no content ideas, using fallback")
		return fallbackInsights(channelTitle, videoTitles, categories)
	}

	insights := models.GeneratedInsights{}
	for i, idea := range parsed.ContentIdeas {
		if i >= 8 {
			break
		}
		ideaType := idea.IdeaType
		if !models.ValidIdeaType(ideaType) {
			ideaType = models.IdeaTypeTrending
		}
		insights.ContentIdeas = append(insights.ContentIdeas, models.ContentIdea{
			Title:       idea.Title,
			Description: idea.Description,
			Potential:   idea.Potential,
			IdeaType:    ideaType,
		})
	}
	for _, rec := range parsed.Recommendations {
		insights.Recommendations = append(insights.Recommendations, models.Recommendation{
			Title:   rec.Title,
			Content: rec.Content,
			Type:    rec.Type,
		})
	}
	insights.Recommendations = ensureRecommendations(insights.Recommendations)

	return insights
}

func buildInsightPrompt(channelTitle, channelDescription string, videoTitles []string, categories []models.CategoryWeight) string {
	var b strings.Builder

	b.WriteString("You are a YouTube content strategist who helps creators optimize their channel and generate engaging content ideas. You provide data-driven insights to help creators grow.\n\n")
	b.WriteString("Analyze this YouTube channel and generate content ideas and recommendations:\n\n")
	b.WriteString(fmt.Sprintf("Channel name: %s\n", channelTitle))
	b.WriteString(fmt.Sprintf("Channel description: %s\n\n", channelDescription))

	b.WriteString("Recent video titles:\n")
	for _, title := range videoTitles {
		b.WriteString(fmt.Sprintf("- %s\n", title))
	}

	b.WriteString("\nContent categories:\n")
	for _, cat := range categories {
		b.WriteString(fmt.Sprintf("- %s: %d%%\n", cat.Name, cat.Percentage))
	}

	b.WriteString(`
Based on this data, generate:
1. Eight content ideas that would perform well for this channel
2. Three strategic recommendations for channel growth

CRITICAL: Respond with ONLY a valid JSON object in this format. No preamble, no markdown, no backticks.
{
  "contentIdeas": [
    {
      "title": "Title of the video idea",
      "description": "Brief description of what the video would cover",
      "potential": "Estimated potential viewership (e.g., 'Est. views: 150K+')",
      "ideaType": "One of: trending, high_engagement, quick_win, audience_request"
    }
  ],
  "recommendations": [
    {
      "title": "Title of recommendation",
      "content": "Detailed explanation of the recommendation",
      "type": "One of: audience_growth, content_optimization, audience_engagement"
    }
  ]
}
`)

	return b.String()
}

// fallbackInsights builds category- and title-seeded ideas plus three fixed
// recommendations when the LLM is unavailable. Always yields at least 4
// ideas and exactly 3 recommendations.
func fallbackInsights(channelTitle string, videoTitles []string, categories []models.CategoryWeight) models.GeneratedInsights {
	ideaTypes := []string{
		models.IdeaTypeTrending,
		models.IdeaTypeHighEngagement,
		models.IdeaTypeQuickWin,
		models.IdeaTypeAudienceRequest,
	}

	var ideas []models.ContentIdea

	for i, cat := range categories {
		if i >= 2 || cat.Percentage <= 10 {
			continue
		}
		ideas = append(ideas, models.ContentIdea{
			Title:       fmt.Sprintf("%s Deep Dive: Expert Analysis and Tips", cat.Name),
			Description: fmt.Sprintf("Create an in-depth video analyzing key aspects of %s based on your expertise and channel focus.", cat.Name),
			Potential:   fmt.Sprintf("Est. views: %dK+", rand.Intn(50)+50),
			IdeaType:    ideaTypes[i%len(ideaTypes)],
		})
		ideas = append(ideas, models.ContentIdea{
			Title:       fmt.Sprintf("%s Trends for %d", cat.Name, time.Now().Year()),
			Description: fmt.Sprintf("Cover the latest trends and developments in %s to establish your channel as current and relevant.", cat.Name),
			Potential:   fmt.Sprintf("Est. views: %dK+", rand.Intn(50)+75),
			IdeaType:    ideaTypes[(i+1)%len(ideaTypes)],
		})
	}

	if len(videoTitles) > 0 {
		sampleTitle := videoTitles[rand.Intn(len(videoTitles))]
		ideas = append(ideas, models.ContentIdea{
			Title:       fmt.Sprintf("Revisiting %s - One Year Later", sampleTitle),
			Description: "Create a follow-up to one of your popular videos, discussing what's changed and providing updated insights.",
			Potential:   fmt.Sprintf("Est. views: %dK+", rand.Intn(50)+100),
			IdeaType:    models.IdeaTypeHighEngagement,
		})
		ideas = append(ideas, models.ContentIdea{
			Title:       "Behind The Scenes: How I Create My Videos",
			Description: "Show your audience your creative process and equipment setup to build a deeper connection with your viewers.",
			Potential:   fmt.Sprintf("Est. views: %dK+", rand.Intn(30)+50),
			IdeaType:    models.IdeaTypeAudienceRequest,
		})
	}

	topic := channelTitle
	if fields := strings.Fields(channelTitle); len(fields) > 0 {
		topic = fields[0]
	}
	for len(ideas) < 4 {
		ideas = append(ideas, models.ContentIdea{
			Title:       fmt.Sprintf("Top 10 Myths About %s", topic),
			Description: "Debunk common misconceptions in your field to position yourself as an authority and provide value to your audience.",
			Potential:   "Est. views: 75K+",
			IdeaType:    ideaTypes[len(ideas)%len(ideaTypes)],
		})
	}

	return models.GeneratedInsights{
		ContentIdeas:    ideas,
		Recommendations: ensureRecommendations(nil),
	}
}

// ensureRecommendations normalizes a recommendation set to exactly 3 entries
// covering all three types, padding with default strategies per missing type.
func ensureRecommendations(recs []models.Recommendation) []models.Recommendation {
	var valid []models.Recommendation
	for _, rec := range recs {
		if rec.Title == "" || rec.Content == "" || !models.ValidRecommendationType(rec.Type) {
			continue
		}
		valid = append(valid, rec)
		if len(valid) == 3 {
			return valid
		}
	}

	defaults := []models.Recommendation{
		{
			Title:   "Consistent Posting Schedule",
			Content: "Based on your channel's content, we recommend establishing and maintaining a consistent posting schedule to build viewer expectations and improve channel performance.",
			Type:    models.RecTypeAudienceGrowth,
		},
		{
			Title:   "Thumbnail Optimization",
			Content: "Consider redesigning your thumbnails with bright colors, clear text, and expressive facial expressions (if applicable) to increase click-through rates.",
			Type:    models.RecTypeContentOptimization,
		},
		{
			Title:   "Community Engagement",
			Content: "Respond to comments more frequently and consider creating content addressing viewer questions to build a more engaged community around your channel.",
			Type:    models.RecTypeAudienceEngagement,
		},
	}

	covered := make(map[string]bool)
	for _, rec := range valid {
		covered[rec.Type] = true
	}
	for _, def := range defaults {
		if len(valid) == 3 {
			break
		}
		if !covered[def.Type] {
			valid = append(valid, def)
			covered[def.Type] = true
		}
	}
	// All three types already covered but still short: pad in order.
	for _, def := range defaults {
		if len(valid) == 3 {
			break
		}
		valid = append(valid, def)
	}

	return valid
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
