package services

import (
	"strings"
	"testing"

	"channelscope-backend/internal/models"
)

func TestFallbackInsightsWithCategoriesAndTitles(t *testing.T) {
	categories := []models.CategoryWeight{
		{Name: "Reviews", Percentage: 60},
		{Name: "Gaming Content", Percentage: 30},
		{Name: "Other Content", Percentage: 10},
	}
	titles := []string{"iPhone 16 Review", "Gaming on a Budget"}

	insights := fallbackInsights("Tech World", titles, categories)

	// Two ideas per qualifying top category plus two title-seeded ideas.
	if len(insights.ContentIdeas) != 6 {
		t.Fatalf("expected 6 ideas, got %d", len(insights.ContentIdeas))
	}
	for i, idea := range insights.ContentIdeas {
		if idea.Title == "" || idea.Description == "" {
			t.Errorf("idea %d missing title or description", i)
		}
		if !models.ValidIdeaType(idea.IdeaType) {
			t.Errorf("idea %d has invalid type %q", i, idea.IdeaType)
		}
	}

	if len(insights.Recommendations) != 3 {
		t.Fatalf("expected exactly 3 recommendations, got %d", len(insights.Recommendations))
	}
	types := map[string]bool{}
	for _, rec := range insights.Recommendations {
		types[rec.Type] = true
	}
	for _, want := range []string{models.RecTypeAudienceGrowth, models.RecTypeContentOptimization, models.RecTypeAudienceEngagement} {
		if !types[want] {
			t.Errorf("missing recommendation type %s", want)
		}
	}
}

func TestFallbackInsightsMinimumIdeas(t *testing.T) {
	// No categories, no titles: padded with myth-busting ideas.
	insights := fallbackInsights("Tech World", nil, nil)

	if len(insights.ContentIdeas) < 4 {
		t.Fatalf("expected at least 4 ideas, got %d", len(insights.ContentIdeas))
	}
	if !strings.Contains(insights.ContentIdeas[0].Title, "Tech") {
		t.Errorf("pad idea should use the channel's first word, got %q", insights.ContentIdeas[0].Title)
	}
}

func TestFallbackInsightsSkipsThinCategories(t *testing.T) {
	categories := []models.CategoryWeight{
		{Name: "Reviews", Percentage: 8},
		{Name: "Gaming Content", Percentage: 5},
	}

	insights := fallbackInsights("Tech World", nil, categories)

	for _, idea := range insights.ContentIdeas {
		if strings.Contains(idea.Title, "Reviews Deep Dive") || strings.Contains(idea.Title, "Gaming Content Deep Dive") {
			t.Errorf("categories at or below 10%% should not seed ideas: %q", idea.Title)
		}
	}
}

func TestEnsureRecommendationsDefaults(t *testing.T) {
	recs := ensureRecommendations(nil)
	if len(recs) != 3 {
		t.Fatalf("expected 3 defaults, got %d", len(recs))
	}
}

func TestEnsureRecommendationsKeepsValidAndPadsMissingTypes(t *testing.T) {
	recs := ensureRecommendations([]models.Recommendation{
		{Title: "Post Shorts", Content: "Short-form content grows reach.", Type: models.RecTypeAudienceGrowth},
	})

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	if recs[0].Title != "Post Shorts" {
		t.Errorf("valid recommendation should be kept first, got %q", recs[0].Title)
	}
	types := map[string]int{}
	for _, rec := range recs {
		types[rec.Type]++
	}
	if len(types) != 3 {
		t.Errorf("expected all three types covered, got %v", types)
	}
}

func TestEnsureRecommendationsFiltersAndCaps(t *testing.T) {
	recs := ensureRecommendations([]models.Recommendation{
		{Title: "", Content: "no title", Type: models.RecTypeAudienceGrowth},
		{Title: "Bad type", Content: "x", Type: "seo_magic"},
		{Title: "A", Content: "a", Type: models.RecTypeAudienceGrowth},
		{Title: "B", Content: "b", Type: models.RecTypeContentOptimization},
		{Title: "C", Content: "c", Type: models.RecTypeAudienceEngagement},
		{Title: "D", Content: "d", Type: models.RecTypeAudienceGrowth},
	})

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	if recs[0].Title != "A" || recs[1].Title != "B" || recs[2].Title != "C" {
		t.Errorf("expected first three valid recommendations, got %+v", recs)
	}
}

func TestBuildInsightPrompt(t *testing.T) {
	prompt := buildInsightPrompt("Tech World", "Gadget reviews", []string{"iPhone 16 Review"}, []models.CategoryWeight{{Name: "Reviews", Percentage: 100}})

	for _, want := range []string{"Tech World", "Gadget reviews", "iPhone 16 Review", "Reviews: 100%", "contentIdeas", "recommendations"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
