package services

import "testing"

func TestCategorizeTitlesEmpty(t *testing.T) {
	weights := CategorizeTitles(nil)
	if len(weights) != 0 {
		t.Fatalf("expected no categories for empty input, got %d", len(weights))
	}
}

func TestCategorizeTitlesSingleCategory(t *testing.T) {
	titles := []string{
		"iPhone 16 Review",
		"Galaxy S25 Review - Worth It?",
		"REVIEW: Pixel 10 Pro",
	}

	weights := CategorizeTitles(titles)
	if len(weights) != 1 {
		t.Fatalf("expected 1 category, got %d: %v", len(weights), weights)
	}
	if weights[0].Name != "Reviews" {
		t.Errorf("expected Reviews, got %s", weights[0].Name)
	}
	if weights[0].Percentage != 100 {
		t.Errorf("expected 100%%, got %d%%", weights[0].Percentage)
	}
}

func TestCategorizeTitlesFormatRulesBeforeProductRules(t *testing.T) {
	// "review" must win over "iphone" even though both keywords match.
	weights := CategorizeTitles([]string{"iPhone 16 Pro Review"})
	if weights[0].Name != "Reviews" {
		t.Errorf("expected Reviews to take priority, got %s", weights[0].Name)
	}
}

func TestCategorizeTitlesProductKeywords(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"My Daily Android Setup", "Smartphone Content"},
		{"Building the Ultimate Gaming PC... wait no", "Laptop & PC Content"},
		{"Best Camera Settings for Night Shots", "Camera & Photography"},
		{"These Earbuds Surprised Me", "Audio Products"},
		{"Gaming on a Budget", "Gaming Content"},
		{"My Trip to Japan", "Other Content"},
	}

	for _, tc := range cases {
		weights := CategorizeTitles([]string{tc.title})
		if weights[0].Name != tc.want {
			t.Errorf("title %q: expected %s, got %s", tc.title, tc.want, weights[0].Name)
		}
	}
}

func TestCategorizeTitlesSortedByWeight(t *testing.T) {
	titles := []string{
		"iPhone 16 Review",
		"Pixel 10 Review",
		"MacBook Air Review",
		"Unboxing the Vision Pro",
	}

	weights := CategorizeTitles(titles)
	if weights[0].Name != "Reviews" || weights[0].Percentage != 75 {
		t.Errorf("expected Reviews at 75%% first, got %+v", weights[0])
	}
	if weights[1].Name != "Unboxing" || weights[1].Percentage != 25 {
		t.Errorf("expected Unboxing at 25%% second, got %+v", weights[1])
	}
}

func TestCategorizeTitlesDeterministicTieOrder(t *testing.T) {
	titles := []string{"Console Unboxing", "Gadget Review"}

	for i := 0; i < 10; i++ {
		weights := CategorizeTitles(titles)
		if len(weights) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(weights))
		}
		// Equal weights sort alphabetically.
		if weights[0].Name != "Reviews" || weights[1].Name != "Unboxing" {
			t.Fatalf("tie order not deterministic: %v", weights)
		}
	}
}

func TestCategorizeTitlesPercentageRounding(t *testing.T) {
	// 1/3 rounds to 33, 2/3 rounds to 67.
	titles := []string{"A Review", "Another Review", "Unboxing Day"}

	weights := CategorizeTitles(titles)
	if weights[0].Percentage != 67 {
		t.Errorf("expected 67%%, got %d%%", weights[0].Percentage)
	}
	if weights[1].Percentage != 33 {
		t.Errorf("expected 33%%, got %d%%", weights[1].Percentage)
	}
}
