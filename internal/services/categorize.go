package services

import (
	"math"
	"sort"
	"strings"

	"channelscope-backend/internal/models"
)

// categoryRule pairs a title predicate with its category label. Rules are
// evaluated top to bottom and a title lands in exactly the first category
// that matches.
type categoryRule struct {
	name  string
	match func(title string) bool
}

func containsAny(keywords ...string) func(string) bool {
	return func(title string) bool {
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				return true
			}
		}
		return false
	}
}

// The format rules run before the product-type rules, so "iPhone 15 Review"
// counts as Reviews, not Smartphone Content.
var categoryRules = []categoryRule{
	{"Reviews", containsAny("review")},
	{"Tutorials & Guides", containsAny("how to", "tutorial", "guide")},
	{"Unboxing", containsAny("unboxing")},
	{"Comparisons", containsAny("comparison", "vs")},
	{"News & Updates", containsAny("news", "update")},
	{"Smartphone Content", containsAny("iphone", "android", "smartphone", "phone")},
	{"Laptop & PC Content", containsAny("laptop", "macbook", "pc")},
	{"Camera & Photography", containsAny("camera", "photography")},
	{"Audio Products", containsAny("headphone", "earbuds", "audio")},
	{"Gaming Content", containsAny("gaming")},
}

const fallbackCategory = "Other Content"

// CategorizeTitles classifies video titles into weighted content categories.
// Deterministic for a given title list; an empty input yields an empty slice.
func CategorizeTitles(titles []string) []models.CategoryWeight {
	if len(titles) == 0 {
		return []models.CategoryWeight{}
	}

	counts := make(map[string]int)
	for _, title := range titles {
		counts[categorizeTitle(strings.ToLower(title))]++
	}

	total := len(titles)
	weights := make([]models.CategoryWeight, 0, len(counts))
	for name, count := range counts {
		weights = append(weights, models.CategoryWeight{
			Name:       name,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}

	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Percentage != weights[j].Percentage {
			return weights[i].Percentage > weights[j].Percentage
		}
		return weights[i].Name < weights[j].Name
	})

	return weights
}

func categorizeTitle(title string) string {
	for _, rule := range categoryRules {
		if rule.match(title) {
			return rule.name
		}
	}
	return fallbackCategory
}
