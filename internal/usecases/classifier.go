package usecases

import (
	"strings"

	"bizbot/internal/entities"
)

// Categorize maps a business description to a category by keyword substring
// match, testing categories in entities.ClassificationOrder. Anything that
// matches nothing is a service business.
func (g *ContentGenerator) Categorize(description string) entities.Category {
	lower := strings.ToLower(description)
	for _, category := range entities.ClassificationOrder {
		if containsAny(lower, g.catalog.Keywords(category)...) {
			return category
		}
	}
	return entities.FallbackCategory
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
