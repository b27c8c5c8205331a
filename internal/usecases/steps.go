package usecases

import "strings"

const (
	foodMarketingNote = " (focus on food photography and reviews)"
	onlinePlatform    = "e-commerce platform and website"
)

// GenerateSteps returns the category step plan, lightly rewritten for
// restaurants (marketing hints) and online businesses (no physical location).
func (g *ContentGenerator) GenerateSteps(description string) []string {
	lower := strings.ToLower(description)
	isRestaurant := strings.Contains(lower, "restaurant")
	isOnline := strings.Contains(lower, "online") || strings.Contains(lower, "e-commerce")

	template := g.catalog.Steps(g.Categorize(description))
	steps := make([]string, 0, len(template))
	for _, step := range template {
		stepLower := strings.ToLower(step)
		switch {
		case isRestaurant && !strings.Contains(step, "menu"):
			if strings.Contains(stepLower, "marketing") {
				step += foodMarketingNote
			}
		case isOnline:
			if strings.Contains(stepLower, "location") {
				step = strings.ReplaceAll(step, "location", onlinePlatform)
			}
		}
		steps = append(steps, step)
	}
	return steps
}
