package usecases

import "bizbot/internal/repository"

// GenerateLogoPrompt builds a prompt for an image model, styled by category
func (g *ContentGenerator) GenerateLogoPrompt(name, description string) string {
	return repository.Render(g.catalog.LogoPrompt(), map[string]string{
		"name":  name,
		"idea":  description,
		"style": g.catalog.LogoStyle(g.Categorize(description)),
	})
}
