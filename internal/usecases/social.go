package usecases

import (
	"strings"

	"bizbot/internal/entities"
	"bizbot/internal/repository"
)

// GenerateSocialContent fills the platform's post template. Unknown platforms
// get a one-line generic post.
func (g *ContentGenerator) GenerateSocialContent(platform entities.Platform, name, description string) entities.SocialPost {
	platform = entities.Platform(strings.ToLower(string(platform)))
	tmpl, ok := g.catalog.SocialTemplate(platform)
	if !ok {
		tmpl = g.catalog.GenericSocialTemplate()
	}

	return entities.SocialPost{
		Platform: platform,
		Format:   tmpl.Format,
		Content: repository.Render(tmpl.Content, map[string]string{
			"name":    name,
			"idea":    description,
			"hashtag": strings.ReplaceAll(name, " ", ""),
		}),
	}
}
