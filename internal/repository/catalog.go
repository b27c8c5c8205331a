package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"bizbot/internal/entities"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var ErrCatalogInvalid = errors.New("invalid content catalog")

// StepsPerPlan is the number of steps every category template must carry.
const StepsPerPlan = 10

type CategoryContent struct {
	Keywords  []string `yaml:"keywords"`
	LogoStyle string   `yaml:"logo_style"`
	Steps     []string `yaml:"steps"`
	Ideas     []string `yaml:"ideas"`
}

type NamePools struct {
	Prefixes        []string `yaml:"prefixes"`
	Suffixes        []string `yaml:"suffixes"`
	FunnyAdjectives []string `yaml:"funny_adjectives"`
}

type SocialTemplate struct {
	Format  string `yaml:"format"`
	Content string `yaml:"content"`
}

type catalogFile struct {
	Categories       map[entities.Category]CategoryContent `yaml:"categories"`
	DefaultLogoStyle string                                `yaml:"default_logo_style"`
	LogoPrompt       string                                `yaml:"logo_prompt"`
	Names            NamePools                             `yaml:"names"`
	Ideas            []string                              `yaml:"ideas"`
	Social           map[entities.Platform]SocialTemplate  `yaml:"social"`
	GenericSocial    SocialTemplate                        `yaml:"generic_social"`
}

// Catalog holds the read-only lookup tables the content generators draw from.
// It is built once at startup and never mutated afterwards, so it is safe to
// share between goroutines. Slices returned by its methods must not be modified.
type Catalog struct {
	file catalogFile
}

// LoadDefaultCatalog parses the catalog embedded in the binary
func LoadDefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads a catalog override from disk. An empty path means the embedded catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return LoadDefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &Catalog{file: f}, nil
}

func (f *catalogFile) validate() error {
	for _, c := range entities.AllCategories {
		content, ok := f.Categories[c]
		if !ok {
			return fmt.Errorf("%w: missing category %q", ErrCatalogInvalid, c)
		}
		if len(content.Steps) != StepsPerPlan {
			return fmt.Errorf("%w: category %q has %d steps, want %d", ErrCatalogInvalid, c, len(content.Steps), StepsPerPlan)
		}
		for i, step := range content.Steps {
			if strings.TrimSpace(step) == "" {
				return fmt.Errorf("%w: category %q step %d is empty", ErrCatalogInvalid, c, i+1)
			}
		}
	}
	for c := range f.Categories {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrCatalogInvalid, c)
		}
	}
	for _, c := range entities.ClassificationOrder {
		if len(f.Categories[c].Keywords) == 0 {
			return fmt.Errorf("%w: category %q has no keywords", ErrCatalogInvalid, c)
		}
	}

	if len(f.Names.Prefixes) == 0 || len(f.Names.Suffixes) == 0 || len(f.Names.FunnyAdjectives) == 0 {
		return fmt.Errorf("%w: name pools must not be empty", ErrCatalogInvalid)
	}
	if len(f.Ideas) == 0 {
		return fmt.Errorf("%w: no base ideas", ErrCatalogInvalid)
	}
	if f.DefaultLogoStyle == "" {
		return fmt.Errorf("%w: default_logo_style is required", ErrCatalogInvalid)
	}
	if !strings.Contains(f.LogoPrompt, "{name}") || !strings.Contains(f.LogoPrompt, "{idea}") {
		return fmt.Errorf("%w: logo_prompt must reference {name} and {idea}", ErrCatalogInvalid)
	}

	for _, p := range entities.PlatformOrder {
		tmpl, ok := f.Social[p]
		if !ok || tmpl.Format == "" || tmpl.Content == "" {
			return fmt.Errorf("%w: missing social template for %q", ErrCatalogInvalid, p)
		}
	}
	if f.GenericSocial.Format == "" || f.GenericSocial.Content == "" {
		return fmt.Errorf("%w: generic_social template is required", ErrCatalogInvalid)
	}
	return nil
}

// Keywords returns the keyword set tested for a category
func (c *Catalog) Keywords(category entities.Category) []string {
	return c.file.Categories[category].Keywords
}

// Steps returns the step template for a category, falling back to the service plan
func (c *Catalog) Steps(category entities.Category) []string {
	if content, ok := c.file.Categories[category]; ok && len(content.Steps) > 0 {
		return content.Steps
	}
	return c.file.Categories[entities.FallbackCategory].Steps
}

func (c *Catalog) LogoStyle(category entities.Category) string {
	if style := c.file.Categories[category].LogoStyle; style != "" {
		return style
	}
	return c.file.DefaultLogoStyle
}

func (c *Catalog) LogoPrompt() string {
	return c.file.LogoPrompt
}

func (c *Catalog) BaseIdeas() []string {
	return c.file.Ideas
}

func (c *Catalog) CategoryIdeas(category entities.Category) []string {
	return c.file.Categories[category].Ideas
}

func (c *Catalog) Names() NamePools {
	return c.file.Names
}

// SocialTemplate returns the template for a platform and whether the platform is known
func (c *Catalog) SocialTemplate(platform entities.Platform) (SocialTemplate, bool) {
	tmpl, ok := c.file.Social[platform]
	return tmpl, ok
}

func (c *Catalog) GenericSocialTemplate() SocialTemplate {
	return c.file.GenericSocial
}

// Render substitutes {key} placeholders in a single pass, so values that
// themselves contain placeholders are left untouched.
func Render(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
