package usecases

// MaxIdeas caps how many ideas one reply carries
const MaxIdeas = 6

// GenerateIdeas samples up to MaxIdeas distinct entries from the base ideas
// plus the category's own ideas. Order is the sampling order.
func (g *ContentGenerator) GenerateIdeas(description string) []string {
	base := g.catalog.BaseIdeas()
	extra := g.catalog.CategoryIdeas(g.Categorize(description))

	pool := make([]string, 0, len(base)+len(extra))
	pool = append(pool, base...)
	pool = append(pool, extra...)

	k := min(MaxIdeas, len(pool))
	// partial Fisher-Yates: pool[:k] ends up a uniform sample without replacement
	for i := 0; i < k; i++ {
		j := i + g.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
