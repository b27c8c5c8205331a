package usecases

import (
	"math/rand/v2"

	"bizbot/internal/repository"
)

// RandomSource is the subset of *rand.Rand the generators need.
// Tests inject a seeded or scripted source to get reproducible output.
type RandomSource interface {
	IntN(n int) int
}

// globalRand uses the math/rand/v2 top-level generator, which is safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom returns the process-wide random source
func DefaultRandom() RandomSource { return globalRand{} }

// ContentGenerator produces the templated content for each chat feature.
// It holds no mutable state besides the random source.
type ContentGenerator struct {
	catalog *repository.Catalog
	rng     RandomSource
}

func NewContentGenerator(catalog *repository.Catalog, rng RandomSource) *ContentGenerator {
	if rng == nil {
		rng = DefaultRandom()
	}
	return &ContentGenerator{
		catalog: catalog,
		rng:     rng,
	}
}

func (g *ContentGenerator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}
