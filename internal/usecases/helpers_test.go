package usecases

import (
	"testing"

	"bizbot/internal/repository"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays vals in a loop, reduced modulo n
type scriptedRand struct {
	vals []int
	i    int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func newTestGenerator(t *testing.T, rng RandomSource) *ContentGenerator {
	t.Helper()
	catalog, err := repository.LoadDefaultCatalog()
	require.NoError(t, err)
	return NewContentGenerator(catalog, rng)
}
