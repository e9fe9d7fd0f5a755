package generator

import (
	"math/rand/v2"
)

//go:generate mockgen -source=random.go -destination=../mocks/generator/mock_random.go -package=mock_generator

// RandomSource supplies every random decision of a Generator.
type RandomSource interface {
	// IntN returns a number in [0, n). n is always positive.
	IntN(n int) int
}

// NewRandomSource returns a reproducible source seeded with seed.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newUnseededSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// roll returns true with a probability of percent in 100.
func (g *Generator) roll(percent int) bool {
	return g.rng.IntN(100) < percent
}

func (g *Generator) sample(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[g.rng.IntN(len(list))]
}
