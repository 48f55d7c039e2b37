// Package random provides the injectable source of randomness behind table
// rolls, instruction counts and spell draws.
package random

//go:generate mockgen -destination=mock/mock_provider.go -package=randommock github.com/KirkDiggler/rpg-encounters/internal/pkg/random Provider

import (
	"log/slog"
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Provider draws uniform integers and shuffles sequences.
// A Provider is owned by one caller or session; implementations here are not
// safe for concurrent use.
type Provider interface {
	// NextInt returns a uniform integer in [min, max]. When max <= min it returns min.
	NextInt(min, max int) int

	// Shuffle permutes n elements by calling swap, like rand.Shuffle
	Shuffle(n int, swap func(i, j int))
}

// ShuffleSlice shuffles s in place using p
func ShuffleSlice[T any](p Provider, s []T) {
	p.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Seeded is a deterministic provider for tests and replays
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a provider that always produces the same sequence for a seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// NextInt returns a uniform integer in [min, max]
func (s *Seeded) NextInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Shuffle permutes n elements
func (s *Seeded) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// Dice adapts an rpg-toolkit dice.Roller to Provider. A range [min, max] is
// rolled as a single die with max-min+1 sides.
type Dice struct {
	roller dice.Roller
}

// NewDice creates a provider over roller, falling back to dice.DefaultRoller
func NewDice(roller dice.Roller) *Dice {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Dice{roller: roller}
}

// NextInt returns a uniform integer in [min, max]
func (d *Dice) NextInt(min, max int) int {
	if max <= min {
		return min
	}

	sides := max - min + 1
	value, err := d.roller.Roll(sides)
	if err != nil {
		// Roll only fails for sides < 1, which is excluded above
		slog.Error("Dice roller failed",
			"sides", sides,
			"error", err,
		)
		return min
	}

	return min + value - 1
}

// Shuffle permutes n elements with a Fisher-Yates pass driven by die rolls
func (d *Dice) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, d.NextInt(0, i))
	}
}

var (
	_ Provider = (*Seeded)(nil)
	_ Provider = (*Dice)(nil)
)
