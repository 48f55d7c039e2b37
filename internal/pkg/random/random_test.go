package random_test

import (
	"sort"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-encounters/internal/pkg/random"
)

// fixedRoller always rolls the configured face, clamped to the die size
type fixedRoller struct {
	face  int
	sizes []int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	if r.face > size {
		return size, nil
	}
	return r.face, nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

func TestSeeded_IsDeterministic(t *testing.T) {
	a := random.NewSeeded(42)
	b := random.NewSeeded(42)

	for i := 0; i < 50; i++ {
		require.Equal(t, a.NextInt(1, 100), b.NextInt(1, 100))
	}
}

func TestSeeded_NextIntStaysInRange(t *testing.T) {
	p := random.NewSeeded(7)
	seen := make(map[int]bool)

	for i := 0; i < 500; i++ {
		v := p.NextInt(1, 6)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
		seen[v] = true
	}

	assert.Len(t, seen, 6, "every face should come up in 500 rolls")
	assert.Equal(t, 4, p.NextInt(4, 4))
	assert.Equal(t, 4, p.NextInt(4, 2), "inverted range collapses to min")
}

func TestShuffleSlice_KeepsElements(t *testing.T) {
	p := random.NewSeeded(3)
	values := []string{"a", "b", "c", "d", "e", "f"}

	random.ShuffleSlice(p, values)

	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, sorted)
}

func TestDice_MapsDieFaceOntoRange(t *testing.T) {
	testCases := []struct {
		name     string
		face     int
		min, max int
		expected int
		size     int
	}{
		{name: "lowest face is min", face: 1, min: 1, max: 100, expected: 1, size: 100},
		{name: "highest face is max", face: 100, min: 1, max: 100, expected: 100, size: 100},
		{name: "offset range", face: 3, min: 5, max: 10, expected: 7, size: 6},
		{name: "zero based range", face: 1, min: 0, max: 4, expected: 0, size: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			roller := &fixedRoller{face: tc.face}
			p := random.NewDice(roller)

			assert.Equal(t, tc.expected, p.NextInt(tc.min, tc.max))
			assert.Equal(t, []int{tc.size}, roller.sizes)
		})
	}
}

func TestDice_DegenerateRangeDoesNotRoll(t *testing.T) {
	roller := &fixedRoller{face: 1}
	p := random.NewDice(roller)

	assert.Equal(t, 3, p.NextInt(3, 3))
	assert.Empty(t, roller.sizes)
}

func TestDice_ShuffleWithToolkitRoller(t *testing.T) {
	p := random.NewDice(dice.DefaultRoller)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}

	random.ShuffleSlice(p, values)

	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, sorted)

	for i := 0; i < 100; i++ {
		v := p.NextInt(1, 20)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 20)
	}
}

func TestNewDice_NilUsesDefaultRoller(t *testing.T) {
	p := random.NewDice(nil)
	v := p.NextInt(1, 6)
	assert.GreaterOrEqual(t, v, 1)
	assert.LessOrEqual(t, v, 6)
}
