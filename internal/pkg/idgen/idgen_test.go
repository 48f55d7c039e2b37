package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-encounters/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("monster")

	assert.Equal(t, "monster_1", g.Generate())
	assert.Equal(t, "monster_2", g.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

func TestUUID(t *testing.T) {
	g := idgen.NewUUID("monster")

	first := g.Generate()
	second := g.Generate()

	assert.True(t, strings.HasPrefix(first, "monster_"))
	assert.NotEqual(t, first, second)
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}
