package monster

import (
	"github.com/KirkDiggler/rpg-encounters/internal/catalog"
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/random"
)

// SamplerConfig holds the dependencies for the spell sampler
type SamplerConfig struct {
	Spells catalog.SpellCatalog
	Random random.Provider
}

// Validate ensures all required dependencies are provided
func (c *SamplerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Spells == nil {
		vb.RequiredField("Spells")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}

	return vb.Build()
}

type sampler struct {
	spells catalog.SpellCatalog
	random random.Provider
}

// NewSpellSampler creates a spell loadout sampler
func NewSpellSampler(cfg *SamplerConfig) (SpellLoadoutSampler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &sampler{
		spells: cfg.Spells,
		random: cfg.Random,
	}, nil
}

// BuildSpellList draws each category independently
func (s *sampler) BuildSpellList(touch, ranged, support int) []entities.Spell {
	counts := map[entities.SpellCategory]int{
		entities.SpellCategoryCloseCombat: touch,
		entities.SpellCategoryRanged:      ranged,
		entities.SpellCategorySupport:     support,
	}

	result := make([]entities.Spell, 0, max(touch, 0)+max(ranged, 0)+max(support, 0))
	for _, category := range entities.SpellCategories {
		result = append(result, s.draw(category, counts[category])...)
	}
	return result
}

// draw shuffles a private copy of the pool and keeps the first n
func (s *sampler) draw(category entities.SpellCategory, n int) []entities.Spell {
	if n <= 0 {
		return nil
	}

	pool := s.spells.GetSpellsByCategory(category)
	picked := make([]entities.Spell, len(pool))
	copy(picked, pool)

	if n >= len(picked) {
		return picked
	}

	random.ShuffleSlice(s.random, picked)
	return picked[:n]
}
