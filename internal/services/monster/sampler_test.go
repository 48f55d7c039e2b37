package monster_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-encounters/internal/catalog"
	catalogmock "github.com/KirkDiggler/rpg-encounters/internal/catalog/mock"
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/random"
	randommock "github.com/KirkDiggler/rpg-encounters/internal/pkg/random/mock"
	"github.com/KirkDiggler/rpg-encounters/internal/services/monster"
)

type SamplerTestSuite struct {
	suite.Suite
	catalog *catalog.Memory
	sampler monster.SpellLoadoutSampler
}

func TestSamplerSuite(t *testing.T) {
	suite.Run(t, new(SamplerTestSuite))
}

func (s *SamplerTestSuite) SetupTest() {
	var err error
	s.catalog, err = catalog.LoadEmbedded()
	s.Require().NoError(err)

	s.sampler, err = monster.NewSpellSampler(&monster.SamplerConfig{
		Spells: s.catalog,
		Random: random.NewSeeded(1234),
	})
	s.Require().NoError(err)
}

func (s *SamplerTestSuite) poolNames(category entities.SpellCategory) []string {
	pool := s.catalog.GetSpellsByCategory(category)
	names := make([]string, len(pool))
	for i, spell := range pool {
		names[i] = spell.Name
	}
	return names
}

func (s *SamplerTestSuite) TestNewSpellSamplerValidatesConfig() {
	_, err := monster.NewSpellSampler(&monster.SamplerConfig{Spells: s.catalog})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Random")
}

func (s *SamplerTestSuite) TestLengthIsBoundedByPools() {
	// pools hold 5 close combat, 6 ranged and 7 support spells
	testCases := []struct {
		touch, ranged, support int
		expected               int
	}{
		{0, 0, 0, 0},
		{1, 1, 1, 3},
		{2, 3, 1, 6},
		{5, 6, 7, 18},
		{10, 1, 0, 6},
		{9, 9, 9, 18},
		{-1, 2, 0, 2},
	}

	for _, tc := range testCases {
		spells := s.sampler.BuildSpellList(tc.touch, tc.ranged, tc.support)
		s.Len(spells, tc.expected, "touch=%d ranged=%d support=%d", tc.touch, tc.ranged, tc.support)
	}
}

func (s *SamplerTestSuite) TestNoDuplicatesAndCategoryOrder() {
	for i := 0; i < 50; i++ {
		spells := s.sampler.BuildSpellList(3, 4, 2)
		s.Require().Len(spells, 9)

		seen := make(map[string]bool)
		for j, spell := range spells {
			s.False(seen[spell.Name], "duplicate %s", spell.Name)
			seen[spell.Name] = true

			switch {
			case j < 3:
				s.Equal(entities.SpellCategoryCloseCombat, spell.Category)
			case j < 7:
				s.Equal(entities.SpellCategoryRanged, spell.Category)
			default:
				s.Equal(entities.SpellCategorySupport, spell.Category)
			}
		}
	}
}

func (s *SamplerTestSuite) TestWholePoolWhenCountCoversIt() {
	spells := s.sampler.BuildSpellList(5, 0, 0)

	names := make([]string, len(spells))
	for i, spell := range spells {
		names[i] = spell.Name
	}
	s.Equal(s.poolNames(entities.SpellCategoryCloseCombat), names)
}

func (s *SamplerTestSuite) TestCatalogPoolIsNeverReordered() {
	before := s.poolNames(entities.SpellCategorySupport)

	for i := 0; i < 20; i++ {
		s.sampler.BuildSpellList(0, 0, 3)
	}

	s.Equal(before, s.poolNames(entities.SpellCategorySupport))
}

func (s *SamplerTestSuite) TestShufflesPrivateCopy() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	pool := []entities.Spell{
		{Name: "A", Category: entities.SpellCategoryRanged},
		{Name: "B", Category: entities.SpellCategoryRanged},
		{Name: "C", Category: entities.SpellCategoryRanged},
	}
	spells := catalogmock.NewMockSpellCatalog(ctrl)
	spells.EXPECT().GetSpellsByCategory(entities.SpellCategoryRanged).Return(pool)

	provider := randommock.NewMockProvider(ctrl)
	provider.EXPECT().Shuffle(3, gomock.Any()).Do(func(_ int, swap func(i, j int)) {
		swap(0, 2)
	})

	sampler, err := monster.NewSpellSampler(&monster.SamplerConfig{Spells: spells, Random: provider})
	s.Require().NoError(err)

	picked := sampler.BuildSpellList(0, 2, 0)
	s.Equal([]entities.Spell{pool[2], pool[1]}, picked)
	s.Equal("A", pool[0].Name)
	s.Equal("C", pool[2].Name)
}

func (s *SamplerTestSuite) TestSeededSamplersAgree() {
	build := func() []entities.Spell {
		sampler, err := monster.NewSpellSampler(&monster.SamplerConfig{
			Spells: s.catalog,
			Random: random.NewSeeded(99),
		})
		s.Require().NoError(err)
		return sampler.BuildSpellList(2, 2, 2)
	}

	s.Equal(build(), build())
}
