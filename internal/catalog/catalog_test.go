package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-encounters/internal/catalog"
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Memory
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	var err error
	s.catalog, err = catalog.LoadEmbedded()
	s.Require().NoError(err)
}

func (s *CatalogTestSuite) TestGetPrototype() {
	p, err := s.catalog.GetPrototype("Wight")
	s.Require().NoError(err)
	s.Equal("Wight", p.Name)
	s.Equal(2, p.Armour)
	s.Equal(entities.BehaviorMelee, p.Behavior)
	s.Require().Len(p.Weapons, 1)
	s.Equal("Longsword", p.Weapons[0].Name)
}

func (s *CatalogTestSuite) TestGetPrototypeIgnoresCase() {
	p, err := s.catalog.GetPrototype("  giant rat ")
	s.Require().NoError(err)
	s.Equal("Giant Rat", p.Name)
}

func (s *CatalogTestSuite) TestGetPrototypeNotFound() {
	p, err := s.catalog.GetPrototype("Beholder")
	s.Nil(p)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("Beholder", errors.GetMeta(err)["prototype"])
}

func (s *CatalogTestSuite) TestGetWeaponByName() {
	w, ok := s.catalog.GetWeaponByName("longsword")
	s.True(ok)
	s.Equal("1d8", w.Damage)

	_, ok = s.catalog.GetWeaponByName("Vorpal Blade")
	s.False(ok)
}

func (s *CatalogTestSuite) TestSpellPools() {
	s.Len(s.catalog.GetSpellsByCategory(entities.SpellCategoryCloseCombat), 5)
	s.Len(s.catalog.GetSpellsByCategory(entities.SpellCategoryRanged), 6)
	s.Len(s.catalog.GetSpellsByCategory(entities.SpellCategorySupport), 7)

	spell, ok := s.catalog.GetSpellByName("Fireball")
	s.True(ok)
	s.Equal(entities.SpellCategoryRanged, spell.Category)

	_, ok = s.catalog.GetSpellByName("Wish")
	s.False(ok)
}

func (s *CatalogTestSuite) TestLoadEmbeddedIsShared() {
	again, err := catalog.LoadEmbedded()
	s.Require().NoError(err)
	s.Same(s.catalog, again)
	s.NotEmpty(s.catalog.PrototypeNames())
	s.Equal(len(s.catalog.PrototypeNames()), len(s.catalog.Snapshot().Prototypes))
}

func (s *CatalogTestSuite) TestNewMemoryRejectsBadData() {
	testCases := []struct {
		name string
		data *catalog.Data
	}{
		{name: "nil data", data: nil},
		{
			name: "duplicate prototype",
			data: &catalog.Data{Prototypes: []entities.Prototype{{Name: "Orc"}, {Name: "orc"}}},
		},
		{
			name: "blank weapon name",
			data: &catalog.Data{Weapons: []entities.Weapon{{Name: " "}}},
		},
		{
			name: "unknown spell category",
			data: &catalog.Data{Spells: []entities.Spell{{Name: "Wish", Category: "divine"}}},
		},
		{
			name: "duplicate spell",
			data: &catalog.Data{Spells: []entities.Spell{
				{Name: "Heal", Category: entities.SpellCategorySupport},
				{Name: "Heal", Category: entities.SpellCategorySupport},
			}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m, err := catalog.NewMemory(tc.data)
			s.Nil(m)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *CatalogTestSuite) TestDecode() {
	doc := `
prototypes:
  - name: Goblin
    behavior: melee
    stats: {wounds: 4}
    xp: 10
weapons:
  - {name: Dagger, damage: 1d4}
spells:
  - {name: Heal, category: support}
`
	data, err := catalog.Decode(strings.NewReader(doc))
	s.Require().NoError(err)
	s.Require().Len(data.Prototypes, 1)
	s.Equal(4, data.Prototypes[0].Stats["wounds"])

	m, err := catalog.NewMemory(data)
	s.Require().NoError(err)
	s.Len(m.GetSpellsByCategory(entities.SpellCategorySupport), 1)
}

func (s *CatalogTestSuite) TestDecodeRejectsUnknownFields() {
	_, err := catalog.Decode(strings.NewReader("prototypes:\n  - name: Goblin\n    hit_points: 4\n"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
