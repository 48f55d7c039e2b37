package testutils

import (
	"github.com/KirkDiggler/rpg-encounters/internal/catalog"
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
)

// Names used by the small test catalog
const (
	TestGoblin  = "Goblin"
	TestWarlock = "Warlock"
	TestSword   = "Sword"
	TestBow     = "Bow"
)

// CreateTestCatalogData returns a minimal catalog with one prototype per
// behavior the tests care about and two spells in every pool
func CreateTestCatalogData() *catalog.Data {
	return &catalog.Data{
		Prototypes: []entities.Prototype{
			{
				Name:         TestGoblin,
				Stats:        map[string]int{"wounds": 3, "move": 4},
				Behavior:     entities.BehaviorMelee,
				SpecialRules: []string{"Cowardly"},
				Weapons:      []entities.Weapon{{Name: TestSword, Damage: "1d6"}},
				Armour:       1,
				XP:           15,
				TreasureTier: "minor",
				Damage:       &entities.DamageRange{Min: 1, Max: 6},
			},
			{
				Name:         TestWarlock,
				Stats:        map[string]int{"wounds": 6, "move": 4},
				Skills:       map[string]int{"lore": 4},
				Behavior:     entities.BehaviorMagic,
				SpecialRules: []string{"Spellcaster"},
				XP:           60,
				TreasureTier: "major",
				ToHitPenalty: 1,
			},
		},
		Weapons: []entities.Weapon{
			{Name: TestSword, Damage: "1d6"},
			{Name: TestBow, Damage: "1d6", Ranged: true, TwoHanded: true},
		},
		Spells: []entities.Spell{
			{Name: "Grasp", Category: entities.SpellCategoryCloseCombat},
			{Name: "Touch", Category: entities.SpellCategoryCloseCombat},
			{Name: "Bolt", Category: entities.SpellCategoryRanged},
			{Name: "Dart", Category: entities.SpellCategoryRanged},
			{Name: "Ward", Category: entities.SpellCategorySupport},
			{Name: "Mend", Category: entities.SpellCategorySupport},
		},
	}
}
