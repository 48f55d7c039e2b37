// Package monster builds monster instances from catalog prototypes and
// samples random spell loadouts for them.
package monster

//go:generate mockgen -destination=mock/mock_service.go -package=monstermock github.com/KirkDiggler/rpg-encounters/internal/services/monster Factory,SpellLoadoutSampler

import (
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
)

// Factory clones prototypes into independent instances
type Factory interface {
	// BuildOne builds a single instance.
	// Returns errors.NotFound when the prototype does not exist.
	BuildOne(input *BuildInput) (*entities.Monster, error)

	// BuildGroup builds count instances, each through BuildOne.
	// A count below one builds nothing.
	BuildGroup(count int, input *BuildInput) ([]*entities.Monster, error)
}

// SpellLoadoutSampler draws random spells from the catalog pools
type SpellLoadoutSampler interface {
	// BuildSpellList returns up to touch close-combat, ranged and support
	// spells, in that order, with no repeats inside a category
	BuildSpellList(touch, ranged, support int) []entities.Spell
}

// BuildInput carries the prototype name and the instantiation overrides
type BuildInput struct {
	Prototype string

	// Weapons replaces the prototype weapons when non-nil. An empty,
	// non-nil slice strips them.
	Weapons []entities.Weapon

	// Armour is always written to the instance, so the zero value clears
	// any armour the prototype carries.
	Armour int

	// HasShield is always written to the instance
	HasShield bool

	// Spells replaces the prototype spells when non-nil
	Spells []entities.Spell

	// Loadout samples a fresh spell list for every instance. It takes
	// precedence over Spells.
	Loadout *SpellLoadout

	// SpecialRule is appended to the prototype rules when not empty
	SpecialRule string
}

// SpellLoadout is a touch/ranged/support spell count triple
type SpellLoadout struct {
	Touch   int
	Ranged  int
	Support int
}
