package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeMonster is the core.Entity type reported by every monster instance
const EntityTypeMonster = "monster"

// Behavior classifies how a monster acts once combat starts
type Behavior string

// Behavior values used by the catalog
const (
	BehaviorMelee    Behavior = "melee"
	BehaviorRanged   Behavior = "ranged"
	BehaviorMagic    Behavior = "magic"
	BehaviorSkirmish Behavior = "skirmish"
	BehaviorAmbush   Behavior = "ambush"
)

// SpellCategory is one of the three disjoint spell pools
type SpellCategory string

// Spell pools. The order of SpellCategories is the order loadouts are drawn in.
const (
	SpellCategoryCloseCombat SpellCategory = "close_combat"
	SpellCategoryRanged      SpellCategory = "ranged"
	SpellCategorySupport     SpellCategory = "support"
)

// SpellCategories lists the pools in touch/ranged/support order
var SpellCategories = []SpellCategory{
	SpellCategoryCloseCombat,
	SpellCategoryRanged,
	SpellCategorySupport,
}

// Weapon is an equipment entry a monster can carry
type Weapon struct {
	Name        string `yaml:"name" json:"name"`
	Damage      string `yaml:"damage" json:"damage"`
	DamageBonus int    `yaml:"damage_bonus,omitempty" json:"damage_bonus,omitempty"`
	Ranged      bool   `yaml:"ranged,omitempty" json:"ranged,omitempty"`
	TwoHanded   bool   `yaml:"two_handed,omitempty" json:"two_handed,omitempty"`
}

// Spell is a castable spell belonging to exactly one category
type Spell struct {
	Name        string        `yaml:"name" json:"name"`
	Category    SpellCategory `yaml:"category" json:"category"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
}

// DamageRange is a flat damage band used by monsters without weapons
type DamageRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Prototype is the immutable template a monster kind is built from.
// Nothing mutates a Prototype after the catalog is loaded.
type Prototype struct {
	Name         string         `yaml:"name" json:"name"`
	Stats        map[string]int `yaml:"stats" json:"stats"`
	Skills       map[string]int `yaml:"skills,omitempty" json:"skills,omitempty"`
	Behavior     Behavior       `yaml:"behavior" json:"behavior"`
	SpecialRules []string       `yaml:"special_rules,omitempty" json:"special_rules,omitempty"`
	Weapons      []Weapon       `yaml:"weapons,omitempty" json:"weapons,omitempty"`
	Spells       []Spell        `yaml:"spells,omitempty" json:"spells,omitempty"`
	Armour       int            `yaml:"armour,omitempty" json:"armour,omitempty"`
	HasShield    bool           `yaml:"shield,omitempty" json:"shield,omitempty"`
	XP           int            `yaml:"xp" json:"xp"`
	TreasureTier string         `yaml:"treasure_tier,omitempty" json:"treasure_tier,omitempty"`
	Damage       *DamageRange   `yaml:"damage,omitempty" json:"damage,omitempty"`
	ToHitPenalty int            `yaml:"to_hit_penalty,omitempty" json:"to_hit_penalty,omitempty"`
}

// Monster is one built instance. Its slices belong to this instance alone;
// the stat and skill maps are shared with the prototype and must be treated
// as read-only.
type Monster struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Stats        map[string]int `json:"stats"`
	Skills       map[string]int `json:"skills,omitempty"`
	Behavior     Behavior       `json:"behavior"`
	SpecialRules []string       `json:"special_rules,omitempty"`
	Weapons      []Weapon       `json:"weapons,omitempty"`
	Spells       []Spell        `json:"spells,omitempty"`
	Armour       int            `json:"armour"`
	HasShield    bool           `json:"shield"`
	XP           int            `json:"xp"`
	TreasureTier string         `json:"treasure_tier,omitempty"`
	Damage       *DamageRange   `json:"damage,omitempty"`
	ToHitPenalty int            `json:"to_hit_penalty,omitempty"`
}

// GetID returns the instance id
func (m *Monster) GetID() string {
	return m.ID
}

// GetType returns the entity type for rpg-toolkit
func (m *Monster) GetType() string {
	return EntityTypeMonster
}

var _ core.Entity = (*Monster)(nil)
