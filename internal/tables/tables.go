// Package tables holds the roll tables that map an encounter type and a die
// roll to a composition recipe.
//
// Each table is an ordered list of buckets with contiguous inclusive roll
// ranges covering 1..Die exactly. A bucket either lists build instructions or
// is a meta bucket that re-resolves the same table.
package tables

import (
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

// EncounterType selects a roll table
type EncounterType string

// Encounter types with embedded tables
const (
	Beasts        EncounterType = "beasts"
	Undead        EncounterType = "undead"
	Bandits       EncounterType = "bandits"
	Orcs          EncounterType = "orcs"
	Reptiles      EncounterType = "reptiles"
	DarkElves     EncounterType = "dark_elves"
	AncientLands  EncounterType = "ancient_lands"
	GoblinKing    EncounterType = "goblin_king"
	GoblinMinions EncounterType = "goblin_minions"
	Crypt         EncounterType = "crypt"
	Ambush        EncounterType = "ambush"
)

// KnownTypes is the closed set of encounter types
var KnownTypes = []EncounterType{
	Beasts, Undead, Bandits, Orcs, Reptiles, DarkElves, AncientLands, GoblinKing,
	GoblinMinions, Crypt, Ambush,
}

// IsKnown reports whether t is one of KnownTypes
func (t EncounterType) IsKnown() bool {
	for _, known := range KnownTypes {
		if t == known {
			return true
		}
	}
	return false
}

// String returns the label
func (t EncounterType) String() string {
	return string(t)
}

// SpellCounts asks for a random loadout of this many spells per pool
type SpellCounts struct {
	Touch   int `yaml:"touch"`
	Ranged  int `yaml:"ranged"`
	Support int `yaml:"support"`
}

// Instruction is one line of a recipe: build Count monsters from Prototype
// with the given overrides
type Instruction struct {
	Count       Count        `yaml:"count"`
	Prototype   string       `yaml:"prototype"`
	Weapons     []string     `yaml:"weapons,omitempty"`
	Armour      int          `yaml:"armour,omitempty"`
	Shield      bool         `yaml:"shield,omitempty"`
	SpellCounts *SpellCounts `yaml:"spell_counts,omitempty"`
	Spells      []string     `yaml:"spells,omitempty"`
	SpecialRule string       `yaml:"special_rule,omitempty"`
}

// Meta re-resolves the owning table instead of building monsters.
// Each of Draws re-draws rolls 1..Reroll on the same table.
type Meta struct {
	Draws  int `yaml:"draws,omitempty"`
	Reroll int `yaml:"reroll,omitempty"`
}

// RollRange is an inclusive roll range, authored as "12" or "13-22"
type RollRange struct {
	Low  int
	High int
}

// UnmarshalYAML parses "N" or "A-B"
func (r *RollRange) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := parseRollRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML writes the authored form
func (r RollRange) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// String renders the range as authored
func (r RollRange) String() string {
	if r.Low == r.High {
		return strconv.Itoa(r.Low)
	}
	return strconv.Itoa(r.Low) + "-" + strconv.Itoa(r.High)
}

func parseRollRange(s string) (RollRange, error) {
	lo, hi, found := strings.Cut(strings.TrimSpace(s), "-")
	low, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return RollRange{}, errors.InvalidArgumentf("invalid roll range: %q", s)
	}
	if !found {
		return RollRange{Low: low, High: low}, nil
	}
	high, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil || high < low {
		return RollRange{}, errors.InvalidArgumentf("invalid roll range: %q", s)
	}
	return RollRange{Low: low, High: high}, nil
}

// Bucket is the recipe for one roll range. A bucket with neither
// instructions nor meta is a "nothing happens" result.
type Bucket struct {
	Rolls        RollRange     `yaml:"rolls"`
	Label        string        `yaml:"label,omitempty"`
	Instructions []Instruction `yaml:"build,omitempty"`
	Meta         *Meta         `yaml:"meta,omitempty"`
}

// IsMeta reports whether the bucket re-resolves its table
func (b *Bucket) IsMeta() bool {
	return b.Meta != nil
}

// Table is one encounter type's roll table
type Table struct {
	Type        EncounterType `yaml:"type"`
	Description string        `yaml:"description,omitempty"`
	Die         int           `yaml:"die"`
	Buckets     []Bucket      `yaml:"buckets"`
}

// Lookup returns the first bucket whose upper bound is at least roll.
// Rolls outside 1..Die have no bucket.
func (t *Table) Lookup(roll int) (*Bucket, bool) {
	if roll < 1 || roll > t.Die {
		return nil, false
	}

	i := sort.Search(len(t.Buckets), func(i int) bool {
		return t.Buckets[i].Rolls.High >= roll
	})
	if i == len(t.Buckets) || t.Buckets[i].Rolls.Low > roll {
		return nil, false
	}
	return &t.Buckets[i], true
}

// Validate checks coverage and instruction data, filling meta defaults.
// The running upper bound must start at 1, advance without gaps or overlaps
// and finish exactly at Die.
func (t *Table) Validate() error {
	if !t.Type.IsKnown() {
		return errors.InvalidArgumentf("unknown encounter type %q", t.Type).WithMeta("table", string(t.Type))
	}
	if t.Die < 1 {
		return t.invalid("die must be positive, got %d", t.Die)
	}
	if len(t.Buckets) == 0 {
		return t.invalid("table has no buckets")
	}

	next := 1
	for i := range t.Buckets {
		b := &t.Buckets[i]
		if b.Rolls.Low != next {
			if b.Rolls.Low > next {
				return t.invalid("rolls %d-%d are not covered", next, b.Rolls.Low-1)
			}
			return t.invalid("bucket %s overlaps rolls up to %d", b.Rolls, next-1)
		}
		if b.Rolls.High < b.Rolls.Low {
			return t.invalid("bucket %s is empty", b.Rolls)
		}
		next = b.Rolls.High + 1

		if err := t.validateBucket(b); err != nil {
			return err
		}
	}

	if next-1 != t.Die {
		return t.invalid("buckets end at %d, expected %d", next-1, t.Die)
	}

	return t.validateMeta()
}

func (t *Table) validateBucket(b *Bucket) error {
	if b.Meta != nil && len(b.Instructions) > 0 {
		return t.invalid("bucket %s has both meta and build instructions", b.Rolls)
	}

	for j, in := range b.Instructions {
		if strings.TrimSpace(in.Prototype) == "" {
			return t.invalid("bucket %s instruction %d has no prototype", b.Rolls, j)
		}
		if in.Count.Min < 0 || in.Count.Max < in.Count.Min {
			return t.invalid("bucket %s instruction %d has invalid count %s", b.Rolls, j, in.Count)
		}
		if in.Count.Max < 1 {
			return t.invalid("bucket %s instruction %d can never build a monster (count %s)", b.Rolls, j, in.Count)
		}
		if in.Armour < 0 {
			return t.invalid("bucket %s instruction %d has negative armour", b.Rolls, j)
		}
		if sc := in.SpellCounts; sc != nil {
			if sc.Touch < 0 || sc.Ranged < 0 || sc.Support < 0 {
				return t.invalid("bucket %s instruction %d has negative spell counts", b.Rolls, j)
			}
			if len(in.Spells) > 0 {
				return t.invalid("bucket %s instruction %d has both spell counts and spell names", b.Rolls, j)
			}
		}
	}
	return nil
}

// validateMeta fills defaults and rejects re-draw ranges that can land on a
// meta bucket, which would make a resolution exceed the recursion cap.
func (t *Table) validateMeta() error {
	for i := range t.Buckets {
		b := &t.Buckets[i]
		if b.Meta == nil {
			continue
		}
		if b.Meta.Draws == 0 {
			b.Meta.Draws = 1
		}
		if b.Meta.Reroll == 0 {
			b.Meta.Reroll = t.Die
		}
		if b.Meta.Draws < 0 || b.Meta.Reroll < 1 || b.Meta.Reroll > t.Die {
			return t.invalid("meta bucket %s has invalid draws/reroll", b.Rolls)
		}

		for _, other := range t.Buckets {
			if other.Meta != nil && other.Rolls.Low <= b.Meta.Reroll {
				return t.invalid("meta bucket %s can re-draw meta bucket %s", b.Rolls, other.Rolls)
			}
		}
	}
	return nil
}

func (t *Table) invalid(format string, args ...interface{}) error {
	return errors.InvalidArgumentf("table %s: "+format, append([]interface{}{t.Type}, args...)...).
		WithMeta("table", string(t.Type))
}
