package monster

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-encounters/internal/catalog"
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/idgen"
)

// Config holds the dependencies for the factory
type Config struct {
	Prototypes  catalog.PrototypeCatalog
	Sampler     SpellLoadoutSampler
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Prototypes == nil {
		vb.RequiredField("Prototypes")
	}
	if c.Sampler == nil {
		vb.RequiredField("Sampler")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type factory struct {
	prototypes  catalog.PrototypeCatalog
	sampler     SpellLoadoutSampler
	idGenerator idgen.Generator
}

// NewFactory creates a monster factory
func NewFactory(cfg *Config) (Factory, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &factory{
		prototypes:  cfg.Prototypes,
		sampler:     cfg.Sampler,
		idGenerator: cfg.IDGenerator,
	}, nil
}

// BuildOne clones the prototype and applies the overrides
func (f *factory) BuildOne(input *BuildInput) (*entities.Monster, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	proto, err := f.prototypes.GetPrototype(input.Prototype)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get prototype %q", input.Prototype)
	}

	m := &entities.Monster{
		ID:           f.idGenerator.Generate(),
		Name:         proto.Name,
		Stats:        proto.Stats,
		Skills:       proto.Skills,
		Behavior:     proto.Behavior,
		SpecialRules: copyStrings(proto.SpecialRules),
		Weapons:      copyWeapons(proto.Weapons),
		Spells:       copySpells(proto.Spells),
		XP:           proto.XP,
		TreasureTier: proto.TreasureTier,
		ToHitPenalty: proto.ToHitPenalty,
	}
	if proto.Damage != nil {
		damage := *proto.Damage
		m.Damage = &damage
	}

	if input.Weapons != nil {
		m.Weapons = copyWeapons(input.Weapons)
	}

	m.Armour = input.Armour
	m.HasShield = input.HasShield

	switch {
	case input.Loadout != nil:
		m.Spells = f.sampler.BuildSpellList(input.Loadout.Touch, input.Loadout.Ranged, input.Loadout.Support)
	case input.Spells != nil:
		m.Spells = copySpells(input.Spells)
	}

	if input.SpecialRule != "" {
		m.SpecialRules = append(m.SpecialRules, input.SpecialRule)
	}

	return m, nil
}

// BuildGroup builds count independent instances
func (f *factory) BuildGroup(count int, input *BuildInput) ([]*entities.Monster, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if count < 1 {
		return []*entities.Monster{}, nil
	}

	group := make([]*entities.Monster, 0, count)
	for i := 0; i < count; i++ {
		m, err := f.BuildOne(input)
		if err != nil {
			return nil, err
		}
		group = append(group, m)
	}

	slog.Debug("Monster group built",
		"prototype", input.Prototype,
		"count", count)

	return group, nil
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

func copyWeapons(src []entities.Weapon) []entities.Weapon {
	if src == nil {
		return nil
	}
	dst := make([]entities.Weapon, len(src))
	copy(dst, src)
	return dst
}

func copySpells(src []entities.Spell) []entities.Spell {
	if src == nil {
		return nil
	}
	dst := make([]entities.Spell, len(src))
	copy(dst, src)
	return dst
}
