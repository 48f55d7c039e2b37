// Package encounter resolves encounter tables and scripted parameter sets
// into lists of monster instances
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-encounters/internal/catalog"
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/random"
	"github.com/KirkDiggler/rpg-encounters/internal/services/monster"
	"github.com/KirkDiggler/rpg-encounters/internal/tables"
)

// EventEncounterResolved is published once per ResolveEncounter call
const EventEncounterResolved = "encounter.resolved"

// maxMetaDepth is how many times a table may re-enter itself
const maxMetaDepth = 1

// Service defines the interface for encounter operations
type Service interface {
	// ResolveEncounter rolls (or takes) a roll on the table for the type and
	// builds every group the matching bucket lists
	ResolveEncounter(ctx context.Context, input *ResolveEncounterInput) (*ResolveEncounterOutput, error)

	// ResolveFromParameters builds one group from a key/value description
	ResolveFromParameters(ctx context.Context, input *ResolveFromParametersInput) (*ResolveFromParametersOutput, error)
}

// TableSource finds the roll table for an encounter type.
// *tables.Set satisfies it.
type TableSource interface {
	Get(t tables.EncounterType) (*tables.Table, bool)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Tables      TableSource
	Factory     monster.Factory
	Equipment   catalog.EquipmentCatalog
	Spells      catalog.SpellCatalog
	Random      random.Provider
	IDGenerator idgen.Generator

	// EventBus is optional
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.Factory == nil {
		vb.RequiredField("Factory")
	}
	if c.Equipment == nil {
		vb.RequiredField("Equipment")
	}
	if c.Spells == nil {
		vb.RequiredField("Spells")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// orchestrator draws from a single random provider and is meant to be owned
// by one session at a time
type orchestrator struct {
	tables    TableSource
	factory   monster.Factory
	equipment catalog.EquipmentCatalog
	spells    catalog.SpellCatalog
	random    random.Provider
	idGen     idgen.Generator
	eventBus  events.EventBus
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		tables:    cfg.Tables,
		factory:   cfg.Factory,
		equipment: cfg.Equipment,
		spells:    cfg.Spells,
		random:    cfg.Random,
		idGen:     cfg.IDGenerator,
		eventBus:  cfg.EventBus,
	}, nil
}

// ResolveEncounter maps the roll to its bucket and builds the recipe
func (o *orchestrator) ResolveEncounter(ctx context.Context, input *ResolveEncounterInput) (*ResolveEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	encounter := &entities.Encounter{
		ID:       o.idGen.Generate(),
		Type:     input.Type.String(),
		Monsters: []*entities.Monster{},
	}

	table, ok := o.tables.Get(input.Type)
	if !ok {
		slog.Debug("No table for encounter type", "encounter_type", input.Type)
		return &ResolveEncounterOutput{Encounter: encounter}, nil
	}

	if input.Roll != nil {
		encounter.Roll = *input.Roll
	} else {
		encounter.Roll = o.random.NextInt(1, table.Die)
	}

	monsters, err := o.resolve(table, encounter.Roll, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s encounter", input.Type)
	}
	encounter.Monsters = append(encounter.Monsters, monsters...)

	slog.Info("Encounter resolved",
		"encounter_id", encounter.ID,
		"encounter_type", input.Type,
		"roll", encounter.Roll,
		"monster_count", len(encounter.Monsters))

	o.publishResolved(ctx, encounter)

	return &ResolveEncounterOutput{Encounter: encounter}, nil
}

// resolve builds one bucket. Meta buckets re-enter the same table with a
// fresh roll per draw, at most maxMetaDepth deep.
func (o *orchestrator) resolve(table *tables.Table, roll, depth int) ([]*entities.Monster, error) {
	bucket, ok := table.Lookup(roll)
	if !ok {
		slog.Debug("Roll outside table", "encounter_type", table.Type, "roll", roll)
		return []*entities.Monster{}, nil
	}

	slog.Debug("Bucket selected",
		"encounter_type", table.Type,
		"roll", roll,
		"bucket", bucket.Rolls.String(),
		"depth", depth)

	if bucket.IsMeta() {
		if depth >= maxMetaDepth {
			return nil, errors.Internalf("table %s re-entered past depth %d", table.Type, maxMetaDepth).
				WithMeta("table", string(table.Type)).
				WithMeta("bucket", bucket.Rolls.String())
		}

		monsters := []*entities.Monster{}
		for i := 0; i < bucket.Meta.Draws; i++ {
			reroll := o.random.NextInt(1, bucket.Meta.Reroll)
			slog.Debug("Meta bucket re-draw",
				"encounter_type", table.Type,
				"draw", i+1,
				"roll", reroll)

			drawn, err := o.resolve(table, reroll, depth+1)
			if err != nil {
				return nil, err
			}
			monsters = append(monsters, drawn...)
		}
		return monsters, nil
	}

	monsters := []*entities.Monster{}
	for _, in := range bucket.Instructions {
		count := in.Count.Roll(o.random)
		group, err := o.factory.BuildGroup(count, o.buildInput(in))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build %s", in.Prototype).
				WithMeta("table", string(table.Type)).
				WithMeta("bucket", bucket.Rolls.String())
		}
		monsters = append(monsters, group...)
	}
	return monsters, nil
}

func (o *orchestrator) buildInput(in tables.Instruction) *monster.BuildInput {
	input := &monster.BuildInput{
		Prototype:   in.Prototype,
		Armour:      in.Armour,
		HasShield:   in.Shield,
		SpecialRule: in.SpecialRule,
	}

	if len(in.Weapons) > 0 {
		input.Weapons = o.lookupWeapons(in.Weapons)
	}

	if sc := in.SpellCounts; sc != nil {
		input.Loadout = &monster.SpellLoadout{Touch: sc.Touch, Ranged: sc.Ranged, Support: sc.Support}
	} else if len(in.Spells) > 0 {
		input.Spells = o.lookupSpells(in.Spells)
	}

	return input
}

// lookupWeapons resolves each name on its own, skipping unknown ones
func (o *orchestrator) lookupWeapons(names []string) []entities.Weapon {
	weapons := make([]entities.Weapon, 0, len(names))
	for _, name := range names {
		w, ok := o.equipment.GetWeaponByName(name)
		if !ok {
			slog.Warn("Unknown weapon skipped", "weapon", name)
			continue
		}
		weapons = append(weapons, w)
	}
	return weapons
}

// lookupSpells resolves each name on its own, skipping unknown ones
func (o *orchestrator) lookupSpells(names []string) []entities.Spell {
	spells := make([]entities.Spell, 0, len(names))
	for _, name := range names {
		s, ok := o.spells.GetSpellByName(name)
		if !ok {
			slog.Warn("Unknown spell skipped", "spell", name)
			continue
		}
		spells = append(spells, s)
	}
	return spells
}

// publishResolved reports the encounter on the bus. Delivery failures are
// logged; the encounter is still returned.
func (o *orchestrator) publishResolved(ctx context.Context, encounter *entities.Encounter) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(EventEncounterResolved, encounter, nil)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Error("Failed to publish encounter event",
			"encounter_id", encounter.ID,
			"error", err)
	}
}
