package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-encounters/internal/catalog"
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/random"
	"github.com/KirkDiggler/rpg-encounters/internal/redis"
	catalogrepo "github.com/KirkDiggler/rpg-encounters/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-encounters/internal/services/monster"
	"github.com/KirkDiggler/rpg-encounters/internal/tables"
)

// loadCatalog reads the Redis snapshot when an address is configured and
// falls back to the embedded catalog otherwise
func (a *app) loadCatalog(ctx context.Context) (*catalog.Memory, error) {
	if a.cfg.RedisAddr == "" {
		return catalog.LoadEmbedded()
	}

	repo, cleanup, err := a.catalogRepository()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	out, err := repo.Load(ctx, catalogrepo.LoadInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog from %s", a.cfg.RedisAddr)
	}
	return catalog.NewMemory(out.Data)
}

func (a *app) catalogRepository() (catalogrepo.Repository, func(), error) {
	if a.cfg.RedisAddr == "" {
		return nil, nil, errors.InvalidArgument("a Redis address is required (--redis or ENCOUNTERS_REDIS_ADDR)")
	}

	client, err := redis.NewClient(a.cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	repo, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: client})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return repo, cleanup, nil
}

func (a *app) randomProvider() random.Provider {
	if a.cfg.Seed != 0 {
		return random.NewSeeded(a.cfg.Seed)
	}
	return random.NewDice(dice.DefaultRoller)
}

// newService wires the full encounter stack. Every table reference is
// checked against the catalog before anything is rolled.
func (a *app) newService(ctx context.Context) (encounter.Service, *tables.Set, error) {
	cat, err := a.loadCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	set, err := tables.LoadEmbedded()
	if err != nil {
		return nil, nil, err
	}
	if err := set.CheckReferences(cat); err != nil {
		return nil, nil, errors.Wrap(err, "tables reference a missing prototype")
	}

	provider := a.randomProvider()

	sampler, err := monster.NewSpellSampler(&monster.SamplerConfig{
		Spells: cat,
		Random: provider,
	})
	if err != nil {
		return nil, nil, err
	}

	factory, err := monster.NewFactory(&monster.Config{
		Prototypes:  cat,
		Sampler:     sampler,
		IDGenerator: idgen.NewUUID(entities.EntityTypeMonster),
	})
	if err != nil {
		return nil, nil, err
	}

	bus := events.NewBus()
	bus.SubscribeFunc(encounter.EventEncounterResolved, 0, func(_ context.Context, e events.Event) error {
		slog.Debug("Encounter event received",
			"event_type", e.Type(),
			"encounter_id", e.Source().GetID())
		return nil
	})

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		Tables:      set,
		Factory:     factory,
		Equipment:   cat,
		Spells:      cat,
		Random:      provider,
		IDGenerator: idgen.NewUUID(entities.EntityTypeEncounter),
		EventBus:    bus,
	})
	if err != nil {
		return nil, nil, err
	}

	return svc, set, nil
}
