package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	catalogdata "github.com/KirkDiggler/rpg-encounters/internal/catalog"
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-encounters/internal/redis"
)

// Each kind is a hash of name -> JSON document
const (
	prototypesKey = "catalog:prototypes"
	weaponsKey    = "catalog:weapons"
	spellsKey     = "catalog:spells"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Data == nil {
		return nil, errors.InvalidArgument("catalog data is required")
	}

	prototypes, err := encodeAll(input.Data.Prototypes, func(p entities.Prototype) string { return p.Name })
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal prototypes")
	}
	weapons, err := encodeAll(input.Data.Weapons, func(w entities.Weapon) string { return w.Name })
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal weapons")
	}
	spells, err := encodeAll(input.Data.Spells, func(s entities.Spell) string { return s.Name })
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spells")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, prototypesKey, weaponsKey, spellsKey)
		if len(prototypes) > 0 {
			pipe.HSet(ctx, prototypesKey, prototypes)
		}
		if len(weapons) > 0 {
			pipe.HSet(ctx, weaponsKey, weapons)
		}
		if len(spells) > 0 {
			pipe.HSet(ctx, spellsKey, spells)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save catalog snapshot")
	}

	slog.Info("Catalog snapshot saved",
		"prototype_count", len(prototypes),
		"weapon_count", len(weapons),
		"spell_count", len(spells))

	return &SaveOutput{
		Prototypes: len(prototypes),
		Weapons:    len(weapons),
		Spells:     len(spells),
	}, nil
}

func (r *redisRepository) Load(ctx context.Context, _ LoadInput) (*LoadOutput, error) {
	exists, err := r.client.Exists(ctx, prototypesKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check catalog snapshot")
	}
	if exists == 0 {
		return nil, errors.NotFound("catalog snapshot not found")
	}

	data := &catalogdata.Data{}
	if data.Prototypes, err = loadAll[entities.Prototype](ctx, r.client, prototypesKey); err != nil {
		return nil, err
	}
	if data.Weapons, err = loadAll[entities.Weapon](ctx, r.client, weaponsKey); err != nil {
		return nil, err
	}
	if data.Spells, err = loadAll[entities.Spell](ctx, r.client, spellsKey); err != nil {
		return nil, err
	}

	sort.Slice(data.Prototypes, func(i, j int) bool { return data.Prototypes[i].Name < data.Prototypes[j].Name })
	sort.Slice(data.Weapons, func(i, j int) bool { return data.Weapons[i].Name < data.Weapons[j].Name })
	sort.Slice(data.Spells, func(i, j int) bool { return data.Spells[i].Name < data.Spells[j].Name })

	slog.Info("Catalog snapshot loaded",
		"prototype_count", len(data.Prototypes),
		"weapon_count", len(data.Weapons),
		"spell_count", len(data.Spells))

	return &LoadOutput{Data: data}, nil
}

// encodeAll maps name -> JSON for HSET. Later duplicates win.
func encodeAll[T any](items []T, name func(T) string) (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		fields[name(item)] = string(raw)
	}
	return fields, nil
}

func loadAll[T any](ctx context.Context, client redisclient.Client, key string) ([]T, error) {
	fields, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	items := make([]T, 0, len(fields))
	for name, raw := range fields {
		var item T
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s entry %q", key, name).WithMeta("key", key)
		}
		items = append(items, item)
	}
	return items, nil
}
