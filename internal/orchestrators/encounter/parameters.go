package encounter

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/services/monster"
)

// Parameter keys, matched without regard to case
const (
	ParamName        = "Name"
	ParamCount       = "Count"
	ParamArmour      = "Armour"
	ParamShield      = "Shield"
	ParamWeapons     = "Weapons"
	ParamSpells      = "Spells"
	ParamSpecialRule = "SpecialRule"
)

// ResolveFromParameters parses each field on its own. Bad values fall back
// to defaults and are reported as diagnostics; only an unknown prototype fails
// the call.
func (o *orchestrator) ResolveFromParameters(_ context.Context, input *ResolveFromParametersInput) (*ResolveFromParametersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	params, clashes := normalizeParams(input.Parameters)
	output := &ResolveFromParametersOutput{Monsters: []*entities.Monster{}, Diagnostics: clashes}

	name := params[strings.ToLower(ParamName)]
	if name == "" {
		output.Diagnostics = append(output.Diagnostics, "Name is required")
		slog.Warn("Encounter parameters have no name")
		return output, nil
	}

	diagnose := func(format string, args ...interface{}) {
		msg := fmt.Sprintf(format, args...)
		output.Diagnostics = append(output.Diagnostics, msg)
		slog.Warn("Encounter parameter defaulted", "prototype", name, "detail", msg)
	}

	count := 1
	if raw, ok := params[strings.ToLower(ParamCount)]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			diagnose("Count %q is not a positive number, using 1", raw)
		} else {
			count = n
		}
	}

	build := &monster.BuildInput{
		Prototype:   name,
		SpecialRule: params[strings.ToLower(ParamSpecialRule)],
	}

	if raw, ok := params[strings.ToLower(ParamArmour)]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			diagnose("Armour %q is not a number, using 0", raw)
		} else {
			build.Armour = n
		}
	}

	if raw, ok := params[strings.ToLower(ParamShield)]; ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			diagnose("Shield %q is not a boolean, using false", raw)
		} else {
			build.HasShield = b
		}
	}

	if raw, ok := params[strings.ToLower(ParamWeapons)]; ok {
		names := splitList(raw)
		weapons := o.lookupWeapons(names)
		switch {
		case len(weapons) == 0:
			diagnose("none of %d weapons found, keeping %s defaults", len(names), name)
		case len(weapons) < len(names):
			diagnose("%d of %d weapons not found", len(names)-len(weapons), len(names))
		}
		if len(weapons) > 0 {
			build.Weapons = weapons
		}
	}

	if raw, ok := params[strings.ToLower(ParamSpells)]; ok {
		names := splitList(raw)
		spells := o.lookupSpells(names)
		switch {
		case len(spells) == 0:
			diagnose("none of %d spells found, keeping %s defaults", len(names), name)
		case len(spells) < len(names):
			diagnose("%d of %d spells not found", len(names)-len(spells), len(names))
		}
		if len(spells) > 0 {
			build.Spells = spells
		}
	}

	monsters, err := o.factory.BuildGroup(count, build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s from parameters", name)
	}
	output.Monsters = append(output.Monsters, monsters...)

	slog.Info("Parameter encounter resolved",
		"prototype", name,
		"monster_count", len(output.Monsters))

	return output, nil
}

// normalizeParams lower-cases keys and trims values, dropping blank values.
// When keys differ only by case the exact spelling of a known key wins,
// otherwise the first key in sorted order; each clash is reported.
func normalizeParams(in map[string]string) (map[string]string, []string) {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(in))
	from := make(map[string]string, len(in))
	var clashes []string
	for _, k := range keys {
		v := strings.TrimSpace(in[k])
		if v == "" {
			continue
		}
		key := strings.TrimSpace(k)
		lower := strings.ToLower(key)

		prev, seen := from[lower]
		if seen {
			if key != canonicalKeys[lower] {
				clashes = append(clashes, fmt.Sprintf("parameter %q ignored, %q already set", k, prev))
				continue
			}
			clashes = append(clashes, fmt.Sprintf("parameter %q ignored, %q already set", prev, k))
		}
		out[lower] = v
		from[lower] = k
	}

	for _, c := range clashes {
		slog.Warn("Encounter parameter clash", "detail", c)
	}
	return out, clashes
}

var canonicalKeys = map[string]string{
	strings.ToLower(ParamName):        ParamName,
	strings.ToLower(ParamCount):       ParamCount,
	strings.ToLower(ParamArmour):      ParamArmour,
	strings.ToLower(ParamShield):      ParamShield,
	strings.ToLower(ParamWeapons):     ParamWeapons,
	strings.ToLower(ParamSpells):      ParamSpells,
	strings.ToLower(ParamSpecialRule): ParamSpecialRule,
}

func splitList(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
