package encounter

import (
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/tables"
)

// ResolveEncounterInput selects a table and optionally fixes the roll
type ResolveEncounterInput struct {
	Type tables.EncounterType

	// Roll is drawn from the table's die when nil
	Roll *int
}

// ResolveEncounterOutput holds the built encounter. Unknown types and rolls
// outside the table produce an encounter with no monsters.
type ResolveEncounterOutput struct {
	Encounter *entities.Encounter
}

// ResolveFromParametersInput carries a scripted encounter as key/value text.
// Recognised keys are Name, Count, Armour, Shield, Weapons, Spells and
// SpecialRule; Weapons and Spells are comma separated.
type ResolveFromParametersInput struct {
	Parameters map[string]string
}

// ResolveFromParametersOutput holds the built monsters and any non-fatal
// problems found in the parameters
type ResolveFromParametersOutput struct {
	Monsters    []*entities.Monster
	Diagnostics []string
}
