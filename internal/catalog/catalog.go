// Package catalog holds the read-only monster, weapon and spell lookups the
// encounter core builds from.
//
// A catalog is populated once from a Data snapshot and never changes after
// that, so lookups need no locking and may run from many goroutines.
package catalog

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/KirkDiggler/rpg-encounters/internal/catalog PrototypeCatalog,EquipmentCatalog,SpellCatalog

import (
	"strings"

	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

// PrototypeCatalog looks up monster templates by name
type PrototypeCatalog interface {
	// GetPrototype returns the named template.
	// Returns errors.NotFound when no prototype has that name.
	// The returned prototype is shared and must not be modified.
	GetPrototype(name string) (*entities.Prototype, error)
}

// EquipmentCatalog looks up weapons by name
type EquipmentCatalog interface {
	// GetWeaponByName reports false when the weapon is unknown
	GetWeaponByName(name string) (entities.Weapon, bool)
}

// SpellCatalog looks up spells by name and by pool
type SpellCatalog interface {
	// GetSpellsByCategory returns the shared pool for a category.
	// Callers must copy the slice before reordering it.
	GetSpellsByCategory(category entities.SpellCategory) []entities.Spell

	// GetSpellByName reports false when the spell is unknown
	GetSpellByName(name string) (entities.Spell, bool)
}

// Data is a full catalog snapshot as authored in YAML or stored in Redis
type Data struct {
	Prototypes []entities.Prototype `yaml:"prototypes" json:"prototypes"`
	Weapons    []entities.Weapon    `yaml:"weapons" json:"weapons"`
	Spells     []entities.Spell     `yaml:"spells" json:"spells"`
}

// Memory is the immutable in-memory catalog. Names match case-insensitively.
type Memory struct {
	data       *Data
	prototypes map[string]*entities.Prototype
	weapons    map[string]entities.Weapon
	spells     map[string]entities.Spell
	pools      map[entities.SpellCategory][]entities.Spell
}

// NewMemory indexes a snapshot.
// Returns errors.InvalidArgument for blank or duplicate names and unknown spell categories.
func NewMemory(data *Data) (*Memory, error) {
	if data == nil {
		return nil, errors.InvalidArgument("catalog data is required")
	}

	m := &Memory{
		data:       data,
		prototypes: make(map[string]*entities.Prototype, len(data.Prototypes)),
		weapons:    make(map[string]entities.Weapon, len(data.Weapons)),
		spells:     make(map[string]entities.Spell, len(data.Spells)),
		pools:      make(map[entities.SpellCategory][]entities.Spell, len(entities.SpellCategories)),
	}

	for i := range data.Prototypes {
		p := &data.Prototypes[i]
		key := normalize(p.Name)
		if key == "" {
			return nil, errors.InvalidArgumentf("prototype %d has no name", i)
		}
		if _, exists := m.prototypes[key]; exists {
			return nil, errors.InvalidArgumentf("duplicate prototype %q", p.Name).WithMeta("prototype", p.Name)
		}
		m.prototypes[key] = p
	}

	for i, w := range data.Weapons {
		key := normalize(w.Name)
		if key == "" {
			return nil, errors.InvalidArgumentf("weapon %d has no name", i)
		}
		if _, exists := m.weapons[key]; exists {
			return nil, errors.InvalidArgumentf("duplicate weapon %q", w.Name).WithMeta("weapon", w.Name)
		}
		m.weapons[key] = w
	}

	for i, s := range data.Spells {
		key := normalize(s.Name)
		if key == "" {
			return nil, errors.InvalidArgumentf("spell %d has no name", i)
		}
		if !validCategory(s.Category) {
			return nil, errors.InvalidArgumentf("spell %q has unknown category %q", s.Name, s.Category).
				WithMeta("spell", s.Name)
		}
		if _, exists := m.spells[key]; exists {
			return nil, errors.InvalidArgumentf("duplicate spell %q", s.Name).WithMeta("spell", s.Name)
		}
		m.spells[key] = s
		m.pools[s.Category] = append(m.pools[s.Category], s)
	}

	return m, nil
}

// GetPrototype returns the named template or errors.NotFound
func (m *Memory) GetPrototype(name string) (*entities.Prototype, error) {
	p, ok := m.prototypes[normalize(name)]
	if !ok {
		return nil, errors.NotFoundf("prototype %q not found", name).WithMeta("prototype", name)
	}
	return p, nil
}

// GetWeaponByName returns the named weapon
func (m *Memory) GetWeaponByName(name string) (entities.Weapon, bool) {
	w, ok := m.weapons[normalize(name)]
	return w, ok
}

// GetSpellByName returns the named spell
func (m *Memory) GetSpellByName(name string) (entities.Spell, bool) {
	s, ok := m.spells[normalize(name)]
	return s, ok
}

// GetSpellsByCategory returns the shared pool for category
func (m *Memory) GetSpellsByCategory(category entities.SpellCategory) []entities.Spell {
	return m.pools[category]
}

// PrototypeNames lists every prototype name in authoring order
func (m *Memory) PrototypeNames() []string {
	names := make([]string, len(m.data.Prototypes))
	for i, p := range m.data.Prototypes {
		names[i] = p.Name
	}
	return names
}

// Snapshot returns the data the catalog was built from
func (m *Memory) Snapshot() *Data {
	return m.data
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func validCategory(c entities.SpellCategory) bool {
	for _, known := range entities.SpellCategories {
		if c == known {
			return true
		}
	}
	return false
}

var (
	_ PrototypeCatalog = (*Memory)(nil)
	_ EquipmentCatalog = (*Memory)(nil)
	_ SpellCatalog     = (*Memory)(nil)
)
