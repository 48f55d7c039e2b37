package tables

import (
	"bytes"
	"embed"
	"io"
	"path"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-encounters/internal/catalog"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

//go:embed data/*.yaml
var embeddedTables embed.FS

var loadEmbedded = sync.OnceValues(func() (*Set, error) {
	entries, err := embeddedTables.ReadDir("data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list embedded tables")
	}

	tables := make([]*Table, 0, len(entries))
	for _, entry := range entries {
		raw, err := embeddedTables.ReadFile(path.Join("data", entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read table %s", entry.Name())
		}
		t, err := Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode table %s", entry.Name())
		}
		tables = append(tables, t)
	}

	return NewSet(tables...)
})

// LoadEmbedded returns the tables shipped with the module. Every known
// encounter type has a table. The set is built once and shared.
func LoadEmbedded() (*Set, error) {
	return loadEmbedded()
}

// Decode reads and validates one YAML table document
func Decode(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse table yaml")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Set indexes tables by encounter type
type Set struct {
	tables map[EncounterType]*Table
}

// NewSet validates and indexes tables. Duplicate types are rejected.
func NewSet(tables ...*Table) (*Set, error) {
	s := &Set{tables: make(map[EncounterType]*Table, len(tables))}
	for _, t := range tables {
		if t == nil {
			return nil, errors.InvalidArgument("table is required")
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, exists := s.tables[t.Type]; exists {
			return nil, errors.InvalidArgumentf("duplicate table for %s", t.Type).WithMeta("table", string(t.Type))
		}
		s.tables[t.Type] = t
	}
	return s, nil
}

// Get returns the table for t
func (s *Set) Get(t EncounterType) (*Table, bool) {
	table, ok := s.tables[t]
	return table, ok
}

// Types lists the encounter types in the set, sorted
func (s *Set) Types() []EncounterType {
	types := make([]EncounterType, 0, len(s.tables))
	for t := range s.tables {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// CheckReferences verifies every prototype named by an instruction exists
// in the catalog. Returns the first miss as errors.NotFound.
func (s *Set) CheckReferences(prototypes catalog.PrototypeCatalog) error {
	for _, t := range s.Types() {
		table := s.tables[t]
		for _, b := range table.Buckets {
			for _, in := range b.Instructions {
				if _, err := prototypes.GetPrototype(in.Prototype); err != nil {
					return errors.Wrapf(err, "table %s bucket %s", t, b.Rolls).
						WithMeta("table", string(t)).
						WithMeta("bucket", b.Rolls.String())
				}
			}
		}
	}
	return nil
}
