package catalog

import (
	"bytes"
	_ "embed"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

var loadEmbedded = sync.OnceValues(func() (*Memory, error) {
	data, err := Decode(bytes.NewReader(embeddedCatalog))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode embedded catalog")
	}
	return NewMemory(data)
})

// LoadEmbedded returns the catalog shipped with the module. The result is
// built once and shared.
func LoadEmbedded() (*Memory, error) {
	return loadEmbedded()
}

// Decode reads a YAML catalog document. Unknown fields are rejected.
func Decode(r io.Reader) (*Data, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data Data
	if err := dec.Decode(&data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog yaml")
	}
	return &data, nil
}
