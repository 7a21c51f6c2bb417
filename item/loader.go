package item

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinitions reads a YAML catalog file and builds a Definitions
// catalog from it. The file holds a list of definitions; see
// DefinitionDocument for the designer-facing field names.
func LoadDefinitions[K comparable, S any, D any](path string) (*Definitions[K, S, D], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseDefinitions[K, S, D](data)
}

// ParseDefinitions builds a Definitions catalog from raw YAML.
func ParseDefinitions[K comparable, S any, D any](data []byte) (*Definitions[K, S, D], error) {
	var defs []Definition[K, S, D]
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	catalog, err := NewDefinitions(defs...)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}
