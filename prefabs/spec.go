package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const SpawnTableFile = "spawn_table.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SpawnTableSpec is a flat list of saucer type names. Repeating a name makes
// it proportionally more likely to be drawn.
type SpawnTableSpec struct {
	Entries []string `yaml:"entries"`
}

func LoadSpawnTable() (*SpawnTableSpec, error) {
	spec, err := LoadSpec[SpawnTableSpec](SpawnTableFile)
	if err != nil {
		return nil, err
	}
	if len(spec.Entries) == 0 {
		return nil, fmt.Errorf("prefabs: %s: no entries", SpawnTableFile)
	}
	return &spec, nil
}
